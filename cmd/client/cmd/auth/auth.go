package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// AuthCmd - родительская команда для всех операций с учётной записью
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление учётной записью",
	Long:  `Регистрация, вход, выход и просмотр текущей сессии.`,
}

var email string

func init() {
	for _, c := range []*cobra.Command{SignUpCmd, SignInCmd} {
		c.Flags().StringVarP(&email, "email", "e", "", "email учётной записи")
	}
	AuthCmd.AddCommand(SignUpCmd, SignInCmd, SignOutCmd, WhoAmICmd)
}

// prompter спрашивает учётные данные. Пароль читается отдельной функцией,
// в терминале без эха.
type prompter struct {
	in       *bufio.Reader
	out      io.Writer
	password func() (string, error)
}

func terminalPrompter() *prompter {
	return &prompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		password: func() (string, error) {
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			return string(password), err
		},
	}
}

// credentials запрашивает email (если он не задан флагом) и пароль.
func (p *prompter) credentials(presetEmail string, confirm bool) (string, string, error) {
	addr := strings.TrimSpace(presetEmail)
	if addr == "" {
		fmt.Fprint(p.out, "Email: ")
		line, err := p.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", "", fmt.Errorf("ошибка чтения email: %w", err)
		}
		addr = strings.TrimSpace(line)
	}
	if addr == "" {
		return "", "", fmt.Errorf("email не указан")
	}

	password, err := p.readPassword("Пароль: ")
	if err != nil {
		return "", "", err
	}

	if confirm {
		again, err := p.readPassword("Повторите пароль: ")
		if err != nil {
			return "", "", err
		}
		if again != password {
			return "", "", fmt.Errorf("пароли не совпадают")
		}
	}
	return addr, password, nil
}

func (p *prompter) readPassword(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	password, err := p.password()
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return password, nil
}

package user

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MaxEmailLen    = 254
	MinPasswordLen = 6
	MaxPasswordLen = 72 // предел bcrypt
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(email, password string) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type CredentialsValidator struct {
	minPasswordLen int
}

// NewCredentialsValidator создает новый валидатор
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		minPasswordLen: MinPasswordLen,
	}
}

// ValidateRegister валидирует данные для регистрации
func (v *CredentialsValidator) ValidateRegister(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return fmt.Errorf("email validation failed: %w", err)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

// ValidateEmail валидирует адрес почты
func (v *CredentialsValidator) ValidateEmail(email string) error {
	return validation.Validate(email,
		validation.Required,
		validation.Length(3, MaxEmailLen),
		is.EmailFormat,
	)
}

// ValidatePassword валидирует пароль
func (v *CredentialsValidator) ValidatePassword(password string) error {
	if len(password) < v.minPasswordLen {
		return fmt.Errorf("password should be at least %d characters", v.minPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password should be at most %d bytes", MaxPasswordLen)
	}
	return nil
}

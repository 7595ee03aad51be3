// Package toast выводит уведомления коллекции в терминал.
package toast

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

type Console struct {
	mu      sync.Mutex
	out     io.Writer
	success *color.Color
	failure *color.Color
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out:     out,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (c *Console) Success(msg string) {
	c.print(c.success, "✓", msg)
}

func (c *Console) Error(msg string) {
	c.print(c.failure, "✗", msg)
}

func (c *Console) print(clr *color.Color, mark, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.out, "%s %s\n", clr.Sprint(mark), msg)
}

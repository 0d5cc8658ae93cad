package cli

import (
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/iudanet/unipress/internal/models"
)

var templateFuncs = template.FuncMap{
	"truncate": truncate,
	"author":   commentAuthor,
}

// render выводит данные по шаблону
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// truncate обрезает строку до n символов
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}

func commentAuthor(c models.Comment) string {
	if c.AuthorName != "" {
		return c.AuthorName
	}
	return c.AuthorID
}

// readText читает текст из аргументов или, если их нет, с клавиатуры
func (c *Cli) readText(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	text, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return text, nil
}

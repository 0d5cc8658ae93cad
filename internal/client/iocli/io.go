// Package iocli ввод и вывод интерактивного CLI
package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод-вывод команд CLI. Реализует io.Writer, поэтому
// годится как поток для уведомлений и шаблонов.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}

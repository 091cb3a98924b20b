// Package iocli абстрагирует терминальный ввод/вывод команд CLI,
// чтобы команды можно было тестировать без реального терминала.
package iocli

//go:generate moq -out io_mock.go . IO

// IO определяет операции терминального ввода/вывода
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

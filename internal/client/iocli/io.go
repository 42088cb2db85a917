package iocli

//go:generate moq -out io_mock.go . IO

// IO
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	TermSize() (width, height int, err error)
	Write(p []byte) (n int, err error)
}

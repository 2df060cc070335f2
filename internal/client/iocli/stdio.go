package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх стандартных потоков процесса
type Stdio struct {
	in    *bufio.Reader
	out   io.Writer
	inFd  int
	isTTY bool
}

// NewStdio создает IO, привязанный к os.Stdin и os.Stdout
func NewStdio() IO {
	fd := int(os.Stdin.Fd())
	return &Stdio{
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		inFd:  fd,
		isTTY: term.IsTerminal(fd),
	}
}

// NewStreams создает IO поверх произвольных потоков (пароль читается без скрытия)
func NewStreams(in io.Reader, out io.Writer) IO {
	return &Stdio{in: bufio.NewReader(in), out: out}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	// Последняя строка без перевода строки тоже считается вводом
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if !s.isTTY {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.inFd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

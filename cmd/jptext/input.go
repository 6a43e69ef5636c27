package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoInput = errors.New("no input: pass text as arguments or pipe it on stdin")

// input returns the text source of a command. Arguments win over stdin. An
// interactive terminal on stdin is not read from.
func (a *app) input(cmd *cobra.Command, args []string) (r io.Reader, fromArgs bool, err error) {
	if len(args) > 0 {
		text := strings.Join(args, " ")
		a.logger.Debug("reading input", "source", "args", "bytes", len(text))
		return strings.NewReader(text), true, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, false, errNoInput
	}
	a.logger.Debug("reading input", "source", "stdin")
	return in, false, nil
}

// inputString reads the whole input. A single trailing newline from stdin is
// dropped so that `echo` output is counted as typed.
func (a *app) inputString(cmd *cobra.Command, args []string) (string, error) {
	r, fromArgs, err := a.input(cmd, args)
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	text := string(b)
	if !fromArgs && strings.HasSuffix(text, "\n") {
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	}
	a.logger.Debug("input read", "bytes", len(text))
	return text, nil
}

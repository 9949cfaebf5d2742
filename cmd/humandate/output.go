package main

import (
	"errors"
	"fmt"
	dt "humandate/internal/core/domain/datetime"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[1;31m"
	colorGreen = "\033[1;32m"
	colorDim   = "\033[2m"
)

type printer struct {
	out   io.Writer
	color bool
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out, color: isTerminal(out)}
}

func isTerminal(stream interface{}) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) paint(color, text string) string {
	if !p.color {
		return text
	}
	return color + text + colorReset
}

func (p *printer) result(result dt.DetailedResult, withTokens bool) {
	fmt.Fprintf(p.out, "Result: %s\n", p.paint(colorGreen, result.At.Format(time.RFC3339Nano)))
	if withTokens {
		fmt.Fprintf(p.out, "Tokens: %s\n", p.paint(colorDim, dt.FormatTokens(result.Tokens)))
	}
}

// failure prints err, showing the fail reason for parse errors.
func (p *printer) failure(err error) {
	var parseErr *dt.ParseError
	if !errors.As(err, &parseErr) {
		fmt.Fprintf(p.out, "%s\n", p.paint(colorRed, "Error: "+err.Error()))
		return
	}
	fmt.Fprintf(p.out, "%s\n", p.paint(colorRed, fmt.Sprintf("ParseError (%s): %s", parseErr.Reason, parseErr.Msg)))
}

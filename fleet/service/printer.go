package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Printer writes the result of each step
type Printer interface {
	Print(result StepResult) error
}

// NewPrinter returns a printer for the given format writing to w
func NewPrinter(format string, w io.Writer) (Printer, error) {
	switch format {
	case FormatText, "":
		return &textPrinter{w: w}, nil
	case FormatJSON:
		return &jsonPrinter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("%w: %q (use %s or %s)", ErrUnknownFormat, format, FormatText, FormatJSON)
	}
}

// Discard returns a printer that drops every result
func Discard() Printer {
	return discardPrinter{}
}

type textPrinter struct {
	w io.Writer
}

func (p *textPrinter) Print(result StepResult) error {
	_, err := fmt.Fprintln(p.w, result.Description)
	return err
}

// jsonPrinter writes one JSON object per line
type jsonPrinter struct {
	enc *json.Encoder
}

func (p *jsonPrinter) Print(result StepResult) error {
	return p.enc.Encode(result)
}

type discardPrinter struct{}

func (discardPrinter) Print(StepResult) error { return nil }

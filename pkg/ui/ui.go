// Package ui renders command results as styled terminal output, plain text or
// JSON. Results are the types of pkg/ui/view.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/ui/json"
	"github.com/arthur-debert/twmerge/pkg/ui/terminal"
	"github.com/arthur-debert/twmerge/pkg/ui/text"
)

// Renderer writes results, errors and messages in one format
type Renderer interface {
	// RenderResult renders a view type. Unknown types are an ErrRender error
	// for the text and terminal renderers.
	RenderResult(result interface{}) error

	RenderError(err error) error

	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format. FormatAuto detects the format
// when output is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

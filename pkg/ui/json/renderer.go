// Package json writes command results as indented JSON documents
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/twmerge/pkg/errors"
)

// Renderer writes one JSON document per call
type Renderer struct {
	encoder *json.Encoder
}

// New returns a JSON renderer writing to output
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}
}

// RenderResult encodes result as is
func (r *Renderer) RenderResult(result interface{}) error {
	if err := r.encoder.Encode(result); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode result")
	}
	return nil
}

type errorDoc struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RenderError encodes err with its code and details when it carries them
func (r *Renderer) RenderError(err error) error {
	doc := errorDoc{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		doc.Code = code
	}
	doc.Details = errors.GetErrorDetails(err)
	return r.RenderResult(doc)
}

// RenderMessage encodes msg as {"message": msg}
func (r *Renderer) RenderMessage(msg string) error {
	return r.RenderResult(map[string]string{"message": msg})
}

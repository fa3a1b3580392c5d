package ui_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{input: "auto", expected: ui.FormatAuto},
		{input: "", expected: ui.FormatAuto},
		{input: "term", expected: ui.FormatTerminal},
		{input: "terminal", expected: ui.FormatTerminal},
		{input: "TERM", expected: ui.FormatTerminal},
		{input: "text", expected: ui.FormatText},
		{input: " plain ", expected: ui.FormatText},
		{input: "Json", expected: ui.FormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				assert.Contains(t, err.Error(), "unknown format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFormatNamesParse(t *testing.T) {
	for _, name := range ui.FormatNames {
		format, err := ui.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, format.String())
	}
}

func TestDetectFormat(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	t.Run("pipe is text", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.DetectFormat(w))
	})

	t.Run("NO_COLOR is text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(w))
	})
}

// Package text writes command results as plain, tab-aligned text
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/ui/view"
)

// Renderer writes unstyled output suitable for pipes
type Renderer struct {
	output io.Writer
}

// New returns a text renderer writing to output
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult writes a view type
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *view.MergeResult:
		_, err := fmt.Fprintln(r.output, v.Output)
		return err
	case *view.Explanation:
		return r.renderExplanation(v)
	case *view.ClassifyResult:
		return r.renderClasses(v)
	case *view.GroupsResult:
		return r.renderGroups(v)
	case string:
		return r.RenderMessage(v)
	default:
		return errors.Newf(errors.ErrRender, "text renderer cannot render %T", result)
	}
}

func (r *Renderer) renderExplanation(e *view.Explanation) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, d := range e.Decisions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			d.Index, Status(d), d.Class.Raw, orDash(d.Class.Group), reason(e, d))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.output, "result: %s\n", e.Output)
	return err
}

func (r *Renderer) renderClasses(c *view.ClassifyResult) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, cl := range c.Classes {
		important := ""
		if cl.Important {
			important = "important"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			cl.Raw, orDash(cl.Group), orDash(strings.Join(cl.Modifiers, " ")), orDash(important))
	}
	return tw.Flush()
}

func (r *Renderer) renderGroups(g *view.GroupsResult) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, grp := range g.Groups {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			grp.ID, orDash(strings.Join(grp.Overrides, ",")), orDash(strings.Join(grp.PostfixOverrides, ",")))
	}
	return tw.Flush()
}

// RenderError writes "error: <message>"
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "error: %s\n", err)
	return werr
}

// RenderMessage writes msg on its own line
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// Status is the one-word outcome of a decision
func Status(d view.Decision) string {
	switch {
	case !d.Class.Known:
		return "opaque"
	case d.Kept:
		return "kept"
	default:
		return "dropped"
	}
}

func reason(e *view.Explanation, d view.Decision) string {
	if d.Kept || d.OverriddenBy < 0 {
		return "-"
	}
	for _, other := range e.Decisions {
		if other.Index == d.OverriddenBy {
			return "by " + other.Class.Raw
		}
	}
	return fmt.Sprintf("by #%d", d.OverriddenBy)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Package terminal writes command results with colors and tables
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/ui/styles"
	"github.com/arthur-debert/twmerge/pkg/ui/text"
	"github.com/arthur-debert/twmerge/pkg/ui/view"
)

// Renderer writes styled output for interactive terminals
type Renderer struct {
	output io.Writer
}

// New returns a terminal renderer writing to output
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult writes a view type
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *view.MergeResult:
		_, err := fmt.Fprintln(r.output, styles.GetStyle("Output").Render(v.Output))
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
		return errors.Newf(errors.ErrRender, "terminal renderer cannot render %T", result)
	}
}

var marks = map[string]string{
	"kept":    "+",
	"dropped": "-",
	"opaque":  "·",
}

func (r *Renderer) renderExplanation(e *view.Explanation) error {
	width := 0
	for _, d := range e.Decisions {
		width = max(width, len(d.Class.Raw))
	}

	var b strings.Builder
	for _, d := range e.Decisions {
		status := text.Status(d)
		style := styles.GetStyle(statusStyle(status))

		b.WriteString(style.Render(marks[status]))
		b.WriteByte(' ')
		b.WriteString(renderClass(d.Class, style))
		b.WriteString(strings.Repeat(" ", width-len(d.Class.Raw)+2))
		if d.Class.Group != "" {
			b.WriteString(styles.GetStyle("Group").Render(d.Class.Group))
		}
		if !d.Kept {
			b.WriteString(styles.GetStyle("Muted").Render(overriddenBy(e, d)))
		}
		b.WriteByte('\n')
	}
	b.WriteString(styles.GetStyle("Muted").Render("=>"))
	b.WriteByte(' ')
	b.WriteString(styles.GetStyle("Output").Render(e.Output))
	b.WriteByte('\n')

	_, err := io.WriteString(r.output, b.String())
	return err
}

func statusStyle(status string) string {
	switch status {
	case "kept":
		return "Kept"
	case "dropped":
		return "Dropped"
	default:
		return "Opaque"
	}
}

// renderClass highlights the variant and important marker of a class
func renderClass(c view.Class, base lipgloss.Style) string {
	var b strings.Builder
	if c.Variant != "" {
		b.WriteString(styles.GetStyle("Variant").Render(c.Variant))
	}
	if c.Important {
		b.WriteString(styles.GetStyle("Important").Render("!"))
	}
	b.WriteString(base.Render(c.Base))
	return b.String()
}

func overriddenBy(e *view.Explanation, d view.Decision) string {
	for _, other := range e.Decisions {
		if other.Index == d.OverriddenBy {
			return "  (overridden by " + other.Class.Raw + ")"
		}
	}
	return ""
}

func (r *Renderer) renderClasses(c *view.ClassifyResult) error {
	data := pterm.TableData{{"Class", "Group", "Modifiers", "Important", "Matched"}}
	for _, cl := range c.Classes {
		group := styles.GetStyle("Opaque").Render("opaque")
		if cl.Known {
			group = styles.GetStyle("Group").Render(cl.Group)
		}
		important := ""
		if cl.Important {
			important = styles.GetStyle("Important").Render("yes")
		}
		matched := cl.Validator
		if matched != "" && cl.Value != "" {
			matched += " " + styles.GetStyle("Muted").Render(cl.Value)
		}
		data = append(data, []string{
			cl.Raw,
			group,
			styles.GetStyle("Variant").Render(strings.Join(cl.Modifiers, " ")),
			important,
			matched,
		})
	}
	return r.renderTable(data)
}

func (r *Renderer) renderGroups(g *view.GroupsResult) error {
	data := pterm.TableData{{"Group", "Overrides", "With postfix"}}
	for _, grp := range g.Groups {
		data = append(data, []string{
			styles.GetStyle("Group").Render(grp.ID),
			strings.Join(grp.Overrides, " "),
			strings.Join(grp.PostfixOverrides, " "),
		})
	}
	if err := r.renderTable(data); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Muted").Render(
		fmt.Sprintf("%d of %d groups", len(g.Groups), g.Total)))
	return err
}

func (r *Renderer) renderTable(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to render table")
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

// RenderError writes err after an error label
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error:"), err.Error())
	return werr
}

// RenderMessage writes msg in the info style
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}

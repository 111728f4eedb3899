package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cours-de-latin/conjugatio"
)

// Text renders a View as indented plain text with aligned columns.
type Text struct {
	Indent string
}

var _ Renderer = (*Text)(nil)

// NewText constructs a text renderer indenting by two spaces per level.
func NewText() *Text {
	return &Text{Indent: "  "}
}

func (r *Text) Name() string {
	return "text"
}

func (r *Text) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Text) Render(ctx context.Context, view View) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, m := range view.Moods {
		fmt.Fprintln(w, m.Title)
		for _, v := range m.Voices {
			fmt.Fprintf(w, "%s%s\n", r.Indent, v.Title)
			for _, c := range v.Columns {
				for _, b := range c.Blocks {
					r.block(w, b, 2)
				}
			}
		}
		fmt.Fprintln(w)
	}
	for _, g := range view.Groups {
		for _, b := range g.Blocks {
			r.block(w, b, 0)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("text renderer: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (r *Text) block(w *tabwriter.Writer, b Block, depth int) {
	pad := strings.Repeat(r.Indent, depth)
	fmt.Fprintf(w, "%s%s\n", pad, b.Title)
	for _, e := range b.Entries {
		fmt.Fprintf(w, "%s%s%s\t%s\n", pad, r.Indent, e.Label, plain(e.Form))
	}
}

// plain reduces form markup to single-spaced text.
func plain(markup string) string {
	return strings.Join(strings.Fields(conjugatio.TextContent(markup)), " ")
}

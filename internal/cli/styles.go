package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPass  = lipgloss.Color("#8BC34A")
	colorFail  = lipgloss.Color("#e53935")
	colorMuted = lipgloss.Color("#6b7280")
)

// styles renders for one writer. Writers that are not terminals get
// plain text.
type styles struct {
	pass  lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		pass:  r.NewStyle().Foreground(colorPass).Bold(true),
		fail:  r.NewStyle().Foreground(colorFail).Bold(true),
		muted: r.NewStyle().Foreground(colorMuted),
	}
}

func (s styles) result(pass bool) string {
	if pass {
		return s.pass.Render("PASS")
	}
	return s.fail.Render("FAIL")
}

func (s styles) mark(pass bool) string {
	if pass {
		return s.pass.Render("✓")
	}
	return s.fail.Render("✗")
}

package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/knifefall/internal/core"
)

func TestPaletteRenderPlain(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	p := NewPalette(r)

	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'A', core.ColorRed)
	s.SetColored(1, 0, 'B', core.ColorRed)
	s.SetColored(2, 1, 'C', core.ColorOrange)

	want := "AB  \n  C "
	if got := p.Render(s); got != want {
		t.Errorf("Render() = %q, expected %q", got, want)
	}
}

func TestPaletteRenderGroupsRuns(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	p := NewPalette(r)

	s := core.NewScreen(6, 1)
	for x := 0; x < 3; x++ {
		s.SetColored(x, 0, '*', core.ColorYellow)
	}
	s.SetColored(3, 0, '#', core.ColorGray)

	out := p.Render(s)
	if strings.Count(out, "***") != 1 {
		t.Errorf("same-colour cells should be rendered as one run: %q", out)
	}
	if !strings.Contains(out, "#") {
		t.Errorf("gray cell missing: %q", out)
	}
	if out == s.String() {
		t.Error("expected colour escapes with a 256-colour profile")
	}
}

func TestPaletteNilRenderer(t *testing.T) {
	p := NewPalette(nil)
	s := core.NewScreen(3, 1)
	s.DrawText(0, 0, "abc")

	if got := p.Render(s); !strings.Contains(got, "abc") {
		t.Errorf("Render() = %q, expected the text", got)
	}
}

// Package output provides rendering for CLI command output.
//
// The Renderer adapts to the environment: styled text on a terminal,
// markdown when piped, and machine-readable JSON on request.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/leapstack-labs/scafflint/pkg/core"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

func defaultStyles() *Styles {
	return &Styles{
		Header1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// Renderer writes command output in the configured mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer writing to out and errOut.
// An empty or unknown mode falls back to auto-detection.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: defaultStyles(),
	}
}

// EffectiveMode resolves ModeAuto against the output destination:
// text for terminals, markdown for pipes and files.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return ModeText
	}
	return ModeMarkdown
}

// Writer returns the primary output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error output writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Styles returns the text styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Println writes a line to the primary output.
func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.out, s)
}

// Printf writes formatted text to the primary output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Success writes a success line, styled in text mode.
func (r *Renderer) Success(s string) {
	if r.EffectiveMode() == ModeText {
		s = r.styles.Success.Render(s)
	}
	fmt.Fprintln(r.out, s)
}

// Error writes an error line to the error output, styled in text mode.
func (r *Renderer) Error(s string) {
	if r.EffectiveMode() == ModeText {
		s = r.styles.Error.Render(s)
	}
	fmt.Fprintln(r.errOut, s)
}

// Warning writes a warning line, styled in text mode.
func (r *Renderer) Warning(s string) {
	if r.EffectiveMode() == ModeText {
		s = r.styles.Warning.Render(s)
	}
	fmt.Fprintln(r.out, s)
}

// Info writes an informational line, styled in text mode.
func (r *Renderer) Info(s string) {
	if r.EffectiveMode() == ModeText {
		s = r.styles.Info.Render(s)
	}
	fmt.Fprintln(r.out, s)
}

// SeverityStyle returns the style matching a diagnostic severity.
func (r *Renderer) SeverityStyle(sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return r.styles.Error
	case core.SeverityWarning:
		return r.styles.Warning
	case core.SeverityInfo:
		return r.styles.Info
	default:
		return r.styles.Muted
	}
}

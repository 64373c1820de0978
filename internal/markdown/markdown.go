// Package markdown turns model replies into display lines for the history pane.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/muesli/termenv"
)

// Formatter renders raw text into styled display lines no wider than width.
// Implementations are pure: the same input always yields the same lines.
type Formatter interface {
	Format(text string, width int) []string
}

// GlamourFormatter renders markdown with glamour. Renderers are built lazily
// per wrap width and reused.
type GlamourFormatter struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

func NewGlamourFormatter(style string) *GlamourFormatter {
	return &GlamourFormatter{
		style:     resolveStyle(style),
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

func (f *GlamourFormatter) Format(text string, width int) []string {
	width = max(width, 1)

	r, err := f.renderer(width)
	if err != nil {
		return Wrap(text, width)
	}
	out, err := r.Render(text)
	if err != nil {
		return Wrap(text, width)
	}
	return trimBlankEdges(strings.Split(out, "\n"))
}

func (f *GlamourFormatter) renderer(width int) (*glamour.TermRenderer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r, ok := f.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(f.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	f.renderers[width] = r
	return r, nil
}

// resolveStyle maps "auto" to dark or light from the terminal background.
// It must run before the TUI takes over the terminal.
func resolveStyle(style string) string {
	switch style {
	case "":
		return "dark"
	case "auto":
		if termenv.HasDarkBackground() {
			return "dark"
		}
		return "light"
	}
	return style
}

// PlainFormatter only wraps; used for user prompts and as the fallback when
// markdown rendering fails.
type PlainFormatter struct{}

func (PlainFormatter) Format(text string, width int) []string {
	return Wrap(text, width)
}

// Wrap word-wraps text at width, hard-breaking words longer than a line.
func Wrap(text string, width int) []string {
	width = max(width, 1)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(wrapped, "\n")
}

// trimBlankEdges drops the empty margin lines glamour puts around documents.
func trimBlankEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

package core

import (
	"strings"

	"github.com/Rorical/RoriChat/internal/markdown"
	"github.com/Rorical/RoriChat/internal/models"
)

const (
	timeLayout   = "15:04:05"
	bodyIndent   = "    "
	minBodyWidth = 8
)

// LineKind tells the renderer how to style a history line.
type LineKind int

const (
	LineBody LineKind = iota
	LineBlank
	LineUserHeader
	LineAssistantHeader
	LineErrorHeader
)

// Line is one display row of the history pane.
type Line struct {
	Kind LineKind
	Text string
}

// History is the conversation log plus the scroll window over its rendered
// lines. Messages are never modified once appended, so their rendered lines
// are cached for the width they were rendered at.
type History struct {
	formatter markdown.Formatter
	messages  []models.Message

	width  int
	height int
	offset int

	cacheWidth int
	cache      [][]Line
}

func NewHistory(formatter markdown.Formatter) *History {
	if formatter == nil {
		formatter = markdown.PlainFormatter{}
	}
	return &History{
		formatter: formatter,
		width:     models.DefaultLayout.HistoryWidth,
		height:    models.DefaultLayout.HistoryHeight,
	}
}

// Append adds msg and scrolls to the bottom so it is visible.
func (h *History) Append(msg models.Message) {
	h.messages = append(h.messages, msg)
	h.ScrollToBottom()
}

func (h *History) Len() int {
	return len(h.messages)
}

// Messages returns a copy of the log.
func (h *History) Messages() []models.Message {
	out := make([]models.Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// LastAssistantReply returns the newest genuine model reply. Error-tagged
// messages are skipped.
func (h *History) LastAssistantReply() (string, bool) {
	for i := len(h.messages) - 1; i >= 0; i-- {
		if h.messages[i].IsReply() {
			return h.messages[i].Text, true
		}
	}
	return "", false
}

// SetViewport resizes the window. A view pinned to the bottom stays pinned.
func (h *History) SetViewport(width, height int) {
	pinned := h.AtBottom()
	h.width = max(1, width)
	h.height = max(1, height)
	if pinned {
		h.ScrollToBottom()
		return
	}
	h.clamp()
}

func (h *History) Viewport() (width, height int) {
	return h.width, h.height
}

func (h *History) Offset() int {
	return h.offset
}

func (h *History) Scroll(delta int) {
	h.offset += delta
	h.clamp()
}

func (h *History) PageUp() {
	h.Scroll(-h.height)
}

func (h *History) PageDown() {
	h.Scroll(h.height)
}

func (h *History) ScrollToTop() {
	h.offset = 0
}

func (h *History) ScrollToBottom() {
	h.offset = h.maxOffset()
}

// AtBottom reports whether the newest line is visible.
func (h *History) AtBottom() bool {
	return h.offset >= h.maxOffset()
}

// Lines renders the whole log at the current width.
func (h *History) Lines() []Line {
	h.syncCache()
	var out []Line
	for i, rendered := range h.cache {
		if i > 0 {
			out = append(out, Line{Kind: LineBlank})
		}
		out = append(out, rendered...)
	}
	return out
}

// Window returns the lines inside the scroll window.
func (h *History) Window() []Line {
	lines := h.Lines()
	h.offset = clampOffset(h.offset, len(lines), h.height)
	end := min(len(lines), h.offset+h.height)
	return lines[h.offset:end]
}

func (h *History) lineCount() int {
	h.syncCache()
	n := 0
	for _, rendered := range h.cache {
		n += len(rendered)
	}
	if len(h.cache) > 1 {
		n += len(h.cache) - 1
	}
	return n
}

func (h *History) maxOffset() int {
	return max(0, h.lineCount()-h.height)
}

// clamp re-checks the offset against the current line count.
func (h *History) clamp() {
	h.offset = clampOffset(h.offset, h.lineCount(), h.height)
}

func clampOffset(offset, lines, height int) int {
	return max(0, min(offset, max(0, lines-height)))
}

func (h *History) syncCache() {
	if h.cacheWidth != h.width {
		h.cache = h.cache[:0]
		h.cacheWidth = h.width
	}
	for i := len(h.cache); i < len(h.messages); i++ {
		h.cache = append(h.cache, h.renderMessage(h.messages[i]))
	}
}

func (h *History) renderMessage(msg models.Message) []Line {
	stamp := "[" + msg.Timestamp.Format(timeLayout) + "] "
	bodyWidth := max(minBodyWidth, h.width-len(bodyIndent))

	var header Line
	var body []string
	switch {
	case msg.Role == models.User:
		header = Line{Kind: LineUserHeader, Text: stamp + "You:"}
		body = markdown.Wrap(msg.Text, bodyWidth)
	case msg.Err:
		header = Line{Kind: LineErrorHeader, Text: stamp + "Error:"}
		body = markdown.Wrap(msg.Text, bodyWidth)
	default:
		header = Line{Kind: LineAssistantHeader, Text: stamp + "AI:"}
		body = h.formatter.Format(msg.Text, bodyWidth)
	}

	lines := make([]Line, 0, len(body)+1)
	lines = append(lines, header)
	for _, text := range body {
		lines = append(lines, Line{Kind: LineBody, Text: bodyIndent + strings.TrimRight(text, " ")})
	}
	return lines
}

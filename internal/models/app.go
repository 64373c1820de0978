package models

// Layout is the frame geometry derived from the terminal size. Both the
// controller (scroll clamping) and the renderer read it, so it lives here.
type Layout struct {
	Width  int // terminal width
	Height int // terminal height

	InputRows     int // text rows inside the input pane
	HistoryWidth  int // text columns inside the history pane
	HistoryHeight int // text rows inside the history pane
}

const (
	inputRows    = 3
	paneChrome   = 2 // top and bottom border
	sideChrome   = 4 // border plus one column of padding on each side
	statusRows   = 1
	minPaneWidth = 10
)

// DefaultLayout is used until the terminal reports its size.
var DefaultLayout = ComputeLayout(80, 24)

func ComputeLayout(width, height int) Layout {
	l := Layout{
		Width:     width,
		Height:    height,
		InputRows: inputRows,
	}
	l.HistoryWidth = max(minPaneWidth, width-sideChrome)
	l.HistoryHeight = max(1, height-(inputRows+paneChrome)-statusRows-paneChrome)
	return l
}

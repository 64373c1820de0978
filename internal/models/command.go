package models

// CommandKind is the semantic meaning of a key press in the current mode.
type CommandKind int

const (
	CmdSubmit CommandKind = iota
	CmdInsertText
	CmdDeleteBackward
	CmdClearInput
	CmdRecallPrev
	CmdRecallNext
	CmdToggleFocus
	CmdScrollUp
	CmdScrollDown
	CmdPageUp
	CmdPageDown
	CmdScrollTop
	CmdScrollBottom
	CmdOpenHelp
	CmdOpenConfig
	CmdOpenModelSelect
	CmdCopyLastReply
	CmdHighlightPrev
	CmdHighlightNext
	CmdConfirm
	CmdCancel
	CmdQuit
)

var commandNames = map[CommandKind]string{
	CmdSubmit:          "submit",
	CmdInsertText:      "insert-text",
	CmdDeleteBackward:  "delete-backward",
	CmdClearInput:      "clear-input",
	CmdRecallPrev:      "recall-prev",
	CmdRecallNext:      "recall-next",
	CmdToggleFocus:     "toggle-focus",
	CmdScrollUp:        "scroll-up",
	CmdScrollDown:      "scroll-down",
	CmdPageUp:          "page-up",
	CmdPageDown:        "page-down",
	CmdScrollTop:       "scroll-top",
	CmdScrollBottom:    "scroll-bottom",
	CmdOpenHelp:        "open-help",
	CmdOpenConfig:      "open-config",
	CmdOpenModelSelect: "open-model-select",
	CmdCopyLastReply:   "copy-last-reply",
	CmdHighlightPrev:   "highlight-prev",
	CmdHighlightNext:   "highlight-next",
	CmdConfirm:         "confirm",
	CmdCancel:          "cancel",
	CmdQuit:            "quit",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is what the input dispatcher hands to the controller.
type Command struct {
	Kind CommandKind
	Text string // only for CmdInsertText
}

func Cmd(kind CommandKind) Command {
	return Command{Kind: kind}
}

func InsertText(text string) Command {
	return Command{Kind: CmdInsertText, Text: text}
}

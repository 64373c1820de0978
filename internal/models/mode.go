package models

// UIMode is the single discriminator for how keys are interpreted and how the
// frame is composed. Exactly one mode is active at any time.
type UIMode interface {
	uiMode()
	Name() string
}

type Focus int

const (
	FocusInput Focus = iota
	FocusHistory
)

func (f Focus) String() string {
	if f == FocusHistory {
		return "history"
	}
	return "input"
}

type NormalMode struct {
	Focus Focus
}

// LoadingMode is active while a request is in flight.
type LoadingMode struct{}

type ConfigModal struct {
	DraftCredential string
}

type ModelSelectModal struct {
	Highlighted int
}

type HelpModal struct{}

func (NormalMode) uiMode()       {}
func (LoadingMode) uiMode()      {}
func (ConfigModal) uiMode()      {}
func (ModelSelectModal) uiMode() {}
func (HelpModal) uiMode()        {}

func (m NormalMode) Name() string     { return "normal/" + m.Focus.String() }
func (LoadingMode) Name() string      { return "loading" }
func (ConfigModal) Name() string      { return "config" }
func (ModelSelectModal) Name() string { return "model-select" }
func (HelpModal) Name() string        { return "help" }

// InitialMode is the mode a new session starts in.
func InitialMode() UIMode {
	return NormalMode{Focus: FocusInput}
}

// IsModal reports whether mode captures all input until confirmed or cancelled.
func IsModal(mode UIMode) bool {
	switch mode.(type) {
	case ConfigModal, ModelSelectModal, HelpModal:
		return true
	}
	return false
}

package state

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	FormMode Mode = iota // Default mode: typing into the form
	HelpMode             // Displaying the help overlay
)

// UIState manages terminal dimensions and the current interaction mode.
type UIState struct {
	width  int
	height int
	mode   Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: FormMode}
}

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

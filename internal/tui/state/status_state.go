package state

// StatusLevel represents the severity of the status line.
type StatusLevel int

const (
	// LevelInfo is used for progress and neutral messages
	LevelInfo StatusLevel = iota
	// LevelSuccess is used when an action completes
	LevelSuccess
	// LevelError is used for validation and storage failures
	LevelError
)

// StatusState is the single status line under the form.
// Each message overwrites the previous one.
type StatusState struct {
	level   StatusLevel
	message string
}

// NewStatusState creates a StatusState showing the ready message.
func NewStatusState() *StatusState {
	return &StatusState{level: LevelInfo, message: "Ready"}
}

// Set replaces the status line.
func (s *StatusState) Set(level StatusLevel, message string) {
	s.level = level
	s.message = message
}

func (s *StatusState) Info(message string)    { s.Set(LevelInfo, message) }
func (s *StatusState) Success(message string) { s.Set(LevelSuccess, message) }
func (s *StatusState) Error(message string)   { s.Set(LevelError, message) }

// Message returns the current status text.
func (s *StatusState) Message() string {
	return s.message
}

// Level returns the current status severity.
func (s *StatusState) Level() StatusLevel {
	return s.level
}

package state

// Action identifies one of the three user-triggered operations.
type Action int

const (
	ActionAdd Action = iota
	ActionViewAll
	ActionSearch
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionViewAll:
		return "view"
	case ActionSearch:
		return "search"
	default:
		return "unknown"
	}
}

// ActionState is the lifecycle of a single action:
// Idle -> Running -> Succeeded | Failed, and back to Running on the next trigger.
type ActionState int

const (
	Idle ActionState = iota
	Running
	Succeeded
	Failed
)

func (s ActionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Succeeded:
		return "done(success)"
	case Failed:
		return "done(failure)"
	default:
		return "unknown"
	}
}

// ActionsState tracks the lifecycle of every action.
// At most one task per action is in flight at a time.
type ActionsState struct {
	states map[Action]ActionState

	// pendingRefresh is set when an add completes while a view is still running
	pendingRefresh bool
}

// NewActionsState creates an ActionsState with every action idle.
func NewActionsState() *ActionsState {
	return &ActionsState{
		states: map[Action]ActionState{
			ActionAdd:     Idle,
			ActionViewAll: Idle,
			ActionSearch:  Idle,
		},
	}
}

// State returns the current state of an action.
func (s *ActionsState) State(a Action) ActionState {
	return s.states[a]
}

// IsRunning reports whether a task for the action is in flight.
func (s *ActionsState) IsRunning(a Action) bool {
	return s.states[a] == Running
}

// Start moves the action to Running.
// Returns false, leaving the state untouched, if the action is already running.
func (s *ActionsState) Start(a Action) bool {
	if s.IsRunning(a) {
		return false
	}
	s.states[a] = Running
	return true
}

// Succeed marks the action as done successfully.
func (s *ActionsState) Succeed(a Action) {
	s.states[a] = Succeeded
}

// Fail marks the action as done with a failure.
// Validation failures land here without ever passing through Running.
func (s *ActionsState) Fail(a Action) {
	s.states[a] = Failed
}

// RequestRefresh records that the table needs reloading once the running view lands.
func (s *ActionsState) RequestRefresh() {
	s.pendingRefresh = true
}

// TakeRefresh returns and clears the pending refresh flag.
func (s *ActionsState) TakeRefresh() bool {
	pending := s.pendingRefresh
	s.pendingRefresh = false
	return pending
}

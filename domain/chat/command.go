package chat

// Command is a user action delivered to the session loop. Commands carry
// only intent; every state change they trigger happens on the loop
// goroutine, never on the caller's.
type Command interface {
	commandName() string
}

// InitCommand starts the initial load sequence. Dispatching it more than
// once is harmless: only the Idle phase reacts to it.
type InitCommand struct{}

// SelectCommand points the panel at an existing conversation entry and
// triggers a timeline load for its room. Selection and load always travel
// together; selecting without loading would leave a stale timeline.
type SelectCommand struct {
	UserID int
}

// SetDraftCommand mirrors the composer input into the view model.
type SetDraftCommand struct {
	Text string
}

// SendCommand posts the given text to the selected room. Blank text or a
// missing selection makes it a no-op.
type SendCommand struct {
	Text string
}

// StartRoomCommand creates a new room with a single target member and opens
// the resulting conversation.
type StartRoomCommand struct {
	TargetUserID int
}

// LeaveRoomCommand removes the given user from the room and drops the
// conversation entry locally.
type LeaveRoomCommand struct {
	RoomID int
	UserID int
}

func (InitCommand) commandName() string      { return "INIT" }
func (SelectCommand) commandName() string    { return "SELECT" }
func (SetDraftCommand) commandName() string  { return "SET_DRAFT" }
func (SendCommand) commandName() string      { return "SEND" }
func (StartRoomCommand) commandName() string { return "START_ROOM" }
func (LeaveRoomCommand) commandName() string { return "LEAVE_ROOM" }

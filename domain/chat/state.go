package chat

// Phase tracks the single initialization sequence of the panel.
// The source application raced two independent init paths that both fetched
// the interacted-user list; collapsing them into one explicit sequence makes
// a second init trigger a no-op instead of a double fetch.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoadingDirectory
	PhaseLoadingInitialRoom
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseLoadingDirectory:
		return "LOADING_DIRECTORY"
	case PhaseLoadingInitialRoom:
		return "LOADING_INITIAL_ROOM"
	case PhaseReady:
		return "READY"
	}
	return "UNKNOWN"
}

// PanelState is the whole view model: directory, conversation list,
// selection, timeline and composer draft. It is owned by exactly one
// goroutine at runtime; as a value type with pure transitions it can be
// exercised directly in tests.
type PanelState struct {
	Phase         Phase
	Directory     []User
	Conversations Conversations
	Timeline      []Message
	Draft         string
}

// Loading gates all UI interaction until the initial load has finished,
// whether it succeeded or partially failed.
func (s PanelState) Loading() bool {
	return s.Phase != PhaseReady && s.Phase != PhaseIdle
}

// WithDirectory installs the fetched user pools. Ordering of both lists is
// whatever the fetch returned.
func (s PanelState) WithDirectory(directory, interacted []User) PanelState {
	s.Directory = directory
	s.Conversations.Entries = interacted
	return s
}

// ReplaceTimeline installs a freshly loaded room timeline. The result of a
// fetch that resolved after the user already switched rooms must be thrown
// away, so the transition only applies when the room the messages were
// fetched for still matches the selected conversation.
func (s PanelState) ReplaceTimeline(roomID int, messages []Message) (PanelState, bool) {
	selected, ok := s.Conversations.Selected()
	if !ok || selected.RoomID != roomID {
		return s, false
	}
	s.Timeline = messages
	return s, true
}

// AppendMessage adds one confirmed message at the end of the timeline.
// Appends are monotonic: nothing ever reorders the timeline afterwards.
func (s PanelState) AppendMessage(m Message) PanelState {
	s.Timeline = append(s.Timeline, m)
	return s
}

// FindDirectoryUser looks a user up in the full directory pool.
func (s PanelState) FindDirectoryUser(id int) (User, bool) {
	for _, u := range s.Directory {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

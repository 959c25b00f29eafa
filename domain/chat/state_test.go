package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func readyState() PanelState {
	return PanelState{
		Phase:         PhaseReady,
		Directory:     []User{{ID: 1, Name: "Yeong"}, {ID: 2, Name: "Minji"}},
		Conversations: threeConversations(),
		Timeline:      []Message{{ID: 1, Content: "hello"}},
	}
}

func Test_ReplaceTimeline_applies_only_for_the_selected_room(t *testing.T) {
	req := require.New(t)
	state := readyState() // selection is Minji, room 42

	fresh := []Message{{ID: 5, Content: "fresh"}}

	// A fetch for the selected room lands
	updated, applied := state.ReplaceTimeline(42, fresh)
	req.True(applied)
	req.Equal(fresh, updated.Timeline)

	// A fetch that resolved after the user moved on is discarded
	stale, applied := updated.ReplaceTimeline(10, []Message{{ID: 9, Content: "stale"}})
	req.False(applied)
	req.Equal(fresh, stale.Timeline)
}

func Test_ReplaceTimeline_is_discarded_without_a_selection(t *testing.T) {
	req := require.New(t)
	state := readyState()
	state.Conversations.SelectedID = 0

	updated, applied := state.ReplaceTimeline(42, []Message{{ID: 5}})
	req.False(applied)
	req.Equal(state.Timeline, updated.Timeline)
}

func Test_AppendMessage_keeps_timeline_order(t *testing.T) {
	req := require.New(t)
	state := readyState()

	updated := state.
		AppendMessage(Message{ID: 2, Content: "second"}).
		AppendMessage(Message{ID: 3, Content: "third"})

	req.Len(updated.Timeline, 3)
	req.Equal(2, updated.Timeline[1].ID)
	req.Equal(3, updated.Timeline[2].ID)
}

func Test_Loading_gates_every_phase_before_ready(t *testing.T) {
	req := require.New(t)

	req.False(PanelState{Phase: PhaseIdle}.Loading())
	req.True(PanelState{Phase: PhaseLoadingDirectory}.Loading())
	req.True(PanelState{Phase: PhaseLoadingInitialRoom}.Loading())
	req.False(PanelState{Phase: PhaseReady}.Loading())
}

func Test_HasRoom_distinguishes_directory_users_from_conversations(t *testing.T) {
	req := require.New(t)

	req.False(User{ID: 1, Name: "Yeong"}.HasRoom())
	req.True(User{ID: 2, Name: "Minji", RoomID: 42}.HasRoom())
}

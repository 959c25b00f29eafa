package session

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-panel/domain/chat"
	"chat-panel/domain/event"
	"chat-panel/mocks"
)

// Transition tests drive apply directly: no loop goroutine, no timing, every
// completion lands in a deterministic order.

func readyState() chat.PanelState {
	return chat.PanelState{
		Phase:     chat.PhaseReady,
		Directory: []chat.User{{ID: 1, Name: "Yeong"}, {ID: 2, Name: "Minji"}},
		Conversations: chat.Conversations{
			Entries: []chat.User{
				{ID: 2, Name: "Minji", RoomID: 42, LastMessage: "see you tomorrow"},
			},
			SelectedID: 2,
		},
		Timeline: []chat.Message{{ID: 1, Content: "hey"}},
	}
}

func quietSession(t *testing.T) (*Session, *mocks.MockIChatAPI, *RecordingSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockIChatAPI(ctrl)
	sink := &RecordingSink{}

	sess := New(api, mocks.NewMockIDirectoryLoader(ctrl), slog.Default(), 16)
	sess.AddSinks(sink)
	return sess, api, sink
}

func Test_stale_timeline_completion_is_discarded(t *testing.T) {
	req := require.New(t)
	sess, _, sink := quietSession(t)
	sess.snapshot = readyState()

	// A fetch for room 99 resolves while room 42 is selected
	sess.apply(context.Background(), timelineLoaded{
		roomID:   99,
		messages: []chat.Message{{ID: 7, Content: "stale"}},
	})

	req.Len(sess.Snapshot().Timeline, 1, "stale messages must not land")
	req.Empty(sink.ByType(event.TimelineReplacedType))
}

func Test_failed_initial_timeline_still_completes_the_phase_sequence(t *testing.T) {
	req := require.New(t)
	sess, _, sink := quietSession(t)

	state := readyState()
	state.Phase = chat.PhaseLoadingInitialRoom
	sess.snapshot = state

	sess.apply(context.Background(), timelineLoaded{
		roomID:  42,
		initial: true,
		err:     context.DeadlineExceeded,
	})

	req.Equal(chat.PhaseReady, sess.Snapshot().Phase, "a dead room fetch must not wedge the panel")
	req.Len(sink.ByType(event.FetchFailedType), 1)
}

func Test_blank_send_never_reaches_the_network(t *testing.T) {
	sess, _, _ := quietSession(t)
	sess.snapshot = readyState()

	// No PostMessage expectation is registered: any call fails the test
	sess.apply(context.Background(), chat.SendCommand{Text: "   "})
	sess.apply(context.Background(), chat.SendCommand{Text: "\n\t"})
}

func Test_send_without_a_selection_is_a_no_op(t *testing.T) {
	sess, _, _ := quietSession(t)
	state := readyState()
	state.Conversations.SelectedID = 0
	sess.snapshot = state

	sess.apply(context.Background(), chat.SendCommand{Text: "hello"})
}

func Test_room_created_for_a_user_outside_the_directory_is_ignored(t *testing.T) {
	req := require.New(t)
	sess, _, sink := quietSession(t)
	sess.snapshot = readyState()

	sess.apply(context.Background(), roomCreated{targetUserID: 99, roomID: 123})

	state := sess.Snapshot()
	req.Len(state.Conversations.Entries, 1)
	req.Equal(2, state.Conversations.SelectedID)
	req.Empty(sink.ByType(event.ConversationOpenType))
}

func Test_room_created_resets_the_timeline(t *testing.T) {
	req := require.New(t)
	sess, _, sink := quietSession(t)
	sess.snapshot = readyState()

	sess.apply(context.Background(), roomCreated{targetUserID: 1, roomID: 123})

	state := sess.Snapshot()
	req.Equal(1, state.Conversations.SelectedID)
	req.Equal(123, state.Conversations.Entries[0].RoomID)
	req.Empty(state.Timeline)
	req.Len(sink.ByType(event.ConversationOpenType), 1)
}

func Test_leave_requires_a_selected_conversation_with_a_room(t *testing.T) {
	sess, _, _ := quietSession(t)

	// No selection: LeaveRoom must not be called
	state := readyState()
	state.Conversations.SelectedID = 0
	sess.snapshot = state
	sess.apply(context.Background(), chat.LeaveRoomCommand{RoomID: 42, UserID: 2})

	// Selected entry without a room id
	state = readyState()
	state.Conversations.Entries[0].RoomID = 0
	sess.snapshot = state
	sess.apply(context.Background(), chat.LeaveRoomCommand{RoomID: 42, UserID: 2})
}

func Test_select_is_gated_while_loading(t *testing.T) {
	req := require.New(t)
	sess, _, _ := quietSession(t)

	state := readyState()
	state.Phase = chat.PhaseLoadingDirectory
	sess.snapshot = state

	sess.apply(context.Background(), chat.SelectCommand{UserID: 2})
	req.Equal(chat.PhaseLoadingDirectory, sess.Snapshot().Phase)
}

func Test_set_draft_updates_the_composer(t *testing.T) {
	req := require.New(t)
	sess, _, _ := quietSession(t)
	sess.snapshot = readyState()

	sess.apply(context.Background(), chat.SetDraftCommand{Text: "typing..."})
	req.Equal("typing...", sess.Snapshot().Draft)
}

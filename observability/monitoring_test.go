package observability

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chat-panel/domain/chat"
	"chat-panel/domain/event"
)

func Test_SessionStats_counts_consumed_events(t *testing.T) {
	req := require.New(t)
	stats := NewSessionStats()

	stats.Consume(event.DirectoryLoaded{DirectorySize: 3, InteractedSize: 1})
	stats.Consume(event.TimelineReplaced{RoomID: 42})
	stats.Consume(event.MessageAppended{RoomID: 42, Message: chat.Message{ID: 1}})
	stats.Consume(event.MessageAppended{RoomID: 42, Message: chat.Message{ID: 2}})
	stats.Consume(event.ConversationOpened{RoomID: 100, UserID: 3})
	stats.Consume(event.ConversationLeft{RoomID: 42, UserID: 2})
	stats.Consume(event.FetchFailed{Operation: "postMessage"})

	snapshot := stats.Snapshot()
	req.EqualValues(uint64(1), snapshot["DirectoryLoads"])
	req.EqualValues(uint64(1), snapshot["TimelineReplaces"])
	req.EqualValues(uint64(2), snapshot["MessagesSent"])
	req.EqualValues(uint64(1), snapshot["RoomsOpened"])
	req.EqualValues(uint64(1), snapshot["RoomsLeft"])
	req.EqualValues(uint64(1), snapshot["FetchFailures"])
	req.Contains(snapshot, "Uptime")
}

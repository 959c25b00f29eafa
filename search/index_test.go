package search

import (
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"

	"chat-panel/domain/chat"
	"chat-panel/domain/event"
)

func inMemoryIndex(t *testing.T) *Index {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewIndex(writer, slog.Default())
}

func Test_Index_finds_messages_from_consumed_events(t *testing.T) {
	req := require.New(t)
	index := inMemoryIndex(t)

	index.Consume(event.TimelineReplaced{
		RoomID: 42,
		Messages: []chat.Message{
			{ID: 1, Content: "the invoice is ready", Sender: chat.User{Name: "Minji"}},
			{ID: 2, Content: "see you tomorrow", Sender: chat.User{Name: "Minji"}},
		},
	})
	index.Consume(event.MessageAppended{
		RoomID:  10,
		Message: chat.Message{ID: 3, Content: "another invoice arrived", Sender: chat.User{Name: "Yeong"}},
	})

	results, total, err := index.Search(context.Background(), ParseQuery("/find invoice"))
	req.NoError(err)
	req.EqualValues(2, total)
	req.Len(results, 2)
	for _, r := range results {
		req.Contains(r.Content, "invoice")
	}
}

func Test_Index_room_filter_narrows_the_search(t *testing.T) {
	req := require.New(t)
	index := inMemoryIndex(t)

	index.Consume(event.TimelineReplaced{
		RoomID:   42,
		Messages: []chat.Message{{ID: 1, Content: "invoice ready", Sender: chat.User{Name: "Minji"}}},
	})
	index.Consume(event.TimelineReplaced{
		RoomID:   10,
		Messages: []chat.Message{{ID: 2, Content: "invoice sent", Sender: chat.User{Name: "Yeong"}}},
	})

	results, total, err := index.Search(context.Background(), ParseQuery("/find invoice --room 10"))
	req.NoError(err)
	req.EqualValues(1, total)
	req.Len(results, 1)
	req.Equal(10, results[0].RoomID)
	req.Equal("Yeong", results[0].Sender)
	req.Equal(2, results[0].MessageID)
}

func Test_Index_reloading_a_timeline_overwrites_instead_of_duplicating(t *testing.T) {
	req := require.New(t)
	index := inMemoryIndex(t)

	replaced := event.TimelineReplaced{
		RoomID:   42,
		Messages: []chat.Message{{ID: 1, Content: "hello panel", Sender: chat.User{Name: "Minji"}}},
	}
	index.Consume(replaced)
	index.Consume(replaced)

	_, total, err := index.Search(context.Background(), ParseQuery("/find panel"))
	req.NoError(err)
	req.EqualValues(1, total, "documents are keyed by room and message id")
}

func Test_Index_limit_caps_returned_results(t *testing.T) {
	req := require.New(t)
	index := inMemoryIndex(t)

	messages := make([]chat.Message, 0, 5)
	for i := 1; i <= 5; i++ {
		messages = append(messages, chat.Message{ID: i, Content: "repeated phrase", Sender: chat.User{Name: "Minji"}})
	}
	index.Consume(event.TimelineReplaced{RoomID: 42, Messages: messages})

	results, total, err := index.Search(context.Background(), ParseQuery("/find phrase --limit 2"))
	req.NoError(err)
	req.EqualValues(5, total, "the aggregation counts every hit")
	req.Len(results, 2, "the page honours the limit")
}

package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"

	"chat-panel/contract"
	"chat-panel/domain/chat"
	"chat-panel/domain/event"
)

// Ensure the index can be plugged into the session as a sink.
var _ contract.EventSink = (*Index)(nil)

// Index feeds every message the panel sees into a Bluge index. Documents are
// keyed by room and message id, so re-loading a timeline overwrites rather
// than duplicates.
type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIndex(writer *bluge.Writer, log *slog.Logger) *Index {
	return &Index{writer: writer, log: log}
}

// Result is one matched timeline entry.
type Result struct {
	MessageID int
	RoomID    int
	Content   string
	Sender    string
}

// Consume indexes applied session transitions. Indexing failures are logged
// and swallowed: search is an observer, never a reason to break the panel.
func (i *Index) Consume(e event.Event) {
	switch evt := e.(type) {
	case event.TimelineReplaced:
		for _, m := range evt.Messages {
			i.indexMessage(evt.RoomID, m)
		}
	case event.MessageAppended:
		i.indexMessage(evt.RoomID, evt.Message)
	}
}

func (i *Index) indexMessage(roomID int, m chat.Message) {
	doc := bluge.NewDocument(fmt.Sprintf("msg:%d:%d", roomID, m.ID)).
		AddField(bluge.NewTextField("content", m.Content).StoreValue()).
		AddField(bluge.NewKeywordField("room", strconv.Itoa(roomID)).StoreValue()).
		AddField(bluge.NewKeywordField("sender", m.Sender.Name).StoreValue()).
		AddField(bluge.NewKeywordField("message_id", strconv.Itoa(m.ID)).StoreValue())

	if err := i.writer.Update(doc.ID(), doc); err != nil {
		i.log.Warn(fmt.Sprintf("Indexing message %d failed: %v", m.ID, err))
	}
}

// Search runs the query and returns matches plus the total hit count.
func (i *Index) Search(ctx context.Context, q Query) ([]Result, uint64, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	boolean := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(q.Terms).SetField("content"))
	if q.RoomID != 0 {
		boolean.AddMust(bluge.NewTermQuery(strconv.Itoa(q.RoomID)).SetField("room"))
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	request := bluge.NewTopNSearch(limit, boolean).WithStandardAggregations()

	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, fmt.Errorf("searching timelines: %w", err)
	}

	var results []Result
	next, err := matches.Next()
	for err == nil && next != nil {
		var r Result
		visitErr := next.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "content":
				r.Content = string(value)
			case "room":
				r.RoomID, _ = strconv.Atoi(string(value))
			case "sender":
				r.Sender = string(value)
			case "message_id":
				r.MessageID, _ = strconv.Atoi(string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, 0, visitErr
		}
		results = append(results, r)
		next, err = matches.Next()
	}
	if err != nil {
		return nil, 0, err
	}

	return results, matches.Aggregations().Count(), nil
}

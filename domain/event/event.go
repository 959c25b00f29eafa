// Package event defines the session lifecycle events fanned out to sinks
// (stats, search index). Sinks observe the panel; they never mutate it.
package event

import "chat-panel/domain/chat"

type Type string

const (
	DirectoryLoadedType  Type = "DIRECTORY_LOADED"
	TimelineReplacedType Type = "TIMELINE_REPLACED"
	MessageAppendedType  Type = "MESSAGE_APPENDED"
	ConversationOpenType Type = "CONVERSATION_OPENED"
	ConversationLeftType Type = "CONVERSATION_LEFT"
	FetchFailedType      Type = "FETCH_FAILED"
)

type Event interface {
	EventType() Type
}

// DirectoryLoaded fires once the initial user pools are installed.
type DirectoryLoaded struct {
	DirectorySize  int
	InteractedSize int
}

// TimelineReplaced fires when a room timeline load was applied (stale loads
// are dropped before any event is emitted).
type TimelineReplaced struct {
	RoomID   int
	Messages []chat.Message
}

// MessageAppended fires for every server-confirmed outbound message.
type MessageAppended struct {
	RoomID  int
	Message chat.Message
}

// ConversationOpened fires when a new room was created and entered.
type ConversationOpened struct {
	RoomID int
	UserID int
}

// ConversationLeft fires when the actor left a room.
type ConversationLeft struct {
	RoomID int
	UserID int
}

// FetchFailed records a swallowed network failure. The panel never surfaces
// these to the user; sinks may count them.
type FetchFailed struct {
	Operation string
	Err       error
}

func (DirectoryLoaded) EventType() Type    { return DirectoryLoadedType }
func (TimelineReplaced) EventType() Type   { return TimelineReplacedType }
func (MessageAppended) EventType() Type    { return MessageAppendedType }
func (ConversationOpened) EventType() Type { return ConversationOpenType }
func (ConversationLeft) EventType() Type   { return ConversationLeftType }
func (FetchFailed) EventType() Type        { return FetchFailedType }

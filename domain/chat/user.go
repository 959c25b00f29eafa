// Package chat contains the core concepts of the chat panel.
// Types here are plain values: every state transition is a pure function
// so ordering and idempotence rules can be tested without any runtime.
package chat

// User is one platform member as the panel sees it.
// RoomID is zero until the actor has an active conversation with this user.
type User struct {
	ID          int
	Name        string
	AvatarURL   string // empty when no avatar could be resolved
	RoomID      int
	LastMessage string
}

// HasRoom reports whether the actor shares an active room with this user.
func (u User) HasRoom() bool {
	return u.RoomID != 0
}

// Message represents an immutable timeline entry.
// Insertion order is display order; messages are never edited or removed.
type Message struct {
	ID      int
	Content string
	Sender  User
}

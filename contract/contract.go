//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-panel/domain/chat"
	"chat-panel/domain/event"
	"context"
	"reflect"
)

// AvatarResponse carries the raw image reference for one user.
// An empty ImageURL means the user has no avatar.
type AvatarResponse struct {
	ImageURL string
}

// TimelineResponse carries the stored timeline of a room, oldest first.
type TimelineResponse struct {
	Chats []chat.Message
}

type CreateRoomResponse struct {
	ID int
}

type PostMessageResponse struct {
	ID      int
	Message string
}

// IChatAPI is the fixed request/response contract of the network
// collaborator. Transport is somebody else's problem: the panel only ever
// sees these seven operations.
type IChatAPI interface {
	FetchDirectory(ctx context.Context) ([]chat.User, error)
	FetchInteracted(ctx context.Context) ([]chat.User, error)
	FetchAvatar(ctx context.Context, userID int) (AvatarResponse, error)
	FetchRoomTimeline(ctx context.Context, roomID int) (TimelineResponse, error)
	CreateRoom(ctx context.Context, memberIDs []int, name string) (CreateRoomResponse, error)
	PostMessage(ctx context.Context, roomID, senderID int, text string) (PostMessageResponse, error)
	LeaveRoom(ctx context.Context, roomID, userID int) error
}

// IAvatarResolver turns a user id into a displayable canonical URL.
// "No avatar" is a valid answer, never an error.
type IAvatarResolver interface {
	Resolve(ctx context.Context, userID int) string
}

// IDirectoryLoader fetches and enriches the user pools.
type IDirectoryLoader interface {
	Load(ctx context.Context) (directory, interacted []chat.User)
}

// IAvatarCache remembers resolved avatar URLs between sessions.
type IAvatarCache interface {
	Get(userID int) (string, bool)
	Put(userID int, url string) error
}

// EventSink observes applied session transitions.
type EventSink interface {
	Consume(e event.Event)
}

// Worker is a long-running loop supervised for panics and restarts.
// Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// for logging and supervision purposes, so Worker itself stays minimal.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

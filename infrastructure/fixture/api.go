// Package fixture implements the network contract in memory. It backs the
// demo REPL and the end-to-end suite: same seven operations, scripted data,
// no transport.
package fixture

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"chat-panel/contract"
	"chat-panel/domain/chat"
)

var _ contract.IChatAPI = (*API)(nil)

// API is a scripted collaborator. Room and message ids are allocated
// monotonically, like the real backend does.
type API struct {
	mu         sync.Mutex
	users      []chat.User
	interacted []chat.User
	avatars    map[int]string
	timelines  map[int][]chat.Message
	failures   map[string]error

	nextRoomID    int
	nextMessageID int
}

func NewAPI() *API {
	return &API{
		avatars:       make(map[int]string),
		timelines:     make(map[int][]chat.Message),
		failures:      make(map[string]error),
		nextRoomID:    100,
		nextMessageID: 1,
	}
}

// SeedUsers installs the full directory population.
func (a *API) SeedUsers(users ...chat.User) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.users = append(a.users, users...)
	return a
}

// SeedInteracted installs pre-existing conversations, most recent first.
func (a *API) SeedInteracted(users ...chat.User) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.interacted = append(a.interacted, users...)
	for _, u := range users {
		if u.RoomID >= a.nextRoomID {
			a.nextRoomID = u.RoomID + 1
		}
	}
	return a
}

// SeedAvatar scripts the raw image reference returned for a user.
func (a *API) SeedAvatar(userID int, imageURL string) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.avatars[userID] = imageURL
	return a
}

// SeedTimeline installs a stored room timeline.
func (a *API) SeedTimeline(roomID int, messages ...chat.Message) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.timelines[roomID] = append(a.timelines[roomID], messages...)
	for _, m := range messages {
		if m.ID >= a.nextMessageID {
			a.nextMessageID = m.ID + 1
		}
	}
	return a
}

// FailNext scripts one operation to fail until cleared with a nil error.
func (a *API) FailNext(operation string, err error) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err == nil {
		delete(a.failures, operation)
	} else {
		a.failures[operation] = err
	}
	return a
}

func (a *API) failure(operation string) error {
	return a.failures[operation]
}

func (a *API) FetchDirectory(_ context.Context) ([]chat.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failure("fetchDirectory"); err != nil {
		return nil, err
	}
	out := make([]chat.User, len(a.users))
	copy(out, a.users)
	return out, nil
}

func (a *API) FetchInteracted(_ context.Context) ([]chat.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failure("fetchInteracted"); err != nil {
		return nil, err
	}
	out := make([]chat.User, len(a.interacted))
	copy(out, a.interacted)
	return out, nil
}

func (a *API) FetchAvatar(_ context.Context, userID int) (contract.AvatarResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failure("fetchAvatar"); err != nil {
		return contract.AvatarResponse{}, err
	}
	return contract.AvatarResponse{ImageURL: a.avatars[userID]}, nil
}

func (a *API) FetchRoomTimeline(_ context.Context, roomID int) (contract.TimelineResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failure("fetchRoomTimeline"); err != nil {
		return contract.TimelineResponse{}, err
	}
	stored := a.timelines[roomID]
	out := make([]chat.Message, len(stored))
	copy(out, stored)
	return contract.TimelineResponse{Chats: out}, nil
}

func (a *API) CreateRoom(_ context.Context, memberIDs []int, name string) (contract.CreateRoomResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failure("createRoom"); err != nil {
		return contract.CreateRoomResponse{}, err
	}
	_ = name // the fixture does not persist room names
	id := a.nextRoomID
	a.nextRoomID++
	a.timelines[id] = nil

	for _, memberID := range memberIDs {
		if member, ok := lo.Find(a.users, func(u chat.User) bool { return u.ID == memberID }); ok {
			member.RoomID = id
			a.interacted = append([]chat.User{member}, a.interacted...)
		}
	}
	return contract.CreateRoomResponse{ID: id}, nil
}

func (a *API) PostMessage(_ context.Context, roomID, senderID int, text string) (contract.PostMessageResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failure("postMessage"); err != nil {
		return contract.PostMessageResponse{}, err
	}
	id := a.nextMessageID
	a.nextMessageID++
	a.timelines[roomID] = append(a.timelines[roomID], chat.Message{
		ID:      id,
		Content: text,
		Sender:  chat.User{ID: senderID},
	})
	return contract.PostMessageResponse{ID: id, Message: text}, nil
}

func (a *API) LeaveRoom(_ context.Context, roomID, userID int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.failure("leaveRoom"); err != nil {
		return err
	}
	a.interacted = lo.Filter(a.interacted, func(u chat.User, _ int) bool {
		return !(u.ID == userID && u.RoomID == roomID)
	})
	return nil
}

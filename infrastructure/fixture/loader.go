package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"chat-panel/domain/chat"
)

// File is the on-disk shape of a scripted backend. Map keys are strings
// because JSON object keys always are; they hold user and room ids.
type File struct {
	Users      []userSeed               `json:"users"`
	Interacted []userSeed               `json:"interacted"`
	Avatars    map[string]string        `json:"avatars"`
	Timelines  map[string][]messageSeed `json:"timelines"`
}

type userSeed struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	RoomID      int    `json:"roomId"`
	LastMessage string `json:"lastMessage"`
}

type messageSeed struct {
	ID       int    `json:"id"`
	Content  string `json:"content"`
	SenderID int    `json:"senderId"`
}

// Load reads a JSON fixture file and seeds an API from it.
func Load(path string) (*API, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	api := NewAPI()
	for _, u := range file.Users {
		api.SeedUsers(chat.User{ID: u.ID, Name: u.Name})
	}
	for _, u := range file.Interacted {
		api.SeedInteracted(chat.User{ID: u.ID, Name: u.Name, RoomID: u.RoomID, LastMessage: u.LastMessage})
	}
	for key, url := range file.Avatars {
		userID, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("fixture avatar key %q: %w", key, err)
		}
		api.SeedAvatar(userID, url)
	}
	for key, messages := range file.Timelines {
		roomID, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("fixture timeline key %q: %w", key, err)
		}
		for _, m := range messages {
			api.SeedTimeline(roomID, chat.Message{
				ID:      m.ID,
				Content: m.Content,
				Sender:  chat.User{ID: m.SenderID},
			})
		}
	}
	return api, nil
}

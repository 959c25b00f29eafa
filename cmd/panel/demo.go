package main

import (
	"chat-panel/domain/chat"
	"chat-panel/infrastructure/fixture"
)

// demoFixture seeds a small scripted backend so the panel is usable without
// a FIXTURE_PATH.
func demoFixture() *fixture.API {
	api := fixture.NewAPI()
	api.SeedUsers(
		chat.User{ID: 1, Name: "Yeong"},
		chat.User{ID: 2, Name: "Minji"},
		chat.User{ID: 3, Name: "Hassan"},
	)
	api.SeedAvatar(1, "profiles/yeong.png")
	api.SeedAvatar(2, "profiles/minji.png")
	api.SeedInteracted(
		chat.User{ID: 2, Name: "Minji", RoomID: 42, LastMessage: "see you tomorrow"},
	)
	api.SeedTimeline(42,
		chat.Message{ID: 1, Content: "hey, is the portfolio up?", Sender: chat.User{ID: 2, Name: "Minji"}},
		chat.Message{ID: 2, Content: "see you tomorrow", Sender: chat.User{ID: 2, Name: "Minji"}},
	)
	return api
}

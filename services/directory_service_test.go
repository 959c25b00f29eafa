package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-panel/domain/chat"
	"chat-panel/mocks"
)

func Test_Load_enriches_directory_and_preserves_fetch_order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	api := mocks.NewMockIChatAPI(ctrl)
	avatars := mocks.NewMockIAvatarResolver(ctrl)

	users := []chat.User{
		{ID: 3, Name: "Hassan"},
		{ID: 1, Name: "Yeong"},
		{ID: 2, Name: "Minji"},
	}
	api.EXPECT().FetchDirectory(gomock.Any()).Return(users, nil)
	api.EXPECT().FetchInteracted(gomock.Any()).
		Return([]chat.User{{ID: 2, Name: "Minji", RoomID: 42}}, nil)
	avatars.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int) string {
			return fmt.Sprintf("%s/profiles/%d.png", origin, userID)
		}).Times(3)

	loader := NewDirectoryLoader(api, avatars, slog.Default(), 2)
	directory, interacted := loader.Load(context.Background())

	// Workers resolve concurrently but results keep the fetch order
	req.Len(directory, 3)
	req.Equal([]int{3, 1, 2}, []int{directory[0].ID, directory[1].ID, directory[2].ID})
	for _, u := range directory {
		req.Equal(fmt.Sprintf("%s/profiles/%d.png", origin, u.ID), u.AvatarURL)
	}

	req.Len(interacted, 1)
	req.Equal(42, interacted[0].RoomID)
}

func Test_Load_keeps_interacted_list_when_directory_fetch_fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	api := mocks.NewMockIChatAPI(ctrl)
	avatars := mocks.NewMockIAvatarResolver(ctrl)

	api.EXPECT().FetchDirectory(gomock.Any()).Return(nil, fmt.Errorf("backend down"))
	api.EXPECT().FetchInteracted(gomock.Any()).
		Return([]chat.User{{ID: 2, Name: "Minji", RoomID: 42}}, nil)

	loader := NewDirectoryLoader(api, avatars, slog.Default(), 2)
	directory, interacted := loader.Load(context.Background())

	req.Nil(directory)
	req.Len(interacted, 1)
}

func Test_Load_keeps_directory_when_interacted_fetch_fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	api := mocks.NewMockIChatAPI(ctrl)
	avatars := mocks.NewMockIAvatarResolver(ctrl)

	api.EXPECT().FetchDirectory(gomock.Any()).
		Return([]chat.User{{ID: 1, Name: "Yeong"}}, nil)
	api.EXPECT().FetchInteracted(gomock.Any()).Return(nil, fmt.Errorf("backend down"))
	avatars.EXPECT().Resolve(gomock.Any(), 1).Return("")

	loader := NewDirectoryLoader(api, avatars, slog.Default(), 4)
	directory, interacted := loader.Load(context.Background())

	req.Len(directory, 1)
	req.Nil(interacted)
}

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"

	"chat-panel/domain/chat"
	"chat-panel/infrastructure/fixture"
	"chat-panel/observability"
	"chat-panel/runtime/workers"
	"chat-panel/search"
	"chat-panel/services"
	"chat-panel/session"
)

// BasePanelSuite boots the full production wiring against a scripted backend:
// session loop, stats sink, search index, supervisor. Only the transport is
// replaced.
type BasePanelSuite struct {
	suite.Suite
	Config      Config
	StepTimeout time.Duration

	API     *fixture.API
	Session *session.Session
	Stats   *observability.SessionStats
	Index   *search.Index

	cancel func()
	done   chan struct{}
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePanelSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	s.StepTimeout, err = time.ParseDuration(s.Config.StepTimeout)
	s.Require().NoError(err)
}

func (s *BasePanelSuite) SetupTest() {
	log := slog.Default()

	if s.Config.FixturePath != "" {
		api, err := fixture.Load(s.Config.FixturePath)
		s.Require().NoError(err)
		s.API = api
	} else {
		s.API = seededAPI()
	}

	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	s.Require().NoError(err)

	resolver := services.NewAvatarResolver(s.API, nil, log, "https://files.portfolio.test")
	loader := services.NewDirectoryLoader(s.API, resolver, log, 4)
	s.Stats = observability.NewSessionStats()
	s.Index = search.NewIndex(writer, log)

	s.Session = session.New(s.API, loader, log, 64)
	s.Session.AddSinks(s.Stats, s.Index)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	sup := workers.NewSupervisor(log).Add(s.Session)
	go func() {
		sup.Run(ctx)
		close(s.done)
	}()
}

func (s *BasePanelSuite) TearDownTest() {
	s.cancel()
	select {
	case <-s.done:
	case <-time.After(s.StepTimeout):
		s.FailNow("Supervisor did not drain in time")
	}
}

// Step prints a colorized header so suite logs read as a scenario script
func (s *BasePanelSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// WaitForPanel polls the snapshot until the condition holds
func (s *BasePanelSuite) WaitForPanel(cond func(chat.PanelState) bool, msg string) {
	s.Eventually(func() bool {
		return cond(s.Session.Snapshot())
	}, s.StepTimeout, 20*time.Millisecond, msg)
}

func seededAPI() *fixture.API {
	api := fixture.NewAPI()
	api.SeedUsers(
		chat.User{ID: 1, Name: "Yeong"},
		chat.User{ID: 2, Name: "Minji"},
		chat.User{ID: 3, Name: "Hassan"},
	)
	api.SeedAvatar(1, "/profiles/yeong.png")
	api.SeedAvatar(2, "/profiles/minji.png")
	api.SeedInteracted(
		chat.User{ID: 2, Name: "Minji", RoomID: 42, LastMessage: "see you tomorrow"},
	)
	api.SeedTimeline(42,
		chat.Message{ID: 1, Content: "hey, is the portfolio up?", Sender: chat.User{ID: 2, Name: "Minji"}},
		chat.Message{ID: 2, Content: "see you tomorrow", Sender: chat.User{ID: 2, Name: "Minji"}},
	)
	return api
}

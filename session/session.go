// Package session owns the chat panel view model. One goroutine runs the
// loop; user commands and asynchronous fetch completions are both delivered
// as inbox messages, so state transitions are serialized by construction:
// ordering discipline instead of mutual exclusion, matching the cooperative
// scheduling of the UI the panel drives.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"chat-panel/contract"
	"chat-panel/domain/chat"
	"chat-panel/domain/event"
)

// Ensure *Session implements the contract.Worker interface at compile time.
var _ contract.Worker = (*Session)(nil)

// message is anything the loop can process: a chat.Command dispatched by the
// presentation surface, or an internal completion posted by a fetch
// goroutine.
type message interface{}

type Session struct {
	api    contract.IChatAPI
	loader contract.IDirectoryLoader
	log    *slog.Logger

	// moderate rewrites outbound text before it is posted. Identity when
	// no word list is configured.
	moderate func(string) string

	sinks []contract.EventSink
	inbox chan message

	mu       sync.RWMutex
	snapshot chat.PanelState
}

func New(api contract.IChatAPI, loader contract.IDirectoryLoader,
	log *slog.Logger, bufferSize int) *Session {
	return &Session{
		api:      api,
		loader:   loader,
		log:      log,
		moderate: func(s string) string { return s },
		inbox:    make(chan message, bufferSize),
	}
}

// SetModerator installs an outbound text filter applied before PostMessage.
func (s *Session) SetModerator(fn func(string) string) {
	if fn != nil {
		s.moderate = fn
	}
}

// AddSinks registers observers notified after every applied transition.
// Sinks run on the loop goroutine and must stay cheap.
func (s *Session) AddSinks(sinks ...contract.EventSink) {
	s.sinks = append(s.sinks, sinks...)
}

// Dispatch hands a user command to the loop. A full inbox drops the command
// with a warning rather than blocking the presentation surface.
func (s *Session) Dispatch(cmd chat.Command) {
	select {
	case s.inbox <- cmd:
	default:
		s.log.Warn(fmt.Sprintf("Session inbox full, dropping command %T", cmd))
	}
}

// Snapshot returns the last published view model. Renderers only ever read
// this copy; every write goes through the loop.
func (s *Session) Snapshot() chat.PanelState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Run processes the inbox until the context is canceled.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Stopping session loop")
			return ctx.Err()
		case msg, ok := <-s.inbox:
			if !ok {
				return nil
			}
			s.apply(ctx, msg)
		}
	}
}

// post delivers an internal completion back to the loop. Completions are
// never dropped: losing one would wedge the init phase sequence.
func (s *Session) post(ctx context.Context, msg message) {
	select {
	case s.inbox <- msg:
	case <-ctx.Done():
	}
}

func (s *Session) publish(state chat.PanelState, events ...event.Event) {
	s.mu.Lock()
	s.snapshot = state
	s.mu.Unlock()

	for _, e := range events {
		for _, sink := range s.sinks {
			sink.Consume(e)
		}
	}
}

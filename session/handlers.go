package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chat-panel/domain/chat"
	"chat-panel/domain/event"
)

// Internal completions. Each one is posted by a fetch goroutine and carries
// the identifiers of the state it was issued against, so the loop can
// discard results the user has already navigated away from.
type (
	directoryLoaded struct {
		directory  []chat.User
		interacted []chat.User
	}
	timelineLoaded struct {
		roomID   int
		messages []chat.Message
		initial  bool
		err      error
	}
	postConfirmed struct {
		messageID int
		content   string
		sentText  string
		sender    chat.User
	}
	roomCreated struct {
		targetUserID int
		roomID       int
	}
	roomLeft struct {
		roomID int
		userID int
	}
	fetchFailed struct {
		operation string
		err       error
	}
)

func (s *Session) apply(ctx context.Context, msg message) {
	state := s.Snapshot()

	switch m := msg.(type) {
	case chat.InitCommand:
		s.applyInit(ctx, state)
	case chat.SelectCommand:
		s.applySelect(ctx, state, m)
	case chat.SetDraftCommand:
		state.Draft = m.Text
		s.publish(state)
	case chat.SendCommand:
		s.applySend(ctx, state, m)
	case chat.StartRoomCommand:
		s.applyStartRoom(ctx, state, m)
	case chat.LeaveRoomCommand:
		s.applyLeave(ctx, state, m)

	case directoryLoaded:
		s.applyDirectoryLoaded(ctx, state, m)
	case timelineLoaded:
		s.applyTimelineLoaded(state, m)
	case postConfirmed:
		s.applyPostConfirmed(state, m)
	case roomCreated:
		s.applyRoomCreated(state, m)
	case roomLeft:
		state.Conversations = state.Conversations.Remove(m.userID)
		s.publish(state, event.ConversationLeft{RoomID: m.roomID, UserID: m.userID})
	case fetchFailed:
		s.log.Warn(fmt.Sprintf("%s failed: %v", m.operation, m.err))
		s.publish(state, event.FetchFailed{Operation: m.operation, Err: m.err})
	default:
		s.log.Debug(fmt.Sprintf("Unknown inbox message %T", msg))
	}
}

// applyInit starts the one and only initialization sequence. Any phase past
// Idle means a load is already underway or done, so a second trigger
// converges instead of double-fetching.
func (s *Session) applyInit(ctx context.Context, state chat.PanelState) {
	if state.Phase != chat.PhaseIdle {
		s.log.Debug("Init already triggered, ignoring")
		return
	}
	state.Phase = chat.PhaseLoadingDirectory
	s.publish(state)

	go func() {
		directory, interacted := s.loader.Load(ctx)
		s.post(ctx, directoryLoaded{directory: directory, interacted: interacted})
	}()
}

func (s *Session) applyDirectoryLoaded(ctx context.Context, state chat.PanelState, m directoryLoaded) {
	state = state.WithDirectory(m.directory, m.interacted)

	if len(m.interacted) == 0 {
		state.Phase = chat.PhaseReady
		s.publish(state, event.DirectoryLoaded{
			DirectorySize:  len(m.directory),
			InteractedSize: 0,
		})
		return
	}

	initial := m.interacted[0]
	state.Conversations = state.Conversations.Select(initial.ID)
	state.Phase = chat.PhaseLoadingInitialRoom
	s.publish(state, event.DirectoryLoaded{
		DirectorySize:  len(m.directory),
		InteractedSize: len(m.interacted),
	})

	s.fetchTimeline(ctx, initial.RoomID, true)
}

func (s *Session) fetchTimeline(ctx context.Context, roomID int, initial bool) {
	go func() {
		resp, err := s.api.FetchRoomTimeline(ctx, roomID)
		s.post(ctx, timelineLoaded{
			roomID:   roomID,
			messages: resp.Chats,
			initial:  initial,
			err:      err,
		})
	}()
}

// applyTimelineLoaded installs a fetched timeline unless the user switched
// rooms while it was in flight; ReplaceTimeline carries that guard. The
// initial load completes the phase sequence whether or not it applied.
func (s *Session) applyTimelineLoaded(state chat.PanelState, m timelineLoaded) {
	var events []event.Event
	applied := false

	if m.err != nil {
		s.log.Warn(fmt.Sprintf("Timeline fetch for room %d failed: %v", m.roomID, m.err))
		events = append(events, event.FetchFailed{Operation: "fetchRoomTimeline", Err: m.err})
	} else {
		state, applied = state.ReplaceTimeline(m.roomID, m.messages)
		if applied {
			events = append(events, event.TimelineReplaced{RoomID: m.roomID, Messages: m.messages})
		} else {
			s.log.Debug(fmt.Sprintf("Discarding stale timeline for room %d", m.roomID))
		}
	}

	if m.initial && state.Phase == chat.PhaseLoadingInitialRoom {
		state.Phase = chat.PhaseReady
	}
	s.publish(state, events...)
}

func (s *Session) applySelect(ctx context.Context, state chat.PanelState, m chat.SelectCommand) {
	if state.Loading() {
		return
	}
	selected := state.Conversations.Select(m.UserID)
	entry, ok := selected.Find(m.UserID)
	if !ok {
		s.log.Debug(fmt.Sprintf("Select ignored, user %d has no conversation entry", m.UserID))
		return
	}

	// Selection and timeline load travel together: selecting without
	// loading would leave the previous room's messages on screen forever.
	state.Conversations = selected
	s.publish(state)
	s.fetchTimeline(ctx, entry.RoomID, false)
}

func (s *Session) applySend(ctx context.Context, state chat.PanelState, m chat.SendCommand) {
	if strings.TrimSpace(m.Text) == "" {
		return
	}
	selected, ok := state.Conversations.Selected()
	if !ok {
		return
	}

	text := s.moderate(m.Text)
	go func() {
		resp, err := s.api.PostMessage(ctx, selected.RoomID, selected.ID, text)
		if err != nil {
			s.post(ctx, fetchFailed{operation: "postMessage", err: err})
			return
		}
		s.post(ctx, postConfirmed{
			messageID: resp.ID,
			content:   resp.Message,
			sentText:  text,
			sender:    selected,
		})
	}()
}

// applyPostConfirmed appends the server-confirmed message and promotes the
// recipient's entry. No optimistic insert ever happened, so this is the one
// place an outbound message enters the timeline.
func (s *Session) applyPostConfirmed(state chat.PanelState, m postConfirmed) {
	confirmed := chat.Message{ID: m.messageID, Content: m.content, Sender: m.sender}
	state = state.AppendMessage(confirmed)
	state.Conversations = state.Conversations.
		Promote(m.sender, m.sentText).
		Select(m.sender.ID)
	state.Draft = ""
	s.publish(state, event.MessageAppended{RoomID: m.sender.RoomID, Message: confirmed})
}

func (s *Session) applyStartRoom(ctx context.Context, state chat.PanelState, m chat.StartRoomCommand) {
	if state.Loading() {
		return
	}
	// Best-effort unique name; collisions across clients are the server's
	// problem, as in the original contract.
	name := fmt.Sprintf("Room_%d", time.Now().UnixMilli())
	go func() {
		resp, err := s.api.CreateRoom(ctx, []int{m.TargetUserID}, name)
		if err != nil {
			s.post(ctx, fetchFailed{operation: "createRoom", err: err})
			return
		}
		s.post(ctx, roomCreated{targetUserID: m.TargetUserID, roomID: resp.ID})
	}()
}

// applyRoomCreated opens the conversation for the freshly created room.
// A target missing from the loaded directory stays a silent no-op even
// though the room now exists server-side; there is no compensating delete.
func (s *Session) applyRoomCreated(state chat.PanelState, m roomCreated) {
	target, ok := state.FindDirectoryUser(m.targetUserID)
	if !ok {
		s.log.Warn(fmt.Sprintf("Room %d created but user %d is not in the directory", m.roomID, m.targetUserID))
		return
	}
	target.RoomID = m.roomID
	state.Conversations = state.Conversations.
		Promote(target, "").
		Select(target.ID)
	state.Timeline = nil
	s.publish(state, event.ConversationOpened{RoomID: m.roomID, UserID: target.ID})
}

func (s *Session) applyLeave(ctx context.Context, state chat.PanelState, m chat.LeaveRoomCommand) {
	selected, ok := state.Conversations.Selected()
	if !ok || !selected.HasRoom() {
		return
	}
	go func() {
		if err := s.api.LeaveRoom(ctx, m.RoomID, m.UserID); err != nil {
			s.post(ctx, fetchFailed{operation: "leaveRoom", err: err})
			return
		}
		s.post(ctx, roomLeft{roomID: m.RoomID, userID: m.UserID})
	}()
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"chat-panel/domain/chat"
	"chat-panel/search"
	"chat-panel/session"
)

// repl is the demo presentation surface: it only dispatches commands and
// renders snapshots, exactly the contract the real UI would have.
type repl struct {
	sess  *session.Session
	index *search.Index
	log   *slog.Logger
}

func newREPL(sess *session.Session, index *search.Index, log *slog.Logger) *repl {
	return &repl{sess: sess, index: index, log: log}
}

func (r *repl) Run(ctx context.Context) {
	r.sess.Dispatch(chat.InitCommand{})
	r.waitUntilReady(ctx)
	r.renderChats()

	color.New(color.FgCyan).Println("Commands: /users /chats /open <id> /select <id> /leave /find <terms> /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "/quit":
			return
		case line == "/users":
			r.renderUsers()
		case line == "/chats":
			r.renderChats()
		case strings.HasPrefix(line, "/open "):
			if id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/open "))); err == nil {
				r.sess.Dispatch(chat.StartRoomCommand{TargetUserID: id})
			}
			r.settleAndRenderTimeline()
		case strings.HasPrefix(line, "/select "):
			if id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/select "))); err == nil {
				r.sess.Dispatch(chat.SelectCommand{UserID: id})
			}
			r.settleAndRenderTimeline()
		case line == "/leave":
			if selected, ok := r.sess.Snapshot().Conversations.Selected(); ok {
				r.sess.Dispatch(chat.LeaveRoomCommand{RoomID: selected.RoomID, UserID: selected.ID})
			}
			r.settle()
			r.renderChats()
		case strings.HasPrefix(line, "/find"):
			r.renderSearch(ctx, line)
		case line != "":
			r.sess.Dispatch(chat.SendCommand{Text: line})
			r.settleAndRenderTimeline()
		}
	}
}

func (r *repl) waitUntilReady(ctx context.Context) {
	for r.sess.Snapshot().Phase != chat.PhaseReady {
		select {
		case <-ctx.Done():
			return
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// settle gives in-flight completions a beat to land. Good enough for a demo
// driver; the real UI re-renders on every snapshot instead.
func (r *repl) settle() {
	time.Sleep(150 * time.Millisecond)
}

func (r *repl) settleAndRenderTimeline() {
	r.settle()
	r.renderTimeline()
}

func (r *repl) renderUsers() {
	state := r.sess.Snapshot()
	table := newTable([]string{"ID", "Name", "Avatar"})
	for _, u := range state.Directory {
		table.Append([]string{strconv.Itoa(u.ID), u.Name, u.AvatarURL})
	}
	table.Render()
}

func (r *repl) renderChats() {
	state := r.sess.Snapshot()
	table := newTable([]string{"", "ID", "Name", "Room", "Last message"})
	for _, u := range state.Conversations.Entries {
		marker := ""
		if u.ID == state.Conversations.SelectedID {
			marker = ">"
		}
		table.Append([]string{marker, strconv.Itoa(u.ID), u.Name, strconv.Itoa(u.RoomID), u.LastMessage})
	}
	table.Render()
	if len(state.Conversations.Entries) == 0 || state.Conversations.SelectedID == 0 {
		color.New(color.FgYellow).Println("Choose a conversation")
	}
}

func (r *repl) renderTimeline() {
	state := r.sess.Snapshot()
	selected, ok := state.Conversations.Selected()
	if !ok {
		color.New(color.FgYellow).Println("Choose a conversation")
		return
	}
	color.New(color.FgGreen).Println(fmt.Sprintf("--- %s (room %d) ---", selected.Name, selected.RoomID))
	for _, m := range state.Timeline {
		fmt.Printf("[%d] %s: %s\n", m.ID, m.Sender.Name, m.Content)
	}
}

func (r *repl) renderSearch(ctx context.Context, line string) {
	query := search.ParseQuery(line)
	results, total, err := r.index.Search(ctx, query)
	if err != nil {
		r.log.Warn(fmt.Sprintf("Search failed: %v", err))
		return
	}
	color.New(color.FgGreen).Println(fmt.Sprintf("%d match(es)", total))
	table := newTable([]string{"Room", "Message", "Sender", "Content"})
	for _, res := range results {
		table.Append([]string{strconv.Itoa(res.RoomID), strconv.Itoa(res.MessageID), res.Sender, res.Content})
	}
	table.Render()
}

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

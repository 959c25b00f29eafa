// Package observability aggregates panel telemetry for the reporter worker
// and the debug inspector.
package observability

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"

	"chat-panel/contract"
	"chat-panel/domain/event"
)

// Ensure stats can observe the session as a sink.
var _ contract.EventSink = (*SessionStats)(nil)

// SessionStats counts applied session transitions. Counters are atomic so
// the reporter and the debug endpoint can read them off-loop.
type SessionStats struct {
	startedAt time.Time

	directoryLoads   uint64
	timelineReplaces uint64
	messagesSent     uint64
	roomsOpened      uint64
	roomsLeft        uint64
	fetchFailures    uint64
}

func NewSessionStats() *SessionStats {
	return &SessionStats{startedAt: time.Now()}
}

func (s *SessionStats) Consume(e event.Event) {
	switch e.EventType() {
	case event.DirectoryLoadedType:
		atomic.AddUint64(&s.directoryLoads, 1)
	case event.TimelineReplacedType:
		atomic.AddUint64(&s.timelineReplaces, 1)
	case event.MessageAppendedType:
		atomic.AddUint64(&s.messagesSent, 1)
	case event.ConversationOpenType:
		atomic.AddUint64(&s.roomsOpened, 1)
	case event.ConversationLeftType:
		atomic.AddUint64(&s.roomsLeft, 1)
	case event.FetchFailedType:
		atomic.AddUint64(&s.fetchFailures, 1)
	}
}

// Snapshot returns the counters plus process memory, shaped for the debug
// inspector's stats panel.
func (s *SessionStats) Snapshot() map[string]any {
	stats := map[string]any{
		"Uptime":           time.Since(s.startedAt).Round(time.Second).String(),
		"DirectoryLoads":   atomic.LoadUint64(&s.directoryLoads),
		"TimelineReplaces": atomic.LoadUint64(&s.timelineReplaces),
		"MessagesSent":     atomic.LoadUint64(&s.messagesSent),
		"RoomsOpened":      atomic.LoadUint64(&s.roomsOpened),
		"RoomsLeft":        atomic.LoadUint64(&s.roomsLeft),
		"FetchFailures":    atomic.LoadUint64(&s.fetchFailures),
	}

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := p.MemoryInfo(); err == nil {
			stats["RssMb"] = mem.RSS / 1024 / 1024
		}
	}
	return stats
}

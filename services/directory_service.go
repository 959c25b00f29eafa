package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"chat-panel/contract"
	"chat-panel/domain/chat"
)

// DirectoryLoader fetches the full user population and the actor's
// interacted-user set, then enriches the directory with avatars. The two
// top-level fetches run concurrently and fail independently: losing one
// list never costs the other.
type DirectoryLoader struct {
	api      contract.IChatAPI
	avatars  contract.IAvatarResolver
	log      *slog.Logger
	nWorkers int
}

func NewDirectoryLoader(api contract.IChatAPI, avatars contract.IAvatarResolver,
	log *slog.Logger, nWorkers int) *DirectoryLoader {
	if nWorkers < 1 {
		nWorkers = 1
	}
	return &DirectoryLoader{api: api, avatars: avatars, log: log, nWorkers: nWorkers}
}

// Load returns the enriched directory and the interacted list. Either slice
// may be nil after a swallowed fetch failure; both orderings are exactly
// what the collaborator returned.
func (l *DirectoryLoader) Load(ctx context.Context) (directory, interacted []chat.User) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		users, err := l.api.FetchDirectory(ctx)
		if err != nil {
			l.log.Warn(fmt.Sprintf("Directory fetch failed: %v", err))
			return
		}
		directory = l.enrich(ctx, users)
	}()

	go func() {
		defer wg.Done()
		users, err := l.api.FetchInteracted(ctx)
		if err != nil {
			l.log.Warn(fmt.Sprintf("Interacted-user fetch failed: %v", err))
			return
		}
		interacted = users
	}()

	wg.Wait()
	return directory, interacted
}

// enrich resolves avatars through a bounded worker pool. Results are written
// back by index, so the directory keeps its fetch order regardless of which
// resolution finishes first.
func (l *DirectoryLoader) enrich(ctx context.Context, users []chat.User) []chat.User {
	enriched := make([]chat.User, len(users))
	copy(enriched, users)

	indexes := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < l.nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				enriched[idx].AvatarURL = l.avatars.Resolve(ctx, enriched[idx].ID)
			}
		}()
	}

	for i := range enriched {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	return enriched
}

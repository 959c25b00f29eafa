package services

import (
	"context"
	"fmt"
	"log/slog"

	"chat-panel/contract"
	"chat-panel/domain/chat"
)

// AvatarResolver resolves a user's stored image reference into a canonical
// absolute URL under one fixed origin. A missing reference, a failed fetch
// or a failed cache write all degrade to "no avatar": one user's avatar must
// never abort the enrichment of the rest of the directory.
type AvatarResolver struct {
	api    contract.IChatAPI
	cache  contract.IAvatarCache
	log    *slog.Logger
	origin string
}

// NewAvatarResolver builds a resolver. cache may be nil; resolution then
// always goes to the network.
func NewAvatarResolver(api contract.IChatAPI, cache contract.IAvatarCache,
	log *slog.Logger, origin string) *AvatarResolver {
	return &AvatarResolver{api: api, cache: cache, log: log, origin: origin}
}

// Resolve returns the displayable URL for the user, or "" when there is
// none. The cache answer is already canonical, so only network results go
// through the rewrite.
func (r *AvatarResolver) Resolve(ctx context.Context, userID int) string {
	if r.cache != nil {
		if url, ok := r.cache.Get(userID); ok {
			return url
		}
	}

	resp, err := r.api.FetchAvatar(ctx, userID)
	if err != nil {
		r.log.Debug(fmt.Sprintf("Avatar fetch failed for user %d: %v", userID, err))
		return ""
	}

	url := chat.CanonicalAvatarURL(r.origin, resp.ImageURL)
	if r.cache != nil {
		if err := r.cache.Put(userID, url); err != nil {
			// The cache is advisory; the resolved URL is still good.
			r.log.Debug(fmt.Sprintf("Avatar cache write failed for user %d: %v", userID, err))
		}
	}
	return url
}

package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// AnonymousID returns the stable anonymous reader id of this client.
	// The id is generated and persisted on first call.
	AnonymousID(ctx context.Context) (string, error)

	// SaveDraft stores unsent comment text for an article.
	// An empty text removes the draft.
	SaveDraft(ctx context.Context, articleID, text string) error

	// GetDraft returns the stored draft or "" if there is none
	GetDraft(ctx context.Context, articleID string) (string, error)
}

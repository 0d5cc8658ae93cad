package boltdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const (
	keyAnonymousID = "anonymous_id"
)

// AnonymousID возвращает идентификатор анонимного читателя,
// создавая его при первом обращении
func (s *Storage) AnonymousID(ctx context.Context) (string, error) {
	var id string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if existing := bucket.Get([]byte(keyAnonymousID)); existing != nil {
			id = string(existing)
			return nil
		}

		id = uuid.New().String()
		if err := bucket.Put([]byte(keyAnonymousID), []byte(id)); err != nil {
			return fmt.Errorf("failed to save anonymous id: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get anonymous id: %w", err)
	}

	return id, nil
}

// SaveDraft сохраняет черновик комментария к статье
func (s *Storage) SaveDraft(ctx context.Context, articleID, text string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		if text == "" {
			if err := bucket.Delete([]byte(articleID)); err != nil {
				return fmt.Errorf("failed to delete draft: %w", err)
			}
			return nil
		}

		if err := bucket.Put([]byte(articleID), []byte(text)); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
		return nil
	})
}

// GetDraft возвращает черновик комментария или пустую строку
func (s *Storage) GetDraft(ctx context.Context, articleID string) (string, error) {
	var text string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		// bbolt значение действительно только внутри транзакции
		if v := bucket.Get([]byte(articleID)); v != nil {
			text = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get draft: %w", err)
	}

	return text, nil
}

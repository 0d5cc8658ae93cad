package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/unipress/internal/models"
)

// GetSettings возвращает настройки сайта
func (s *Storage) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.db.QueryRowContext(ctx, `
		SELECT site_name, tagline, base_url, comments_enabled, anonymous_reactions, updated_at
		FROM site_settings WHERE id = 1
	`).Scan(
		&settings.SiteName,
		&settings.Tagline,
		&settings.BaseURL,
		&settings.CommentsEnabled,
		&settings.AnonymousReactions,
		&settings.UpdatedAt,
	)
	if err != nil {
		return settings, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings сохраняет настройки сайта
func (s *Storage) UpdateSettings(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error) {
	settings.UpdatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		UPDATE site_settings
		SET site_name = ?, tagline = ?, base_url = ?, comments_enabled = ?, anonymous_reactions = ?, updated_at = ?
		WHERE id = 1
	`,
		settings.SiteName,
		settings.Tagline,
		settings.BaseURL,
		settings.CommentsEnabled,
		settings.AnonymousReactions,
		settings.UpdatedAt,
	)
	if err != nil {
		return settings, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}

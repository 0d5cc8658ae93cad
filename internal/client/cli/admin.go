package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/unipress/internal/models"
)

func (c *Cli) runAdminRole(ctx context.Context, userID string, role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("unknown role %q. Use: reader, author, editor or admin", role)
	}

	user, err := c.repos.Admin.SetRole(ctx, userID, role)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}

	c.io.Printf("✓ %s is now %s\n", user.Username, user.Role)
	return nil
}

func (c *Cli) runAdminSettings(ctx context.Context, assignments []string) error {
	settings, err := c.repos.Admin.Settings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if len(assignments) == 0 {
		return c.render("settings", settingsTemplate, settings)
	}

	for _, a := range assignments {
		if err := applySetting(&settings, a); err != nil {
			return err
		}
	}

	updated, err := c.repos.Admin.UpdateSettings(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	c.io.Println("✓ Settings updated")
	return c.render("settings", settingsTemplate, updated)
}

// applySetting применяет присваивание вида key=value
func applySetting(s *models.SiteSettings, assignment string) error {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("invalid setting %q, expected key=value", assignment)
	}

	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		return b, nil
	}

	switch strings.TrimSpace(key) {
	case "site_name":
		s.SiteName = value
	case "tagline":
		s.Tagline = value
	case "base_url":
		s.BaseURL = value
	case "comments_enabled":
		b, err := parseBool()
		if err != nil {
			return err
		}
		s.CommentsEnabled = b
	case "anonymous_reactions":
		b, err := parseBool()
		if err != nil {
			return err
		}
		s.AnonymousReactions = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func (c *Cli) runAdminModeration(ctx context.Context) error {
	pending, err := c.repos.Admin.Moderation(ctx)
	if err != nil {
		return fmt.Errorf("failed to get moderation queue: %w", err)
	}

	return c.render("moderation", articleListTemplate, articlePage{
		Status:   models.ArticlePending,
		Articles: pending,
		Page:     1,
		Pages:    1,
		Total:    len(pending),
	})
}

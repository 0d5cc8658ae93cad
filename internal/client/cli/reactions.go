package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/unipress/internal/client/views"
	"github.com/iudanet/unipress/internal/models"
)

func (c *Cli) runReactions(ctx context.Context, articleID string) error {
	bar := views.NewReactionBar(articleID, c.viewDeps(nil, nil), c.repos.Reactions, c.metadata)
	if err := bar.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load reactions: %w", err)
	}
	return c.render("reactions", reactionsTemplate, bar.Summaries())
}

func (c *Cli) runReact(ctx context.Context, articleID string, kind models.ReactionKind) error {
	bar := views.NewReactionBar(articleID, c.viewDeps(nil, nil), c.repos.Reactions, c.metadata)
	if err := bar.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load reactions: %w", err)
	}

	if err := bar.Toggle(ctx, kind); err != nil {
		return reported(err)
	}

	if bar.Summary(kind).UserReacted {
		c.io.Printf("✓ Reacted with %s\n", kind)
	} else {
		c.io.Printf("✓ Removed %s\n", kind)
	}
	return c.render("reactions", reactionsTemplate, bar.Summaries())
}

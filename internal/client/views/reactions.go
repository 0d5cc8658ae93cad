package views

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/iudanet/unipress/internal/client/apperr"
	"github.com/iudanet/unipress/internal/client/notify"
	"github.com/iudanet/unipress/internal/client/optimistic"
	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

// ReactionBar счетчики реакций статьи
type ReactionBar struct {
	reactions repository.Reactions
	session   session.TokenSource
	anon      repository.AnonymousIDs
	notifier  notify.Notifier
	logger    *slog.Logger
	onChange  func()
	res       *optimistic.Resource[models.ReactionSummary]
	live      live
	articleID string
}

// NewReactionBar создает панель реакций. anon нужен, чтобы узнавать
// собственные анонимные реакции в realtime событиях; может быть nil.
func NewReactionBar(articleID string, deps Deps, reactions repository.Reactions, anon repository.AnonymousIDs) *ReactionBar {
	deps = deps.withDefaults()
	logger := deps.Logger.With("view", "reactions")
	return &ReactionBar{
		reactions: reactions,
		session:   deps.Session,
		anon:      anon,
		notifier:  deps.Notifier,
		logger:    logger,
		onChange:  deps.OnChange,
		live:      live{subs: deps.Subscriptions},
		articleID: articleID,
		res: optimistic.New(optimistic.Options[models.ReactionSummary]{
			Notifier: deps.Notifier,
			Logger:   logger,
			Label:    "reaction",
			Order:    optimistic.OldestFirst,
		}),
	}
}

// Open загружает счетчики и подписывается на реакции статьи
func (v *ReactionBar) Open(ctx context.Context) error {
	if err := v.Refresh(ctx); err != nil {
		return err
	}
	return v.live.open(ctx, realtime.ReactionsScope(v.articleID), v.handle)
}

// Refresh перечитывает счетчики. Отсутствующие типы реакций
// показываются с нулевым счетчиком.
func (v *ReactionBar) Refresh(ctx context.Context) error {
	summary, err := v.reactions.Summary(ctx, v.articleID)
	if err != nil {
		return err
	}

	byKind := make(map[models.ReactionKind]models.ReactionSummary, len(summary))
	for _, s := range summary {
		byKind[s.Kind] = s
	}

	all := make([]models.ReactionSummary, 0, len(models.ReactionKinds))
	for _, kind := range models.ReactionKinds {
		s, ok := byKind[kind]
		if !ok {
			s = models.ReactionSummary{ArticleID: v.articleID, Kind: kind}
		}
		all = append(all, s)
	}

	v.res.Load(all)
	return nil
}

// Close отписывается от изменений
func (v *ReactionBar) Close() {
	v.live.close()
}

// Summaries счетчики в порядке отображения
func (v *ReactionBar) Summaries() []models.ReactionSummary {
	return v.res.Values()
}

// Summary счетчик одного типа
func (v *ReactionBar) Summary(kind models.ReactionKind) models.ReactionSummary {
	s, ok := v.res.Get(models.SummaryKey(v.articleID, kind))
	if !ok {
		return models.ReactionSummary{ArticleID: v.articleID, Kind: kind}
	}
	return s
}

// Toggle переключает реакцию текущего пользователя.
// Переход вычисляется из состояния, видимого клиенту сейчас.
func (v *ReactionBar) Toggle(ctx context.Context, kind models.ReactionKind) error {
	if !kind.Valid() {
		err := apperr.Validation("toggle reaction", "unknown reaction "+string(kind))
		v.notifier.Error(err)
		return err
	}

	next := v.Summary(kind).Toggled()

	_, err := v.res.Run(ctx, optimistic.Mutation[models.ReactionSummary]{
		Kind:   optimistic.Update,
		Key:    next.RecordID(),
		Record: next,
	}, func(ctx context.Context) (models.ReactionSummary, error) {
		resp, err := v.reactions.Toggle(ctx, v.articleID, kind)
		if err != nil {
			return models.ReactionSummary{}, err
		}
		return resp.Summary, nil
	})
	return err
}

// self идентификатор автора реакций этого клиента в том виде,
// в каком его рассылает сервер
func (v *ReactionBar) self(ctx context.Context) string {
	if id := v.session.UserID(); id != "" {
		return id
	}
	if v.anon == nil {
		return ""
	}
	anonID, err := v.anon.AnonymousID(ctx)
	if err != nil {
		return ""
	}
	return models.PublicReactor(models.AnonymousReactor(anonID))
}

// handle переводит событие строки реакции в изменение счетчика
func (v *ReactionBar) handle(ev api.ChangeEvent) {
	raw := ev.New
	delta := 1
	if ev.EventType == api.EventDelete {
		raw = ev.Old
		delta = -1
	}
	if ev.EventType == api.EventUpdate || len(raw) == 0 {
		return
	}

	var row models.Reaction
	if err := json.Unmarshal(raw, &row); err != nil {
		v.logger.Warn("Skipping reaction event", "error", err)
		return
	}
	if row.ArticleID != v.articleID {
		return
	}

	actor := ev.Actor
	if actor == "" {
		actor = row.UserID
	}

	current := v.Summary(row.Kind)
	next := current
	next.Count += delta
	if next.Count < 0 {
		next.Count = 0
	}

	changed := v.res.Apply(optimistic.Event[models.ReactionSummary]{
		Type:   api.EventUpdate,
		Actor:  actor,
		Record: next,
	}, v.self(context.Background()))
	if changed {
		v.onChange()
	}
}

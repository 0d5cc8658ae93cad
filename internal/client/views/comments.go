package views

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/unipress/internal/client/apperr"
	"github.com/iudanet/unipress/internal/client/notify"
	"github.com/iudanet/unipress/internal/client/optimistic"
	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/validation"
	"github.com/iudanet/unipress/pkg/api"
)

// Drafts хранилище неотправленного текста комментариев
type Drafts interface {
	SaveDraft(ctx context.Context, articleID, text string) error
	GetDraft(ctx context.Context, articleID string) (string, error)
}

// CommentThread обсуждение одной статьи, новые комментарии сверху
type CommentThread struct {
	comments repository.Comments
	session  session.TokenSource
	drafts   Drafts
	notifier notify.Notifier
	logger   *slog.Logger
	onChange func()
	res      *optimistic.Resource[models.Comment]
	live     live
	article  string
	draft    string
	mu       sync.Mutex
}

// NewCommentThread создает обсуждение статьи. drafts может быть nil.
func NewCommentThread(articleID string, deps Deps, comments repository.Comments, drafts Drafts) *CommentThread {
	deps = deps.withDefaults()
	logger := deps.Logger.With("view", "comments")
	return &CommentThread{
		comments: comments,
		session:  deps.Session,
		drafts:   drafts,
		notifier: deps.Notifier,
		logger:   logger,
		onChange: deps.OnChange,
		live:     live{subs: deps.Subscriptions},
		article:  articleID,
		res: optimistic.New(optimistic.Options[models.Comment]{
			Notifier: deps.Notifier,
			Logger:   logger,
			Label:    "comment",
			Order:    optimistic.NewestFirst,
		}),
	}
}

// ArticleID текущая статья
func (v *CommentThread) ArticleID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.article
}

// Open загружает комментарии, восстанавливает черновик и подписывается на изменения
func (v *CommentThread) Open(ctx context.Context) error {
	articleID := v.ArticleID()

	if err := v.Refresh(ctx); err != nil {
		return err
	}

	if v.drafts != nil {
		text, err := v.drafts.GetDraft(ctx, articleID)
		if err != nil {
			v.logger.Warn("Failed to load draft", "article_id", articleID, "error", err)
		} else {
			v.mu.Lock()
			v.draft = text
			v.mu.Unlock()
		}
	}

	return v.live.open(ctx, realtime.CommentsScope(articleID), v.handle)
}

// Refresh перечитывает комментарии с сервера
func (v *CommentThread) Refresh(ctx context.Context) error {
	comments, err := v.comments.List(ctx, v.ArticleID())
	if err != nil {
		return err
	}
	v.res.Load(comments)
	return nil
}

// Close отписывается от изменений
func (v *CommentThread) Close() {
	v.live.close()
}

// SwitchArticle переключает обсуждение на другую статью:
// старая подписка закрывается до открытия новой
func (v *CommentThread) SwitchArticle(ctx context.Context, articleID string) error {
	v.live.close()

	v.mu.Lock()
	v.article = articleID
	v.draft = ""
	v.mu.Unlock()

	v.res.Clear()
	return v.Open(ctx)
}

// Comments комментарии в порядке отображения
func (v *CommentThread) Comments() []models.Comment {
	return v.res.Values()
}

// PendingCount количество неподтвержденных комментариев
func (v *CommentThread) PendingCount() int {
	return v.res.PendingCount()
}

// Draft текст в поле ввода
func (v *CommentThread) Draft() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

// SetDraft меняет текст в поле ввода
func (v *CommentThread) SetDraft(ctx context.Context, text string) {
	v.mu.Lock()
	v.draft = text
	articleID := v.article
	v.mu.Unlock()

	v.persistDraft(ctx, articleID, text)
}

// Submit публикует комментарий верхнего уровня
func (v *CommentThread) Submit(ctx context.Context, text string) error {
	return v.post(ctx, "", text)
}

// Reply публикует ответ на комментарий parentID
func (v *CommentThread) Reply(ctx context.Context, parentID, text string) error {
	return v.post(ctx, parentID, text)
}

func (v *CommentThread) post(ctx context.Context, parentID, text string) error {
	op := "post comment"
	if parentID != "" {
		op = "reply to comment"
	}

	if err := validation.ValidateComment(text); err != nil {
		verr := apperr.Wrap(apperr.KindValidationFailed, op, err)
		v.notifier.Error(verr)
		return verr
	}

	articleID := v.ArticleID()
	content := strings.TrimSpace(text)

	// поле ввода очищается сразу, как при обычной отправке формы
	v.SetDraft(ctx, "")

	_, err := v.res.Run(ctx, optimistic.Mutation[models.Comment]{
		Kind:  optimistic.Insert,
		Input: text,
		Record: models.Comment{
			ArticleID: articleID,
			ParentID:  parentID,
			AuthorID:  v.session.UserID(),
			Content:   content,
		},
	}, func(ctx context.Context) (models.Comment, error) {
		if parentID != "" {
			return v.comments.Reply(ctx, articleID, parentID, content)
		}
		return v.comments.Create(ctx, articleID, content)
	})
	if err != nil {
		// исходный ввод возвращается в поле без изменений
		v.SetDraft(ctx, text)
		return err
	}
	return nil
}

// Delete удаляет комментарий. Сервер удаляет его вместе с ветками ответов,
// поэтому после подтверждения ответы убираются и локально: их DELETE
// события приходят от текущего пользователя и не применяются.
func (v *CommentThread) Delete(ctx context.Context, id string) error {
	_, err := v.res.Run(ctx, optimistic.Mutation[models.Comment]{
		Kind: optimistic.Delete,
		Key:  id,
	}, func(ctx context.Context) (models.Comment, error) {
		return models.Comment{}, v.comments.Delete(ctx, id)
	})
	if errors.Is(err, optimistic.ErrUnknownRecord) {
		return apperr.Wrap(apperr.KindValidationFailed, "delete comment", err)
	}
	if err != nil {
		return err
	}

	v.removeReplies(id)
	return nil
}

// removeReplies удаляет все ответы в ветке под комментарием id
func (v *CommentThread) removeReplies(id string) {
	parents := map[string]bool{id: true}
	for {
		removed := v.res.RemoveWhere(func(c models.Comment) bool {
			return parents[c.ParentID]
		})
		if len(removed) == 0 {
			return
		}
		for _, c := range removed {
			parents[c.ID] = true
		}
	}
}

func (v *CommentThread) persistDraft(ctx context.Context, articleID, text string) {
	if v.drafts == nil {
		return
	}
	if err := v.drafts.SaveDraft(ctx, articleID, text); err != nil {
		v.logger.Warn("Failed to save draft", "article_id", articleID, "error", err)
	}
}

func (v *CommentThread) handle(ev api.ChangeEvent) {
	e, err := decodeEvent[models.Comment](ev)
	if err != nil {
		v.logger.Warn("Skipping event", "error", err)
		return
	}
	if e.Record.ArticleID != "" && e.Record.ArticleID != v.ArticleID() {
		return
	}
	if v.res.Apply(e, v.session.UserID()) {
		v.onChange()
	}
}

package views

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/iudanet/unipress/internal/client/apperr"
	"github.com/iudanet/unipress/internal/client/notify"
	"github.com/iudanet/unipress/internal/client/optimistic"
	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

// DefaultPageSize размер страницы ленты по умолчанию
const DefaultPageSize = 20

// ArticleFeed постраничная лента статей одного статуса
type ArticleFeed struct {
	articles repository.Articles
	session  session.TokenSource
	notifier notify.Notifier
	logger   *slog.Logger
	onChange func()
	res      *optimistic.Resource[models.Article]
	live     live
	params   repository.ListArticlesParams
	total    int
	mu       sync.Mutex
}

// NewArticleFeed создает ленту. Пустой статус в params означает опубликованные статьи.
func NewArticleFeed(deps Deps, articles repository.Articles, params repository.ListArticlesParams) *ArticleFeed {
	deps = deps.withDefaults()
	if params.Status == "" {
		params.Status = models.ArticlePublished
	}
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}
	if params.Page <= 0 {
		params.Page = 1
	}
	logger := deps.Logger.With("view", "feed")
	return &ArticleFeed{
		articles: articles,
		session:  deps.Session,
		notifier: deps.Notifier,
		logger:   logger,
		onChange: deps.OnChange,
		live:     live{subs: deps.Subscriptions},
		params:   params,
		res: optimistic.New(optimistic.Options[models.Article]{
			Notifier: deps.Notifier,
			Logger:   logger,
			Label:    "article",
			// сервер отдает ленту от новых к старым
			Order: optimistic.NewestFirst,
		}),
	}
}

// Open загружает текущую страницу и подписывается на изменения статей
func (v *ArticleFeed) Open(ctx context.Context) error {
	v.mu.Lock()
	page := v.params.Page
	v.mu.Unlock()

	if err := v.LoadPage(ctx, page); err != nil {
		return err
	}
	return v.live.open(ctx, realtime.ArticlesScope(), v.handle)
}

// Close отписывается от изменений
func (v *ArticleFeed) Close() {
	v.live.close()
}

// LoadPage загружает страницу page (с 1)
func (v *ArticleFeed) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	v.mu.Lock()
	params := v.params
	v.mu.Unlock()
	params.Page = page

	list, err := v.articles.List(ctx, params)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.params.Page = page
	v.total = list.Total
	v.mu.Unlock()

	v.res.Load(list.Articles)
	return nil
}

// Page номер текущей страницы, число страниц и общее число статей
func (v *ArticleFeed) Page() (page, pages, total int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	pages = (v.total + v.params.PageSize - 1) / v.params.PageSize
	return v.params.Page, pages, v.total
}

// Articles статьи текущей страницы
func (v *ArticleFeed) Articles() []models.Article {
	return v.res.Values()
}

// Status статус статей ленты
func (v *ArticleFeed) Status() models.ArticleStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.params.Status
}

// ChangeStatus меняет статус статьи (редактор: публикация, отклонение, архив).
// После подтверждения статья с другим статусом покидает ленту.
func (v *ArticleFeed) ChangeStatus(ctx context.Context, id string, status models.ArticleStatus) error {
	const op = "change article status"

	if !status.Valid() {
		err := apperr.Validation(op, "unknown status "+string(status))
		v.notifier.Error(err)
		return err
	}

	current, ok := v.res.Get(id)
	if !ok {
		err := apperr.Validation(op, "article is not in the feed")
		v.notifier.Error(err)
		return err
	}

	next := current
	next.Status = status

	confirmed, err := v.res.Run(ctx, optimistic.Mutation[models.Article]{
		Kind:   optimistic.Update,
		Key:    id,
		Record: next,
	}, func(ctx context.Context) (models.Article, error) {
		return v.articles.ChangeStatus(ctx, id, status)
	})
	if err != nil {
		return err
	}

	if confirmed.Status != v.Status() {
		if v.res.Apply(optimistic.Event[models.Article]{
			Type:   api.EventDelete,
			Key:    id,
			Record: confirmed,
		}, "") {
			v.addTotal(-1)
		}
	}
	return nil
}

func (v *ArticleFeed) addTotal(delta int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.total += delta
	if v.total < 0 {
		v.total = 0
	}
}

// trim убирает с конца страницы статьи сверх размера страницы
func (v *ArticleFeed) trim() {
	v.mu.Lock()
	size := v.params.PageSize
	v.mu.Unlock()

	for {
		items := v.res.Values()
		if len(items) <= size {
			return
		}
		last := items[len(items)-1]
		v.res.Apply(optimistic.Event[models.Article]{Type: api.EventDelete, Record: last}, "")
	}
}

// handle применяет изменения статей с учетом фильтра ленты:
// статья, сменившая статус, покидает ленту или появляется в ней.
// Новые статьи попадают только на первую страницу, на остальных
// меняется лишь общее число статей.
func (v *ArticleFeed) handle(ev api.ChangeEvent) {
	e, err := decodeEvent[models.Article](ev)
	if err != nil {
		v.logger.Warn("Skipping event", "error", err)
		return
	}

	userID := v.session.UserID()
	if userID != "" && e.Actor == userID {
		return
	}

	v.mu.Lock()
	status := v.params.Status
	page := v.params.Page
	v.mu.Unlock()

	id := e.Record.ID
	onPage := v.res.Contains(id)

	wasIn := onPage
	if e.Type == api.EventUpdate && len(ev.Old) > 0 {
		var old models.Article
		if err := json.Unmarshal(ev.Old, &old); err == nil {
			wasIn = old.Status == status
		}
	}
	isIn := e.Type != api.EventDelete && e.Record.Status == status
	if e.Type == api.EventDelete {
		wasIn = e.Record.Status == status || onPage
	}

	switch {
	case isIn && !wasIn:
		v.addTotal(1)
	case !isIn && wasIn:
		v.addTotal(-1)
	}

	switch {
	case isIn && !onPage:
		if wasIn {
			// статья с другой страницы
			return
		}
		if page != 1 {
			v.notifier.Info("new article")
			v.onChange()
			return
		}
		e.Type = api.EventInsert
	case !isIn && onPage:
		e.Type = api.EventDelete
	case !isIn:
		if wasIn {
			v.onChange()
		}
		return
	}

	if v.res.Apply(e, userID) {
		v.trim()
		v.onChange()
	}
}

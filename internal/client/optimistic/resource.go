// Package optimistic реализует оптимистичные мутации локального состояния
// и их согласование с ответами сервера и realtime событиями.
//
// Жизненный цикл записи: Begin создает временную запись (pending) →
// Commit заменяет ее подтвержденной сервером или Rollback удаляет/восстанавливает.
// Apply применяет изменения, пришедшие от других сессий.
package optimistic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/iudanet/unipress/internal/client/notify"
	"github.com/iudanet/unipress/internal/client/store"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

// TempPrefix префикс временных идентификаторов оптимистичных записей
const TempPrefix = "tmp-"

// ErrUnknownRecord запись для изменения или удаления отсутствует в локальном состоянии
var ErrUnknownRecord = errors.New("record is not in local state")

// Kind тип оптимистичной мутации
type Kind int

const (
	Insert Kind = iota
	Update
	Delete
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Update:
		return "update"
	case Delete:
		return "delete"
	}
	return "unknown"
}

// Order позиция новых записей в коллекции
type Order int

const (
	// NewestFirst новые записи вставляются в начало (ленты комментариев)
	NewestFirst Order = iota
	// OldestFirst новые записи добавляются в конец (страницы статей, закладки)
	OldestFirst
)

// Mutation изменение, инициированное пользователем.
// Для Insert используется Record, для Update Key и Record, для Delete Key.
// Input исходный ввод пользователя, возвращается при откате.
type Mutation[T models.Record] struct {
	Record T
	Key    string
	Input  string
	Kind   Kind
}

// Pending дескриптор примененной оптимистичной мутации
type Pending[T models.Record] struct {
	prev    T
	Key     string // временный ключ для Insert, ключ записи для Update/Delete
	Input   string
	Kind    Kind
	index   int
	settled bool
}

// Event изменение, пришедшее от сервера вне ответа на команду.
// Key по умолчанию равен Record.RecordID(); для DELETE в Record лежит старая строка.
type Event[T models.Record] struct {
	Record T
	Key    string
	Actor  string
	Type   api.EventType
}

// Options параметры ресурса
type Options[T models.Record] struct {
	Notifier notify.Notifier
	Logger   *slog.Logger
	NewID    func() string // генератор временных идентификаторов
	Label    string        // имя записи в уведомлениях, например "comment"
	Order    Order
}

// Resource локальная коллекция записей с оптимистичными мутациями.
// Безопасен для конкурентного использования, но конкурентные мутации одной
// записи не сериализуются: каждая вычисляется от текущего видимого состояния.
type Resource[T models.Record] struct {
	store    *store.Ordered[T]
	notifier notify.Notifier
	logger   *slog.Logger
	newID    func() string
	label    string
	order    Order
}

// New создает ресурс
func New[T models.Record](opts Options[T]) *Resource[T] {
	r := &Resource[T]{
		store:    store.NewOrdered[T](),
		notifier: opts.Notifier,
		logger:   opts.Logger,
		newID:    opts.NewID,
		label:    opts.Label,
		order:    opts.Order,
	}
	if r.notifier == nil {
		r.notifier = notify.Discard{}
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	if r.newID == nil {
		r.newID = NewTempID
	}
	if r.label == "" {
		r.label = "record"
	}
	r.logger = r.logger.With("resource", r.label)
	return r
}

// NewTempID генерирует временный идентификатор на основе ULID:
// уникален локально и упорядочен по времени создания.
func NewTempID() string {
	return TempPrefix + ulid.Make().String()
}

// Load заполняет коллекцию записями с сервера в серверном порядке.
// Неподтвержденные записи сохраняются на своей стороне коллекции.
func (r *Resource[T]) Load(records []T) {
	var pending []store.Entry[T]
	for _, e := range r.store.Snapshot() {
		if e.Pending && isTempKey(e.Key) {
			pending = append(pending, e)
		}
	}

	entries := make([]store.Entry[T], 0, len(records)+len(pending))
	if r.order == NewestFirst {
		entries = append(entries, pending...)
	}
	for _, rec := range records {
		entries = append(entries, store.Entry[T]{Key: rec.RecordID(), Value: rec})
	}
	if r.order == OldestFirst {
		entries = append(entries, pending...)
	}

	r.store.Reset(entries)
	r.logger.Debug("Loaded records", "count", len(records), "pending", len(pending))
}

// Begin применяет оптимистичную мутацию к локальному состоянию
// и возвращает дескриптор для последующего Commit или Rollback.
func (r *Resource[T]) Begin(m Mutation[T]) (*Pending[T], error) {
	p := &Pending[T]{Kind: m.Kind, Input: m.Input, index: -1}

	switch m.Kind {
	case Insert:
		p.Key = r.newID()
		r.insert(p.Key, m.Record, true)

	case Update:
		existing, ok := r.store.Get(m.Key)
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", m.Kind, m.Key, ErrUnknownRecord)
		}
		p.Key = m.Key
		p.prev = existing.Value
		r.store.Set(m.Key, m.Record, true)

	case Delete:
		existing, index, ok := r.store.Remove(m.Key)
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", m.Kind, m.Key, ErrUnknownRecord)
		}
		p.Key = m.Key
		p.prev = existing.Value
		p.index = index

	default:
		return nil, fmt.Errorf("unsupported mutation kind %d", m.Kind)
	}

	r.logger.Debug("Optimistic mutation applied", "kind", m.Kind.String(), "key", p.Key)
	return p, nil
}

// Commit заменяет оптимистичную запись подтвержденной сервером.
// Временная запись полностью заменяется (без слияния) на той же позиции.
func (r *Resource[T]) Commit(p *Pending[T], confirmed T) {
	if p == nil || p.settled {
		return
	}
	p.settled = true

	switch p.Kind {
	case Insert, Update:
		key := confirmed.RecordID()
		if r.store.Replace(p.Key, key, confirmed) {
			break
		}
		// временная запись исчезла (например, после Load), но подтверждение
		// все равно должно появиться ровно один раз
		if p.Kind == Insert && !r.store.Contains(key) {
			r.insert(key, confirmed, false)
		}
	case Delete:
	}

	r.logger.Debug("Mutation confirmed", "kind", p.Kind.String(), "key", p.Key, "confirmed_key", confirmed.RecordID())
}

// Rollback отменяет оптимистичную мутацию и возвращает исходный ввод пользователя
func (r *Resource[T]) Rollback(p *Pending[T]) string {
	if p == nil || p.settled {
		return ""
	}
	p.settled = true

	switch p.Kind {
	case Insert:
		r.store.Remove(p.Key)
	case Update:
		r.store.Set(p.Key, p.prev, false)
	case Delete:
		if !r.store.Contains(p.Key) {
			r.store.InsertAt(p.index, p.Key, p.prev, false)
		}
	}

	r.logger.Debug("Mutation rolled back", "kind", p.Kind.String(), "key", p.Key)
	return p.Input
}

// Run выполняет полный цикл: Begin → send → Commit или Rollback.
// При любой ошибке показывает уведомление и возвращает ошибку; повторов нет.
func (r *Resource[T]) Run(ctx context.Context, m Mutation[T], send func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	p, err := r.Begin(m)
	if err != nil {
		r.notifier.Error(err)
		return zero, err
	}

	confirmed, err := send(ctx)
	if err != nil {
		r.Rollback(p)
		r.logger.Warn("Mutation failed", "kind", m.Kind.String(), "error", err)
		r.notifier.Error(err)
		return zero, err
	}

	r.Commit(p, confirmed)
	return confirmed, nil
}

// Apply применяет событие от сервера.
// События, инициированные текущим пользователем, игнорируются: они уже
// применены оптимистично или будут заменены прямым ответом сервера.
// Возвращает true, если локальное состояние изменилось.
func (r *Resource[T]) Apply(ev Event[T], currentUserID string) bool {
	if currentUserID != "" && ev.Actor == currentUserID {
		r.logger.Debug("Ignoring self-originated event", "type", ev.Type, "actor", ev.Actor)
		return false
	}

	key := ev.Key
	if key == "" {
		key = ev.Record.RecordID()
	}
	if key == "" {
		r.logger.Warn("Ignoring event without key", "type", ev.Type)
		return false
	}

	switch ev.Type {
	case api.EventInsert:
		if existing, ok := r.store.Get(key); ok {
			// повторная доставка: обновляем без повторного уведомления
			if !models.IsNewer(ev.Record, existing.Value) {
				return false
			}
			return r.store.Set(key, ev.Record, existing.Pending)
		}
		r.insert(key, ev.Record, false)
		r.notifier.Info("new " + r.label)
		return true

	case api.EventUpdate:
		existing, ok := r.store.Get(key)
		if !ok {
			return false
		}
		if !models.IsNewer(ev.Record, existing.Value) {
			r.logger.Debug("Skipping stale update", "key", key,
				"incoming_version", ev.Record.RecordVersion(),
				"existing_version", existing.Value.RecordVersion())
			return false
		}
		return r.store.Set(key, ev.Record, existing.Pending)

	case api.EventDelete:
		_, _, ok := r.store.Remove(key)
		return ok
	}

	r.logger.Warn("Unknown event type", "type", ev.Type)
	return false
}

// Get возвращает запись по ключу
func (r *Resource[T]) Get(key string) (T, bool) {
	e, ok := r.store.Get(key)
	return e.Value, ok
}

// Contains проверяет наличие ключа
func (r *Resource[T]) Contains(key string) bool {
	return r.store.Contains(key)
}

// Values возвращает записи в порядке отображения
func (r *Resource[T]) Values() []T {
	return r.store.Values()
}

// Snapshot возвращает записи вместе с ключами и признаком pending
func (r *Resource[T]) Snapshot() []store.Entry[T] {
	return r.store.Snapshot()
}

// Len количество записей, включая оптимистичные
func (r *Resource[T]) Len() int {
	return r.store.Len()
}

// PendingCount количество неподтвержденных записей
func (r *Resource[T]) PendingCount() int {
	n := 0
	for _, e := range r.store.Snapshot() {
		if e.Pending {
			n++
		}
	}
	return n
}

// RemoveWhere удаляет подтвержденные записи, для которых match возвращает true.
// Возвращает удаленные записи.
func (r *Resource[T]) RemoveWhere(match func(T) bool) []T {
	var removed []T
	for _, e := range r.store.Snapshot() {
		if e.Pending || !match(e.Value) {
			continue
		}
		if _, _, ok := r.store.Remove(e.Key); ok {
			removed = append(removed, e.Value)
		}
	}
	return removed
}

// Clear очищает локальное состояние
func (r *Resource[T]) Clear() {
	r.store.Clear()
}

func (r *Resource[T]) insert(key string, value T, pending bool) {
	if r.order == NewestFirst {
		r.store.Prepend(key, value, pending)
		return
	}
	r.store.Append(key, value, pending)
}

func isTempKey(key string) bool {
	return len(key) > len(TempPrefix) && key[:len(TempPrefix)] == TempPrefix
}

// Package store содержит локальное состояние представлений клиента:
// упорядоченную коллекцию записей с ключом, в которой на каждый ключ
// приходится ровно одна запись.
package store

import (
	"sync"

	"github.com/iudanet/unipress/internal/models"
)

// Entry элемент локального состояния.
// Key совпадает с RecordID подтвержденной записи или содержит временный
// идентификатор оптимистичной записи (Pending = true).
type Entry[T models.Record] struct {
	Value   T
	Key     string
	Pending bool
}

// Ordered упорядоченная коллекция записей с уникальными ключами.
// Порядок вставки значим: ленты комментариев хранятся от новых к старым,
// списки статей в порядке страниц.
type Ordered[T models.Record] struct {
	index   map[string]int // map[key]позиция в entries
	entries []Entry[T]
	mu      sync.RWMutex
}

// NewOrdered создает пустую коллекцию
func NewOrdered[T models.Record]() *Ordered[T] {
	return &Ordered[T]{
		index: make(map[string]int),
	}
}

// Prepend вставляет запись в начало. Существующая запись с тем же ключом
// удаляется, чтобы ключ оставался уникальным.
func (s *Ordered[T]) Prepend(key string, value T, pending bool) {
	s.InsertAt(0, key, value, pending)
}

// Append вставляет запись в конец
func (s *Ordered[T]) Append(key string, value T, pending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(key)
	s.entries = append(s.entries, Entry[T]{Key: key, Value: value, Pending: pending})
	s.index[key] = len(s.entries) - 1
}

// InsertAt вставляет запись в позицию i (с ограничением границами коллекции)
func (s *Ordered[T]) InsertAt(i int, key string, value T, pending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.index[key]; ok {
		s.removeLocked(key)
		if old < i {
			i--
		}
	}

	if i < 0 {
		i = 0
	}
	if i > len(s.entries) {
		i = len(s.entries)
	}

	s.entries = append(s.entries, Entry[T]{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = Entry[T]{Key: key, Value: value, Pending: pending}
	s.reindexLocked(i)
}

// Set заменяет значение записи на месте.
// Возвращает false, если ключа нет.
func (s *Ordered[T]) Set(key string, value T, pending bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[key]
	if !ok {
		return false
	}
	s.entries[i] = Entry[T]{Key: key, Value: value, Pending: pending}
	return true
}

// Replace полностью заменяет запись oldKey записью newKey на той же позиции.
// Если newKey уже есть в другой позиции, та запись удаляется:
// после замены на ключ приходится ровно одна запись.
// Возвращает false, если oldKey не найден.
func (s *Ordered[T]) Replace(oldKey, newKey string, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[oldKey]; !ok {
		return false
	}

	if newKey != oldKey {
		s.removeLocked(newKey)
	}

	i := s.index[oldKey]
	delete(s.index, oldKey)
	s.entries[i] = Entry[T]{Key: newKey, Value: value}
	s.index[newKey] = i
	return true
}

// Remove удаляет запись и возвращает ее вместе с прежней позицией
func (s *Ordered[T]) Remove(key string) (Entry[T], int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[key]
	if !ok {
		return Entry[T]{}, -1, false
	}
	entry := s.entries[i]
	s.removeLocked(key)
	return entry, i, true
}

// Get возвращает запись по ключу
func (s *Ordered[T]) Get(key string) (Entry[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[key]
	if !ok {
		return Entry[T]{}, false
	}
	return s.entries[i], true
}

// Contains проверяет наличие ключа
func (s *Ordered[T]) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[key]
	return ok
}

// Index возвращает позицию ключа или -1
func (s *Ordered[T]) Index(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[key]; ok {
		return i
	}
	return -1
}

// Len возвращает количество записей, включая оптимистичные
func (s *Ordered[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Snapshot возвращает копию всех записей в текущем порядке
func (s *Ordered[T]) Snapshot() []Entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry[T], len(s.entries))
	copy(out, s.entries)
	return out
}

// Values возвращает значения записей в текущем порядке
func (s *Ordered[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Value)
	}
	return out
}

// Reset заменяет содержимое коллекции.
// Повторяющиеся ключи схлопываются, побеждает последнее вхождение.
func (s *Ordered[T]) Reset(entries []Entry[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.entries[:0]
	s.index = make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := s.index[e.Key]; ok {
			s.entries[i] = e
			continue
		}
		s.entries = append(s.entries, e)
		s.index[e.Key] = len(s.entries) - 1
	}
}

// Clear удаляет все записи
func (s *Ordered[T]) Clear() {
	s.Reset(nil)
}

func (s *Ordered[T]) removeLocked(key string) {
	i, ok := s.index[key]
	if !ok {
		return
	}
	delete(s.index, key)
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.reindexLocked(i)
}

// reindexLocked пересчитывает позиции начиная с from
func (s *Ordered[T]) reindexLocked(from int) {
	for i := from; i < len(s.entries); i++ {
		s.index[s.entries[i].Key] = i
	}
}

package store

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/models"
)

func comment(id, content string) models.Comment {
	return models.Comment{ID: id, ArticleID: "a1", Content: content}
}

func keys[T models.Record](s *Ordered[T]) []string {
	var out []string
	for _, e := range s.Snapshot() {
		out = append(out, e.Key)
	}
	return out
}

func TestNewOrdered(t *testing.T) {
	s := NewOrdered[models.Comment]()

	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Values())
}

func TestOrdered_PrependAppend(t *testing.T) {
	s := NewOrdered[models.Comment]()

	s.Append("c1", comment("c1", "first"), false)
	s.Append("c2", comment("c2", "second"), false)
	s.Prepend("c0", comment("c0", "zero"), true)

	assert.Equal(t, []string{"c0", "c1", "c2"}, keys(s))

	e, ok := s.Get("c0")
	require.True(t, ok)
	assert.True(t, e.Pending)
	assert.Equal(t, 0, s.Index("c0"))
	assert.Equal(t, 2, s.Index("c2"))
	assert.Equal(t, -1, s.Index("missing"))
}

func TestOrdered_DuplicateKeyIsMoved(t *testing.T) {
	s := NewOrdered[models.Comment]()

	s.Append("c1", comment("c1", "one"), false)
	s.Append("c2", comment("c2", "two"), false)
	s.Prepend("c2", comment("c2", "two again"), false)

	assert.Equal(t, []string{"c2", "c1"}, keys(s))
	e, _ := s.Get("c2")
	assert.Equal(t, "two again", e.Value.Content)
}

func TestOrdered_InsertAt(t *testing.T) {
	tests := []struct {
		name string
		at   int
		want []string
	}{
		{name: "head", at: 0, want: []string{"x", "a", "b", "c"}},
		{name: "middle", at: 2, want: []string{"a", "b", "x", "c"}},
		{name: "past end is clamped", at: 99, want: []string{"a", "b", "c", "x"}},
		{name: "negative is clamped", at: -5, want: []string{"x", "a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewOrdered[models.Comment]()
			for _, k := range []string{"a", "b", "c"} {
				s.Append(k, comment(k, k), false)
			}

			s.InsertAt(tt.at, "x", comment("x", "x"), false)

			assert.Equal(t, tt.want, keys(s))
			for i, k := range tt.want {
				assert.Equal(t, i, s.Index(k))
			}
		})
	}
}

func TestOrdered_ReplaceKeepsPosition(t *testing.T) {
	s := NewOrdered[models.Comment]()
	s.Append("c1", comment("c1", "old"), false)
	s.Prepend("tmp-1", comment("", "hello"), true)
	s.Append("c2", comment("c2", "older"), false)

	ok := s.Replace("tmp-1", "c9", comment("c9", "hello"))
	require.True(t, ok)

	assert.Equal(t, []string{"c9", "c1", "c2"}, keys(s))
	e, _ := s.Get("c9")
	assert.False(t, e.Pending)
	assert.False(t, s.Contains("tmp-1"))
}

func TestOrdered_ReplaceDropsExistingTarget(t *testing.T) {
	s := NewOrdered[models.Comment]()
	s.Prepend("tmp-1", comment("", "hello"), true)
	s.Append("c1", comment("c1", "other"), false)
	s.Append("c9", comment("c9", "hello"), false)

	ok := s.Replace("tmp-1", "c9", comment("c9", "hello"))
	require.True(t, ok)

	assert.Equal(t, []string{"c9", "c1"}, keys(s))
	assert.Equal(t, 2, s.Len())
}

func TestOrdered_ReplaceMissing(t *testing.T) {
	s := NewOrdered[models.Comment]()

	assert.False(t, s.Replace("nope", "c1", comment("c1", "x")))
	assert.Equal(t, 0, s.Len())
}

func TestOrdered_SetAndRemove(t *testing.T) {
	s := NewOrdered[models.Comment]()
	s.Append("c1", comment("c1", "a"), false)
	s.Append("c2", comment("c2", "b"), false)

	assert.True(t, s.Set("c2", comment("c2", "b2"), true))
	assert.False(t, s.Set("c3", comment("c3", "c"), false))

	e, i, ok := s.Remove("c1")
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, "a", e.Value.Content)
	assert.Equal(t, 0, s.Index("c2"))

	_, _, ok = s.Remove("c1")
	assert.False(t, ok)
}

func TestOrdered_Reset(t *testing.T) {
	s := NewOrdered[models.Comment]()
	s.Append("old", comment("old", "x"), false)

	s.Reset([]Entry[models.Comment]{
		{Key: "c1", Value: comment("c1", "one")},
		{Key: "c2", Value: comment("c2", "two")},
		{Key: "c1", Value: comment("c1", "one again")},
	})

	assert.Equal(t, []string{"c1", "c2"}, keys(s))
	e, _ := s.Get("c1")
	assert.Equal(t, "one again", e.Value.Content)

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestOrdered_ConcurrentAccess(t *testing.T) {
	s := NewOrdered[models.Comment]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := strconv.Itoa(i)
			s.Prepend(k, comment(k, k), false)
			_ = s.Values()
			s.Set(k, comment(k, "updated"), false)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
	for _, e := range s.Snapshot() {
		assert.Equal(t, e.Key, e.Value.ID)
	}
}

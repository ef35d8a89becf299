package draft_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-report/internal/domain"
	"github.com/pkordes/trip-report/internal/draft"
)

func TestStore_LoadEmpty(t *testing.T) {
	s := draft.New()

	rec, ok := s.Load()

	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestStore_SaveThenLoad(t *testing.T) {
	s := draft.New()

	require.NoError(t, s.Save(context.Background(), domain.FormRecord{domain.TotalKM: "120"}))

	rec, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, "120", rec[domain.TotalKM])
}

func TestStore_SecondSaveOverwrites(t *testing.T) {
	s := draft.New()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, domain.FormRecord{domain.TotalKM: "120", domain.Notes: "A"}))
	require.NoError(t, s.Save(ctx, domain.FormRecord{domain.TotalKM: "95"}))

	rec, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, domain.FormRecord{domain.TotalKM: "95"}, rec, "save replaces, never merges")
}

func TestStore_LoadIsNonDestructive(t *testing.T) {
	s := draft.New()
	require.NoError(t, s.Save(context.Background(), domain.FormRecord{domain.Notes: "x"}))

	_, ok1 := s.Load()
	_, ok2 := s.Load()

	assert.True(t, ok1)
	assert.True(t, ok2)
}

func TestStore_IsolatedFromCaller(t *testing.T) {
	s := draft.New()
	in := domain.FormRecord{domain.Notes: "original"}
	require.NoError(t, s.Save(context.Background(), in))

	in[domain.Notes] = "mutated"
	out, _ := s.Load()
	out[domain.Notes] = "mutated too"

	again, _ := s.Load()
	assert.Equal(t, "original", again[domain.Notes])
}

func TestStore_SaveNilRecord(t *testing.T) {
	s := draft.New()

	require.NoError(t, s.Save(context.Background(), nil))

	rec, ok := s.Load()
	assert.True(t, ok)
	assert.Empty(t, rec)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
)

func TestCalculationRepositoryMemory_SaveAndAll(t *testing.T) {
	repo := NewCalculationRepositoryMemory()

	require.NoError(t, repo.Save(domain.CalculationRecord{
		Operation: "present_value",
		Value:     1066.24,
		CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, repo.Save(domain.CalculationRecord{
		Operation: "effective_rate",
		Value:     0.1956,
		CreatedAt: time.Now().UTC(),
	}))

	records := repo.All()
	require.Len(t, records, 2)
	assert.Equal(t, "present_value", records[0].Operation)
	assert.Equal(t, "effective_rate", records[1].Operation)
}

func TestMockCache_GetSet(t *testing.T) {
	cache := NewMockCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))

	got, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

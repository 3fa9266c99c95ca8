package service

import (
	"encoding/json"
	"testing"

	"go-dropship-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummaryEmptyCatalog(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewDashboardService(repo, nil)

	summary, err := svc.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalProducts)
	assert.True(t, summary.TotalPrice.IsZero())
	assert.Equal(t, int64(0), summary.ProductsToday)
	assert.Equal(t, int64(0), summary.CompletedToday)

	// The zero values serialize as numbers, never null.
	raw, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "null")
}

func TestGetSummarySinceLocalMidnight(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewDashboardService(repo, nil)

	_, err := svc.GetSummary()
	require.NoError(t, err)

	since := repo.lastSince
	assert.Equal(t, 0, since.Hour())
	assert.Equal(t, 0, since.Minute())
	assert.Equal(t, 0, since.Second())
}

func TestGetSummaryPassesThroughRollup(t *testing.T) {
	repo := newMockProductRepo()
	repo.summary = repository.DashboardSummary{
		TotalProducts:  4,
		TotalPrice:     decimal.NewFromInt(210),
		ProductsToday:  2,
		CompletedToday: 1,
	}
	svc := NewDashboardService(repo, nil)

	summary, err := svc.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.TotalProducts)
	assert.True(t, summary.TotalPrice.Equal(decimal.NewFromInt(210)))
	assert.Equal(t, int64(2), summary.ProductsToday)
	assert.Equal(t, int64(1), summary.CompletedToday)
}

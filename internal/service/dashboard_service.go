package service

import (
	"context"
	"encoding/json"
	"time"

	"go-dropship-api/internal/repository"
	"go-dropship-api/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const summaryCacheKey = "dashboard:summary"
const summaryCacheTTL = 30 * time.Second

type DashboardService interface {
	GetSummary() (*repository.DashboardSummary, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	cache       *redis.Client
}

// NewDashboardService builds the aggregator. cache may be nil; the summary is
// then computed on every request.
func NewDashboardService(productRepo repository.ProductRepository, cache *redis.Client) DashboardService {
	return &dashboardService{productRepo: productRepo, cache: cache}
}

func (s *dashboardService) GetSummary() (*repository.DashboardSummary, error) {
	ctx := context.Background()

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, summaryCacheKey).Bytes(); err == nil {
			var cached repository.DashboardSummary
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	// Same-day metrics start at server-local midnight.
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary, err := s.productRepo.Summary(midnight)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, summaryCacheKey, raw, summaryCacheTTL).Err(); err != nil {
				logger.L().Warn("summary cache write failed", zap.Error(err))
			}
		}
	}

	return summary, nil
}

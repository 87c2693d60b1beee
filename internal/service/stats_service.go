package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecohub/internal/cache"
	"ecohub/internal/model"
	"ecohub/internal/repository"
)

const (
	statsCacheTTL      = 30 * time.Second
	publicStatsCacheKey = "stats:public"
)

// Stats is the aggregate counters exposed on the public and admin dashboards.
type Stats struct {
	Users         int64   `json:"users"`
	Products      int64   `json:"products"`
	Orders        int64   `json:"orders"`
	TotalCO2Saved float64 `json:"totalCO2Saved"`
}

// StatsService aggregates platform counters. Public stats count approved
// products only; admin stats count products in every moderation state.
type StatsService interface {
	PublicStats(ctx context.Context) (*Stats, error)
	AdminStats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	cache       *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cache:       cache,
	}
}

// PublicStats returns the public dashboard counters, cached briefly since
// the endpoint is unauthenticated and hot.
func (s *statsService) PublicStats(ctx context.Context) (*Stats, error) {
	if data, _ := s.cache.Get(ctx, publicStatsCacheKey); data != nil {
		var cached Stats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.collect(ctx, true)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, publicStatsCacheKey, payload, statsCacheTTL)
	}

	return stats, nil
}

// AdminStats returns the admin counters, uncached and counting all products.
func (s *statsService) AdminStats(ctx context.Context) (*Stats, error) {
	return s.collect(ctx, false)
}

func (s *statsService) collect(ctx context.Context, approvedOnly bool) (*Stats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	var products int64
	if approvedOnly {
		products, err = s.productRepo.CountByStatus(ctx, model.ProductStatusApproved)
	} else {
		products, err = s.productRepo.Count(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	totalCO2, err := s.userRepo.SumCarbonSaved(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum carbon saved: %w", err)
	}

	return &Stats{
		Users:         users,
		Products:      products,
		Orders:        orders,
		TotalCO2Saved: totalCO2,
	}, nil
}

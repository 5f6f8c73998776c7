// Package reference loads the read-only snapshot of banks, terminals
// and commission rates the settlement engine computes against.
package reference

import (
	"context"
	"log"

	"posrecon/internal/repositories"
	"posrecon/internal/repositories/cache"
	"posrecon/internal/settlement"
)

const snapshotCacheKey = "reference:snapshot"

type Service interface {
	// Snapshot returns the current reference dataset, served from
	// cache when possible.
	Snapshot(ctx context.Context) (settlement.Dataset, error)
	// Engine builds a settlement engine over the current snapshot.
	Engine(ctx context.Context) (*settlement.Engine, error)
	// Invalidate drops the cached snapshot; call after any
	// reference-data write.
	Invalidate(ctx context.Context) error
}

type service struct {
	cache *cache.CacheService
}

func NewService(cacheService *cache.CacheService) Service {
	return &service{cache: cacheService}
}

func (s *service) Snapshot(ctx context.Context) (settlement.Dataset, error) {
	var data settlement.Dataset

	if s.cache != nil {
		found, err := s.cache.Get(ctx, snapshotCacheKey, &data)
		if err != nil {
			log.Printf("reference snapshot cache read failed: %v", err)
		} else if found {
			return data, nil
		}
	}

	banks, err := repositories.GetBanks()
	if err != nil {
		return data, err
	}
	terminals, err := repositories.GetTerminals()
	if err != nil {
		return data, err
	}
	rates, err := repositories.GetCommissionRates()
	if err != nil {
		return data, err
	}

	data = settlement.Dataset{Banks: banks, Terminals: terminals, Rates: rates}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshotCacheKey, data); err != nil {
			log.Printf("reference snapshot cache write failed: %v", err)
		}
	}
	return data, nil
}

func (s *service) Engine(ctx context.Context) (*settlement.Engine, error) {
	data, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return settlement.NewEngine(data), nil
}

func (s *service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, snapshotCacheKey)
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	appErrors "github.com/healing-center/counseling-api/pkg/errors"
)

type cacheMetricsSpy struct {
	hits   int
	misses int
}

func (s *cacheMetricsSpy) RecordCacheOperation(hit bool) {
	if hit {
		s.hits++
	} else {
		s.misses++
	}
}

func TestCacheGetWithoutBackendIsMiss(t *testing.T) {
	spy := &cacheMetricsSpy{}
	repo := NewCacheRepository(nil, zap.NewNop(), spy)

	var dest map[string]string
	err := repo.Get(context.Background(), "counselors:list", &dest)

	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	// no backend means no lookup happened, so nothing is recorded
	assert.Zero(t, spy.hits)
	assert.Zero(t, spy.misses)
}

func TestCacheLookupOutcomeReachesMetrics(t *testing.T) {
	spy := &cacheMetricsSpy{}
	repo := &CacheRepository{metrics: spy}

	repo.recordLookup(true)
	repo.recordLookup(true)
	repo.recordLookup(false)

	assert.Equal(t, 2, spy.hits)
	assert.Equal(t, 1, spy.misses)
}

func TestCacheLookupWithoutMetricsIsSafe(t *testing.T) {
	repo := &CacheRepository{}
	repo.recordLookup(true)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/nextstop-api/internal/models"
	"github.com/noah-isme/nextstop-api/internal/repository"
	"github.com/noah-isme/nextstop-api/internal/seed"
	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failSet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if c.failSet {
		return errors.New("redis down")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

type countingCatalogRepo struct {
	*repository.MemoryStore
	mu        sync.Mutex
	listCalls int
	err       error
}

func (r *countingCatalogRepo) ListUniversities(ctx context.Context) ([]models.University, error) {
	r.mu.Lock()
	r.listCalls++
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.MemoryStore.ListUniversities(ctx)
}

func (r *countingCatalogRepo) FindUniversityByID(ctx context.Context, id string) (*models.University, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.MemoryStore.FindUniversityByID(ctx, id)
}

func (r *countingCatalogRepo) ListPrograms(ctx context.Context) ([]models.Program, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.MemoryStore.ListPrograms(ctx)
}

func (r *countingCatalogRepo) FindProgramByID(ctx context.Context, id string) (*models.Program, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.MemoryStore.FindProgramByID(ctx, id)
}

func (r *countingCatalogRepo) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.MemoryStore.ListTestimonials(ctx)
}

func seededCatalog(t *testing.T) *CatalogService {
	t.Helper()
	svc := NewCatalogService(repository.NewMemoryStore(), nil, CatalogConfig{PublicBaseURL: "https://nextstoprussia.com"}, nil)
	_, err := seed.Catalog(context.Background(), svc)
	require.NoError(t, err)
	return svc
}

func TestCatalogServiceListsSeededCatalog(t *testing.T) {
	svc := seededCatalog(t)
	ctx := context.Background()

	universities, err := svc.ListUniversities(ctx)
	require.NoError(t, err)
	require.Len(t, universities, 6)
	assert.Equal(t, "I.M. Sechenov First Moscow State Medical University", universities[0].Name)

	programs, err := svc.ListPrograms(ctx)
	require.NoError(t, err)
	assert.Len(t, programs, 12)

	testimonials, err := svc.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 6)
}

func TestCatalogServiceGetUniversity(t *testing.T) {
	svc := seededCatalog(t)
	ctx := context.Background()

	universities, err := svc.ListUniversities(ctx)
	require.NoError(t, err)

	university, err := svc.GetUniversity(ctx, universities[0].ID)
	require.NoError(t, err)
	assert.Equal(t, universities[0], *university)

	_, err = svc.GetUniversity(ctx, "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "University not found", appErr.Message)
}

func TestCatalogServiceGetProgramNotFound(t *testing.T) {
	svc := seededCatalog(t)

	_, err := svc.GetProgram(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Program not found", appErr.Message)
}

func TestCatalogServiceStoreFailures(t *testing.T) {
	repo := &countingCatalogRepo{MemoryStore: repository.NewMemoryStore(), err: errors.New("connection refused")}
	svc := NewCatalogService(repo, nil, CatalogConfig{}, nil)
	ctx := context.Background()

	cases := []struct {
		name    string
		call    func() error
		message string
	}{
		{"list universities", func() error { _, err := svc.ListUniversities(ctx); return err }, "Failed to fetch universities"},
		{"get university", func() error { _, err := svc.GetUniversity(ctx, "x"); return err }, "Failed to fetch university"},
		{"list programs", func() error { _, err := svc.ListPrograms(ctx); return err }, "Failed to fetch programs"},
		{"get program", func() error { _, err := svc.GetProgram(ctx, "x"); return err }, "Failed to fetch program"},
		{"list testimonials", func() error { _, err := svc.ListTestimonials(ctx); return err }, "Failed to fetch testimonials"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, http.StatusInternalServerError, appErr.Status)
			assert.Equal(t, tc.message, appErr.Message)
		})
	}
}

func TestCatalogServiceVerification(t *testing.T) {
	svc := seededCatalog(t)
	ctx := context.Background()

	universities, err := svc.ListUniversities(ctx)
	require.NoError(t, err)

	verification, err := svc.Verification(ctx, universities[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "https://nextstoprussia.com/verify/"+universities[0].ID, verification.VerifyURL)
	assert.Equal(t, universities[0].HasAuthorizationLetter(), verification.Verified)

	_, err = svc.Verification(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestCatalogServiceCachesListings(t *testing.T) {
	repo := &countingCatalogRepo{MemoryStore: repository.NewMemoryStore()}
	metrics := NewMetricsService()
	cache := NewCacheService(newMemoryCache(), metrics, time.Minute, nil, true)
	svc := NewCatalogService(repo, cache, CatalogConfig{}, nil)
	ctx := context.Background()

	require.NoError(t, svc.CreateUniversity(ctx, &models.University{Name: "First"}))

	first, err := svc.ListUniversities(ctx)
	require.NoError(t, err)
	second, err := svc.ListUniversities(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cacheLookups.WithLabelValues("miss")))

	require.NoError(t, svc.CreateUniversity(ctx, &models.University{Name: "Second"}))
	third, err := svc.ListUniversities(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, repo.listCalls)
}

func TestCatalogServiceCacheFailureFallsThrough(t *testing.T) {
	repo := &countingCatalogRepo{MemoryStore: repository.NewMemoryStore()}
	backend := newMemoryCache()
	backend.failSet = true
	svc := NewCatalogService(repo, NewCacheService(backend, nil, time.Minute, nil, true), CatalogConfig{}, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		universities, err := svc.ListUniversities(ctx)
		require.NoError(t, err)
		assert.NotNil(t, universities)
	}
	assert.Equal(t, 3, repo.listCalls)
}

func TestCatalogServiceEmptyListsAreArrays(t *testing.T) {
	svc := NewCatalogService(repository.NewMemoryStore(), nil, CatalogConfig{}, nil)
	ctx := context.Background()

	universities, err := svc.ListUniversities(ctx)
	require.NoError(t, err)
	raw, err := json.Marshal(universities)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

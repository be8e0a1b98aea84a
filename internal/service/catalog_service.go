package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/nextstop-api/internal/models"
	"github.com/noah-isme/nextstop-api/internal/repository"
	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
)

const (
	cacheKeyUniversities = "catalog:universities"
	cacheKeyPrograms     = "catalog:programs"
	cacheKeyTestimonials = "catalog:testimonials"
	cachePatternCatalog  = "catalog:*"

	msgUniversityNotFound    = "University not found"
	msgProgramNotFound       = "Program not found"
	msgListUniversitiesFail  = "Failed to fetch universities"
	msgGetUniversityFail     = "Failed to fetch university"
	msgListProgramsFail      = "Failed to fetch programs"
	msgGetProgramFail        = "Failed to fetch program"
	msgListTestimonialsFail  = "Failed to fetch testimonials"
	msgCreateCatalogItemFail = "Failed to save catalog entry"
)

type catalogRepository interface {
	ListUniversities(ctx context.Context) ([]models.University, error)
	FindUniversityByID(ctx context.Context, id string) (*models.University, error)
	CreateUniversity(ctx context.Context, university *models.University) error
	ListPrograms(ctx context.Context) ([]models.Program, error)
	FindProgramByID(ctx context.Context, id string) (*models.Program, error)
	CreateProgram(ctx context.Context, program *models.Program) error
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error
}

// CatalogConfig tunes catalog behaviour.
type CatalogConfig struct {
	// PublicBaseURL is the site origin used in verification links.
	PublicBaseURL string
}

// CatalogService serves universities, programs and testimonials.
type CatalogService struct {
	repo   catalogRepository
	cache  *CacheService
	cfg    CatalogConfig
	logger *zap.Logger
}

// NewCatalogService constructs a CatalogService. cache may be nil.
func NewCatalogService(repo catalogRepository, cache *CacheService, cfg CatalogConfig, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, cfg: cfg, logger: logger}
}

// ListUniversities returns every university in insertion order.
func (s *CatalogService) ListUniversities(ctx context.Context) ([]models.University, error) {
	var cached []models.University
	if s.cache.Get(ctx, cacheKeyUniversities, &cached) {
		return cached, nil
	}
	universities, err := s.repo.ListUniversities(ctx)
	if err != nil {
		s.logger.Error("failed to list universities", zap.Error(err))
		return nil, appErrors.Internal(err, msgListUniversitiesFail)
	}
	if universities == nil {
		universities = []models.University{}
	}
	s.cache.Set(ctx, cacheKeyUniversities, universities, 0)
	return universities, nil
}

// GetUniversity returns a single university.
func (s *CatalogService) GetUniversity(ctx context.Context, id string) (*models.University, error) {
	university, err := s.repo.FindUniversityByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, msgUniversityNotFound)
		}
		s.logger.Error("failed to get university", zap.String("id", id), zap.Error(err))
		return nil, appErrors.Internal(err, msgGetUniversityFail)
	}
	return university, nil
}

// Verification describes the QR verification link for a university.
func (s *CatalogService) Verification(ctx context.Context, id string) (*models.UniversityVerification, error) {
	university, err := s.GetUniversity(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.UniversityVerification{
		UniversityID:           university.ID,
		Name:                   university.Name,
		Location:               university.Location,
		Verified:               university.HasAuthorizationLetter(),
		VerifyURL:              s.cfg.PublicBaseURL + "/verify/" + university.ID,
		AuthorizationLetterURL: university.AuthorizationLetterURL,
	}, nil
}

// CreateUniversity stores a university and drops cached listings.
func (s *CatalogService) CreateUniversity(ctx context.Context, university *models.University) error {
	if err := s.repo.CreateUniversity(ctx, university); err != nil {
		return appErrors.Internal(err, msgCreateCatalogItemFail)
	}
	s.cache.Invalidate(ctx, cachePatternCatalog)
	return nil
}

// ListPrograms returns every program in insertion order.
func (s *CatalogService) ListPrograms(ctx context.Context) ([]models.Program, error) {
	var cached []models.Program
	if s.cache.Get(ctx, cacheKeyPrograms, &cached) {
		return cached, nil
	}
	programs, err := s.repo.ListPrograms(ctx)
	if err != nil {
		s.logger.Error("failed to list programs", zap.Error(err))
		return nil, appErrors.Internal(err, msgListProgramsFail)
	}
	if programs == nil {
		programs = []models.Program{}
	}
	s.cache.Set(ctx, cacheKeyPrograms, programs, 0)
	return programs, nil
}

// GetProgram returns a single program.
func (s *CatalogService) GetProgram(ctx context.Context, id string) (*models.Program, error) {
	program, err := s.repo.FindProgramByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, msgProgramNotFound)
		}
		s.logger.Error("failed to get program", zap.String("id", id), zap.Error(err))
		return nil, appErrors.Internal(err, msgGetProgramFail)
	}
	return program, nil
}

// CreateProgram stores a program and drops cached listings.
func (s *CatalogService) CreateProgram(ctx context.Context, program *models.Program) error {
	if err := s.repo.CreateProgram(ctx, program); err != nil {
		return appErrors.Internal(err, msgCreateCatalogItemFail)
	}
	s.cache.Invalidate(ctx, cachePatternCatalog)
	return nil
}

// ListTestimonials returns every testimonial in insertion order.
func (s *CatalogService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var cached []models.Testimonial
	if s.cache.Get(ctx, cacheKeyTestimonials, &cached) {
		return cached, nil
	}
	testimonials, err := s.repo.ListTestimonials(ctx)
	if err != nil {
		s.logger.Error("failed to list testimonials", zap.Error(err))
		return nil, appErrors.Internal(err, msgListTestimonialsFail)
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	s.cache.Set(ctx, cacheKeyTestimonials, testimonials, 0)
	return testimonials, nil
}

// CreateTestimonial stores a testimonial and drops cached listings.
func (s *CatalogService) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	if err := s.repo.CreateTestimonial(ctx, testimonial); err != nil {
		return appErrors.Internal(err, msgCreateCatalogItemFail)
	}
	s.cache.Invalidate(ctx, cachePatternCatalog)
	return nil
}

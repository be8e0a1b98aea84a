package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/nextstop-api/internal/models"
)

const (
	universityColumns  = "id, name, location, description, programs, medium, established, ranking, logo_url, authorization_letter_url"
	programColumns     = "id, category, title, duration, medium, eligibility, tuition_fees, admission_intakes, description"
	testimonialColumns = "id, student_name, country, university, program, quote, year, image_url"
)

// CatalogRepository persists universities, programs and testimonials in PostgreSQL.
// Rows are listed by their serial seq column to preserve insertion order.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new repository instance.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListUniversities returns every university.
func (r *CatalogRepository) ListUniversities(ctx context.Context) ([]models.University, error) {
	universities := []models.University{}
	query := fmt.Sprintf("SELECT %s FROM universities ORDER BY seq", universityColumns)
	if err := r.db.SelectContext(ctx, &universities, query); err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}
	return universities, nil
}

// FindUniversityByID returns a university by id.
func (r *CatalogRepository) FindUniversityByID(ctx context.Context, id string) (*models.University, error) {
	var university models.University
	query := fmt.Sprintf("SELECT %s FROM universities WHERE id = $1", universityColumns)
	if err := r.db.GetContext(ctx, &university, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find university: %w", err)
	}
	return &university, nil
}

// CreateUniversity persists a new university under a generated id.
func (r *CatalogRepository) CreateUniversity(ctx context.Context, university *models.University) error {
	university.ID = newID()
	const query = `INSERT INTO universities (id, name, location, description, programs, medium, established, ranking, logo_url, authorization_letter_url) VALUES (:id, :name, :location, :description, :programs, :medium, :established, :ranking, :logo_url, :authorization_letter_url)`
	if _, err := r.db.NamedExecContext(ctx, query, university); err != nil {
		return fmt.Errorf("create university: %w", err)
	}
	return nil
}

// CountUniversities is used to decide whether the catalog still needs seeding.
func (r *CatalogRepository) CountUniversities(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM universities`); err != nil {
		return 0, fmt.Errorf("count universities: %w", err)
	}
	return count, nil
}

// ListPrograms returns every program.
func (r *CatalogRepository) ListPrograms(ctx context.Context) ([]models.Program, error) {
	programs := []models.Program{}
	query := fmt.Sprintf("SELECT %s FROM programs ORDER BY seq", programColumns)
	if err := r.db.SelectContext(ctx, &programs, query); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// FindProgramByID returns a program by id.
func (r *CatalogRepository) FindProgramByID(ctx context.Context, id string) (*models.Program, error) {
	var program models.Program
	query := fmt.Sprintf("SELECT %s FROM programs WHERE id = $1", programColumns)
	if err := r.db.GetContext(ctx, &program, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find program: %w", err)
	}
	return &program, nil
}

// CreateProgram persists a new program under a generated id.
func (r *CatalogRepository) CreateProgram(ctx context.Context, program *models.Program) error {
	program.ID = newID()
	const query = `INSERT INTO programs (id, category, title, duration, medium, eligibility, tuition_fees, admission_intakes, description) VALUES (:id, :category, :title, :duration, :medium, :eligibility, :tuition_fees, :admission_intakes, :description)`
	if _, err := r.db.NamedExecContext(ctx, query, program); err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	return nil
}

// ListTestimonials returns every testimonial.
func (r *CatalogRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	query := fmt.Sprintf("SELECT %s FROM testimonials ORDER BY seq", testimonialColumns)
	if err := r.db.SelectContext(ctx, &testimonials, query); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, nil
}

// CreateTestimonial persists a new testimonial under a generated id.
func (r *CatalogRepository) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.ID = newID()
	const query = `INSERT INTO testimonials (id, student_name, country, university, program, quote, year, image_url) VALUES (:id, :student_name, :country, :university, :program, :quote, :year, :image_url)`
	if _, err := r.db.NamedExecContext(ctx, query, testimonial); err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

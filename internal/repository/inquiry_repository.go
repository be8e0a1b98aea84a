package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/nextstop-api/internal/models"
)

// InquiryRepository persists contact form leads in PostgreSQL.
type InquiryRepository struct {
	db *sqlx.DB
}

// NewInquiryRepository creates a new repository instance.
func NewInquiryRepository(db *sqlx.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// ListInquiries returns leads in submission order.
func (r *InquiryRepository) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	const query = `SELECT id, name, email, phone, country, program_interest, education_level, message, created_at FROM inquiries ORDER BY seq`
	if err := r.db.SelectContext(ctx, &inquiries, query); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return inquiries, nil
}

// CreateInquiry assigns id and createdAt and inserts the lead in one statement.
func (r *InquiryRepository) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	inquiry.ID = newID()
	inquiry.CreatedAt = now()
	const query = `INSERT INTO inquiries (id, name, email, phone, country, program_interest, education_level, message, created_at) VALUES (:id, :name, :email, :phone, :country, :program_interest, :education_level, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, inquiry); err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

// CountInquiriesSince counts leads created at or after since.
func (r *InquiryRepository) CountInquiriesSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM inquiries WHERE created_at >= $1`, since); err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return count, nil
}

// Package seed holds the fixed sample catalog inserted at process start.
package seed

import (
	"context"
	"fmt"

	"github.com/noah-isme/nextstop-api/internal/models"
)

// CatalogWriter is the subset of the store used for seeding.
type CatalogWriter interface {
	CreateUniversity(ctx context.Context, university *models.University) error
	CreateProgram(ctx context.Context, program *models.Program) error
	CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error
}

// Result reports how many records were inserted.
type Result struct {
	Universities int
	Programs     int
	Testimonials int
}

// Catalog inserts the sample universities, programs and testimonials in order.
func Catalog(ctx context.Context, store CatalogWriter) (Result, error) {
	var res Result
	for _, u := range Universities() {
		u := u
		if err := store.CreateUniversity(ctx, &u); err != nil {
			return res, fmt.Errorf("seed university %q: %w", u.Name, err)
		}
		res.Universities++
	}
	for _, p := range Programs() {
		p := p
		if err := store.CreateProgram(ctx, &p); err != nil {
			return res, fmt.Errorf("seed program %q: %w", p.Title, err)
		}
		res.Programs++
	}
	for _, t := range Testimonials() {
		t := t
		if err := store.CreateTestimonial(ctx, &t); err != nil {
			return res, fmt.Errorf("seed testimonial %q: %w", t.StudentName, err)
		}
		res.Testimonials++
	}
	return res, nil
}

func ptr(s string) *string { return &s }

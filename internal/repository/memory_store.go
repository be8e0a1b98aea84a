package repository

import (
	"context"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/noah-isme/nextstop-api/internal/models"
)

// table is an insertion-ordered map of records keyed by id.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, row T) {
	t.rows[id] = row
	t.order = append(t.order, id)
}

func (t *table[T]) has(id string) bool {
	_, ok := t.rows[id]
	return ok
}

func (t *table[T]) list(clone func(T) T) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, clone(t.rows[id]))
	}
	return out
}

// MemoryStore keeps the catalog and leads in process memory. All access goes
// through one RWMutex, so a create is either fully visible or not at all.
type MemoryStore struct {
	mu           sync.RWMutex
	universities *table[models.University]
	programs     *table[models.Program]
	testimonials *table[models.Testimonial]
	inquiries    *table[models.Inquiry]
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		universities: newTable[models.University](),
		programs:     newTable[models.Program](),
		testimonials: newTable[models.Testimonial](),
		inquiries:    newTable[models.Inquiry](),
	}
}

// ListUniversities returns universities in insertion order.
func (s *MemoryStore) ListUniversities(ctx context.Context) ([]models.University, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.universities.list(cloneUniversity), nil
}

// FindUniversityByID returns ErrNotFound for unknown ids.
func (s *MemoryStore) FindUniversityByID(ctx context.Context, id string) (*models.University, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.universities.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	u = cloneUniversity(u)
	return &u, nil
}

// CreateUniversity assigns a fresh id and stores a copy of university.
func (s *MemoryStore) CreateUniversity(ctx context.Context, university *models.University) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	university.ID = s.freshID(s.universities.has)
	s.universities.insert(university.ID, cloneUniversity(*university))
	return nil
}

// ListPrograms returns programs in insertion order.
func (s *MemoryStore) ListPrograms(ctx context.Context) ([]models.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.programs.list(cloneProgram), nil
}

// FindProgramByID returns ErrNotFound for unknown ids.
func (s *MemoryStore) FindProgramByID(ctx context.Context, id string) (*models.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.programs.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = cloneProgram(p)
	return &p, nil
}

// CreateProgram assigns a fresh id and stores a copy of program.
func (s *MemoryStore) CreateProgram(ctx context.Context, program *models.Program) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	program.ID = s.freshID(s.programs.has)
	s.programs.insert(program.ID, cloneProgram(*program))
	return nil
}

// ListTestimonials returns testimonials in insertion order.
func (s *MemoryStore) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.testimonials.list(cloneTestimonial), nil
}

// CreateTestimonial assigns a fresh id and stores a copy of testimonial.
func (s *MemoryStore) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	testimonial.ID = s.freshID(s.testimonials.has)
	s.testimonials.insert(testimonial.ID, cloneTestimonial(*testimonial))
	return nil
}

// ListInquiries returns inquiries in submission order.
func (s *MemoryStore) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inquiries.list(cloneInquiry), nil
}

// CreateInquiry assigns id and createdAt, then stores a copy of inquiry.
func (s *MemoryStore) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	inquiry.ID = s.freshID(s.inquiries.has)
	inquiry.CreatedAt = now()
	s.inquiries.insert(inquiry.ID, cloneInquiry(*inquiry))
	return nil
}

// CountInquiriesSince counts inquiries created at or after since.
func (s *MemoryStore) CountInquiriesSince(ctx context.Context, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, inquiry := range s.inquiries.rows {
		if !inquiry.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// freshID must be called with the write lock held.
func (s *MemoryStore) freshID(taken func(string) bool) string {
	for {
		id := newID()
		if !taken(id) {
			return id
		}
	}
}

func cloneUniversity(u models.University) models.University {
	if u.Programs != nil {
		u.Programs = append(pq.StringArray(nil), u.Programs...)
	}
	u.Established = cloneString(u.Established)
	u.Ranking = cloneString(u.Ranking)
	u.LogoURL = cloneString(u.LogoURL)
	u.AuthorizationLetterURL = cloneString(u.AuthorizationLetterURL)
	return u
}

func cloneProgram(p models.Program) models.Program {
	p.Description = cloneString(p.Description)
	return p
}

func cloneTestimonial(t models.Testimonial) models.Testimonial {
	t.ImageURL = cloneString(t.ImageURL)
	return t
}

func cloneInquiry(i models.Inquiry) models.Inquiry {
	i.Message = cloneString(i.Message)
	return i
}

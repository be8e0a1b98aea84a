package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by lookups for identifiers the store never issued.
var ErrNotFound = errors.New("record not found")

func newID() string {
	return uuid.NewString()
}

// now returns the insert timestamp with the millisecond precision used on the wire.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

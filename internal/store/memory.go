package store

import (
	"context"

	"github.com/abhisek/flashdeck/internal/session"
)

// MemoryRepo is an in-memory SessionRepo for tests and ephemeral runs.
type MemoryRepo struct {
	history []session.Session
	current *session.Session
}

var _ SessionRepo = (*MemoryRepo)(nil)

// NewMemoryRepo creates an empty in-memory repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Append(ctx context.Context, s *session.Session) error {
	copied := *s
	r.history = append(r.history, copied)
	r.current = &copied
	return nil
}

func (r *MemoryRepo) ReadAll(ctx context.Context) ([]session.Session, error) {
	out := make([]session.Session, len(r.history))
	copy(out, r.history)
	return out, nil
}

func (r *MemoryRepo) ReadCurrent(ctx context.Context) (*session.Session, error) {
	if r.current == nil {
		return nil, nil
	}
	copied := *r.current
	return &copied, nil
}

func (r *MemoryRepo) ClearAll(ctx context.Context) error {
	r.history = nil
	r.current = nil
	return nil
}

package ports

import (
	"context"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
)

// NewAccount carries the raw values for a directory create. Role is matched
// case-insensitively by the directory.
type NewAccount struct {
	Username string
	Password string
	Name     string
	Email    string
	Role     string
}

// AccountDirectory owns the set of accounts and mints their identities.
// Values returned are copies; mutation goes through Update.
type AccountDirectory interface {
	// Create mints an identity not held by any live account and stores the
	// new record. It fails with domain.ErrInvalidRole for an unknown role.
	Create(ctx context.Context, in NewAccount) (*domain.Account, error)
	// Get reports false when no account holds id.
	Get(ctx context.Context, id int) (*domain.Account, bool)
	// Update replaces the mutable fields of the record with account.ID.
	// It fails with domain.ErrNotFound when that record is gone.
	Update(ctx context.Context, account *domain.Account) error
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id int) bool
	// List returns every live account ordered by id.
	List(ctx context.Context) []*domain.Account
}

// IDGenerator mints integer identities. taken reports whether a candidate is
// currently held by a live record.
type IDGenerator interface {
	Next(taken func(id int) bool) (int, error)
}

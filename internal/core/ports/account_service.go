package ports

import (
	"context"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
)

// CreateAccountInput is the DTO passed from the transport layer to AccountService.
type CreateAccountInput struct {
	Username string
	Password string
	Name     string
	Email    string
	Role     string
}

// AccountService defines use-case operations for accounts. Every mutation is
// validated before the directory is touched.
type AccountService interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id int) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) error
	// Field reads one of username, password, name or email.
	Field(ctx context.Context, id int, field string) (string, error)
	// UpdateField validates and writes a single field.
	UpdateField(ctx context.Context, id int, field, value string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id int) error
}

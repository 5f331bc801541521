package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
)

var _ ports.AccountService = (*AccountService)(nil)

// AccountService validates account input and applies it to the directory.
type AccountService struct {
	dir       ports.AccountDirectory
	validator *AccountValidator
	mu        *sync.Mutex
	logger    zerolog.Logger
}

func NewAccountService(dir ports.AccountDirectory, logger zerolog.Logger, opts ...Option) *AccountService {
	o := buildOptions(opts)
	return &AccountService{
		dir:       dir,
		validator: NewAccountValidator(),
		mu:        o.lock,
		logger:    logger,
	}
}

// CreateAccount validates every field, then asks the directory to mint and
// store the account. Role is checked by the directory.
func (s *AccountService) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	if err := s.validator.ValidateAccount(input.Username, input.Password, input.Name, input.Email); err != nil {
		s.logger.Debug().Err(err).Msg("account rejected")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.dir.Create(ctx, ports.NewAccount{
		Username: input.Username,
		Password: input.Password,
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("role", input.Role).Msg("account rejected")
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info().Int("account_id", acc.ID).Str("role", string(acc.Role)).Msg("account created")
	return acc, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id int) (*domain.Account, error) {
	acc, ok := s.dir.Get(ctx, id)
	if !ok {
		return nil, &domain.InvalidIDError{Kind: domain.KindAccount, ID: id}
	}
	return acc, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.dir.List(ctx), nil
}

// UpdateAccount replaces the mutable fields of an existing account after
// validating all of them.
func (s *AccountService) UpdateAccount(ctx context.Context, account *domain.Account) error {
	if err := s.validator.ValidateAccount(account.Username, account.Password, account.Name, account.Email); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dir.Update(ctx, account); err != nil {
		s.logger.Warn().Err(err).Int("account_id", account.ID).Msg("account update failed")
		return err
	}

	s.logger.Info().Int("account_id", account.ID).Msg("account updated")
	return nil
}

func (s *AccountService) Field(ctx context.Context, id int, field string) (string, error) {
	acc, err := s.GetAccount(ctx, id)
	if err != nil {
		return "", err
	}
	return acc.Field(field)
}

// UpdateField validates only the named field before writing it.
func (s *AccountService) UpdateField(ctx context.Context, id int, field, value string) (*domain.Account, error) {
	if err := s.validator.ValidateField(field, value); err != nil {
		s.logger.Debug().Err(err).Int("account_id", id).Msg("field update rejected")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.dir.Get(ctx, id)
	if !ok {
		return nil, &domain.InvalidIDError{Kind: domain.KindAccount, ID: id}
	}
	if err := acc.SetField(field, value); err != nil {
		return nil, err
	}
	if err := s.dir.Update(ctx, acc); err != nil {
		s.logger.Warn().Err(err).Int("account_id", id).Msg("account update failed")
		return nil, err
	}

	s.logger.Info().Int("account_id", id).Str("field", field).Msg("account field updated")
	return acc, nil
}

// DeleteAccount fails with domain.ErrNotFound when no account holds id.
// Appointments referencing the account are left in place.
func (s *AccountService) DeleteAccount(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dir.Delete(ctx, id) {
		return fmt.Errorf("delete account %d: %w", id, domain.ErrNotFound)
	}

	s.logger.Info().Int("account_id", id).Msg("account deleted")
	return nil
}

// Package memory holds the process-lifetime account directory and
// appointment ledger. Nothing is written outside the process.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
)

var _ ports.AccountDirectory = (*AccountDirectory)(nil)

// AccountDirectory is an in-memory ports.AccountDirectory.
type AccountDirectory struct {
	mu       sync.RWMutex
	accounts map[int]domain.Account
	ids      ports.IDGenerator
}

// NewAccountDirectory creates an empty directory minting ids from ids.
func NewAccountDirectory(ids ports.IDGenerator) *AccountDirectory {
	return &AccountDirectory{
		accounts: make(map[int]domain.Account),
		ids:      ids,
	}
}

func (d *AccountDirectory) Create(_ context.Context, in ports.NewAccount) (*domain.Account, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id, err := d.ids.Next(func(id int) bool {
		_, ok := d.accounts[id]
		return ok
	})
	if err != nil {
		return nil, fmt.Errorf("mint account id: %w", err)
	}

	acc := domain.Account{
		ID:       id,
		Username: in.Username,
		Password: in.Password,
		Name:     in.Name,
		Email:    in.Email,
		Role:     role,
	}
	d.accounts[id] = acc
	return &acc, nil
}

func (d *AccountDirectory) Get(_ context.Context, id int) (*domain.Account, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	acc, ok := d.accounts[id]
	if !ok {
		return nil, false
	}
	return &acc, true
}

// Update keeps the stored role; only the mutable fields are replaced.
func (d *AccountDirectory) Update(_ context.Context, account *domain.Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	stored, ok := d.accounts[account.ID]
	if !ok {
		return fmt.Errorf("update account %d: %w", account.ID, domain.ErrNotFound)
	}
	stored.Username = account.Username
	stored.Password = account.Password
	stored.Name = account.Name
	stored.Email = account.Email
	d.accounts[account.ID] = stored
	return nil
}

func (d *AccountDirectory) Delete(_ context.Context, id int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.accounts[id]; !ok {
		return false
	}
	delete(d.accounts, id)
	return true
}

func (d *AccountDirectory) List(_ context.Context) []*domain.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*domain.Account, 0, len(d.accounts))
	for _, acc := range d.accounts {
		clone := acc
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Package account is the registry of bank accounts that statements
// are imported against.
package account

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	nt "kassa/entity"
)

var (
	ErrEmptyName     = errors.New("account name cannot be empty")
	ErrEmptyIban     = errors.New("iban cannot be empty")
	ErrDuplicateName = errors.New("account name already exists")
	ErrDuplicateIban = errors.New("iban already exists")
	ErrNotFound      = errors.New("account not found")
)

// Repo specifies account persistence. Implementations map unique
// violations to ErrDuplicateName or ErrDuplicateIban and a missing
// account to ErrNotFound.
type Repo interface {
	InsertAccount(ctx context.Context, name, iban string) (id int64, err error)
	AccountByName(ctx context.Context, name string) (acct nt.Account, err error)
	ListAccounts(ctx context.Context) (accts []nt.Account, err error)
}

// Service validates accounts in front of a repo.
type Service struct {
	repo   Repo
	logger nt.Logger
}

func NewService(repo Repo, lgr nt.Logger) *Service {

	return &Service{
		repo:   repo,
		logger: lgr,
	}
}

// Register adds an account with a trimmed, non-empty name and IBAN.
func (svc *Service) Register(ctx context.Context, name, iban string) (id int64, err error) {

	name = strings.TrimSpace(name)
	iban = strings.TrimSpace(iban)

	if name == "" {
		err = ErrEmptyName
		return
	}
	if iban == "" {
		err = ErrEmptyIban
		return
	}

	id, err = svc.repo.InsertAccount(ctx, name, iban)
	if err != nil {
		return
	}

	svc.logger.Info(ctx, "account registered", "name", name, "id", id)
	return
}

// ByName looks an account up for statement imports.
func (svc *Service) ByName(ctx context.Context, name string) (acct nt.Account, err error) {
	return svc.repo.AccountByName(ctx, strings.TrimSpace(name))
}

// List returns all registered accounts.
func (svc *Service) List(ctx context.Context) (accts []nt.Account, err error) {
	return svc.repo.ListAccounts(ctx)
}

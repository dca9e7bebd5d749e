package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "kassa/entity"
)

func TestRegisterValidates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "  ", "DE02")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Register(ctx, "giro", "")
	assert.ErrorIs(t, err, ErrEmptyIban)

	id, err := svc.Register(ctx, " giro ", " DE02 ")
	require.NoError(t, err)
	assert.Equal(t, "giro", repo.accts[id].Name)
	assert.Equal(t, "DE02", repo.accts[id].Iban)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "giro", "DE02")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "giro", "DE44")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = svc.Register(ctx, "savings", "DE02")
	assert.ErrorIs(t, err, ErrDuplicateIban)
}

func TestByName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "giro", "DE02")
	require.NoError(t, err)

	acct, err := svc.ByName(ctx, " giro ")
	require.NoError(t, err)
	assert.Equal(t, "DE02", acct.Iban)

	_, err = svc.ByName(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

// help

type fakeRepo struct {
	accts  map[int64]nt.Account
	nextId int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accts: map[int64]nt.Account{}}
}

func (repo *fakeRepo) InsertAccount(ctx context.Context, name, iban string) (int64, error) {
	for _, acct := range repo.accts {
		if acct.Name == name {
			return 0, ErrDuplicateName
		}
		if acct.Iban == iban {
			return 0, ErrDuplicateIban
		}
	}
	repo.nextId++
	repo.accts[repo.nextId] = nt.Account{Id: repo.nextId, Name: name, Iban: iban}
	return repo.nextId, nil
}

func (repo *fakeRepo) AccountByName(ctx context.Context, name string) (nt.Account, error) {
	for _, acct := range repo.accts {
		if acct.Name == name {
			return acct, nil
		}
	}
	return nt.Account{}, ErrNotFound
}

func (repo *fakeRepo) ListAccounts(ctx context.Context) ([]nt.Account, error) {
	var accts []nt.Account
	for _, acct := range repo.accts {
		accts = append(accts, acct)
	}
	return accts, nil
}

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "kassa/entity"
)

func TestAddTrimsAndInserts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	id, warnings, err := svc.Add(context.Background(), nt.Debit, "  Groceries  ")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "Groceries", repo.byId[id].Name)
}

func TestAddRejectsEmptyName(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, _, err := svc.Add(context.Background(), nt.Debit, "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestAddRejectsCaseInsensitiveDuplicate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, _, err := svc.Add(ctx, nt.Debit, "Groceries")
	require.NoError(t, err)

	_, _, err = svc.Add(ctx, nt.Debit, "gRoCeRiEs")
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Len(t, repo.byId, 1)
}

func TestAddWarnsOnSimilarNames(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, _, err := svc.Add(ctx, nt.Debit, "Groceries")
	require.NoError(t, err)

	_, warnings, err := svc.Add(ctx, nt.Debit, "Grocerys")
	require.NoError(t, err)
	assert.Equal(t, []string{"Groceries"}, warnings)

	_, warnings, err = svc.Add(ctx, nt.Debit, "Rent")
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestAddScopedByKind(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, _, err := svc.Add(ctx, nt.Debit, "Transfers")
	require.NoError(t, err)

	// same name on the credit side is a separate category
	_, warnings, err := svc.Add(ctx, nt.Credit, "Transfers")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Len(t, repo.byId, 2)
}

func TestRenameValidates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	id, _, err := svc.Add(ctx, nt.Debit, "Groceries")
	require.NoError(t, err)

	err = svc.Rename(ctx, id, "  ")
	assert.ErrorIs(t, err, ErrEmptyName)

	err = svc.Rename(ctx, id, "Food")
	require.NoError(t, err)
	assert.Equal(t, "Food", repo.byId[id].Name)
}

func TestControllerRejectsWithoutError(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, _, err := svc.Add(ctx, nt.Debit, "Groceries")
	require.NoError(t, err)

	ctl := NewController(ctx, svc, nt.Debit, nopLogger{})

	_, approved, err := ctl.RequestAdd([]string{"Groceries"})
	require.NoError(t, err)
	assert.False(t, approved)

	_, approved, err = ctl.RequestAdd([]string{""})
	require.NoError(t, err)
	assert.False(t, approved)

	key, approved, err := ctl.RequestAdd([]string{"Rent"})
	require.NoError(t, err)
	assert.True(t, approved)
	assert.NotEmpty(t, key)
}

func TestControllerPopulate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, _, err := svc.Add(ctx, nt.Debit, "Groceries")
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, nt.Credit, "Salary")
	require.NoError(t, err)

	ctl := NewController(ctx, svc, nt.Debit, nopLogger{})
	rows, err := ctl.Populate()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Groceries"}, rows[0].Cells)
}

func TestControllerEditAndDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	id, _, err := svc.Add(ctx, nt.Debit, "Groceries")
	require.NoError(t, err)

	ctl := NewController(ctx, svc, nt.Debit, nopLogger{})
	key := "1"
	require.EqualValues(t, 1, id)

	approved, err := ctl.RequestEdit(key, "name", "Food")
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Equal(t, "Food", repo.byId[id].Name)

	approved, err = ctl.RequestEdit(key, "name", " ")
	require.NoError(t, err)
	assert.False(t, approved)

	approved, err = ctl.RequestDelete(key)
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Empty(t, repo.byId)
}

// help

type fakeRepo struct {
	byId   map[int64]nt.Category
	nextId int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byId: map[int64]nt.Category{}}
}

func (repo *fakeRepo) ListCategories(ctx context.Context, kind nt.Kind) ([]nt.Category, error) {
	var cats []nt.Category
	for _, cat := range repo.byId {
		if cat.Kind == kind {
			cats = append(cats, cat)
		}
	}
	return cats, nil
}

func (repo *fakeRepo) InsertCategory(ctx context.Context, kind nt.Kind, name string) (int64, error) {
	repo.nextId++
	repo.byId[repo.nextId] = nt.Category{Id: repo.nextId, Kind: kind, Name: name}
	return repo.nextId, nil
}

func (repo *fakeRepo) RenameCategory(ctx context.Context, id int64, name string) error {
	cat, ok := repo.byId[id]
	if !ok {
		return nil
	}
	cat.Name = name
	repo.byId[id] = cat
	return nil
}

func (repo *fakeRepo) DeleteCategory(ctx context.Context, id int64) error {
	delete(repo.byId, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

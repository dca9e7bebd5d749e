// Package category manages debit and credit spending categories.
package category

import (
	"context"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/pkg/errors"

	nt "kassa/entity"
)

// names above this ratio are reported as likely duplicates
const similarityFloor = 0.8

var (
	ErrEmptyName = errors.New("category name cannot be empty")
	ErrDuplicate = errors.New("category already exists")
)

// Repo specifies category persistence. Implementations map unique
// violations to ErrDuplicate.
type Repo interface {
	ListCategories(ctx context.Context, kind nt.Kind) (cats []nt.Category, err error)
	InsertCategory(ctx context.Context, kind nt.Kind, name string) (id int64, err error)
	RenameCategory(ctx context.Context, id int64, name string) (err error)
	DeleteCategory(ctx context.Context, id int64) (err error)
}

// Service validates and deduplicates categories in front of a repo.
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

// Add inserts a trimmed category name. Empty names and case-insensitive
// duplicates are rejected; existing names whose Ratcliff/Obershelp
// ratio against the new name clears the floor come back as warnings
// alongside a successful insert.
func (svc *Service) Add(ctx context.Context, kind nt.Kind, name string) (id int64, warnings []string, err error) {

	name = strings.TrimSpace(name)
	if name == "" {
		err = ErrEmptyName
		return
	}

	existing, err := svc.repo.ListCategories(ctx, kind)
	if err != nil {
		return
	}

	metric := metrics.NewRatcliffObershelp()
	for _, cat := range existing {
		if strings.EqualFold(cat.Name, name) {
			err = ErrDuplicate
			return
		}
		if strutil.Similarity(strings.ToLower(cat.Name), strings.ToLower(name), metric) > similarityFloor {
			warnings = append(warnings, cat.Name)
		}
	}

	id, err = svc.repo.InsertCategory(ctx, kind, name)
	if err != nil {
		return
	}

	svc.logger.Info(ctx, "category added", "kind", kind, "name", name, "id", id, "similar", len(warnings))
	return
}

// List returns the categories of one kind, ordered by name.
func (svc *Service) List(ctx context.Context, kind nt.Kind) (cats []nt.Category, err error) {
	return svc.repo.ListCategories(ctx, kind)
}

// Rename updates a category's name with the same validation as Add.
func (svc *Service) Rename(ctx context.Context, id int64, name string) (err error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	err = svc.repo.RenameCategory(ctx, id, name)
	if err != nil {
		return
	}

	svc.logger.Info(ctx, "category renamed", "id", id, "name", name)
	return
}

// Delete removes a category.
func (svc *Service) Delete(ctx context.Context, id int64) (err error) {

	err = svc.repo.DeleteCategory(ctx, id)
	if err != nil {
		return
	}

	svc.logger.Info(ctx, "category deleted", "id", id)
	return
}

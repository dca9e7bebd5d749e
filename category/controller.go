package category

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	nt "kassa/entity"
	"kassa/sheet"
)

// single-column sheet layout for category tables
const nameKey = "name"

// Controller adapts the service to a sheet.DataController for one
// category kind. Validation failures become rejections, never errors;
// only repo transport trouble surfaces as an error.
type Controller struct {
	svc    *Service
	kind   nt.Kind
	ctx    context.Context
	logger nt.Logger
}

func NewController(ctx context.Context, svc *Service, kind nt.Kind, lgr nt.Logger) *Controller {

	return &Controller{
		svc:    svc,
		kind:   kind,
		ctx:    ctx,
		logger: lgr,
	}
}

// Columns returns the sheet layout for a category table.
func Columns(width int) []sheet.Column {
	return []sheet.Column{{Key: nameKey, Label: "Category", Width: width}}
}

func (ctl *Controller) Populate() (rows []sheet.Row, err error) {

	cats, err := ctl.svc.List(ctl.ctx, ctl.kind)
	if err != nil {
		return
	}

	rows = make([]sheet.Row, len(cats))
	for i, cat := range cats {
		rows[i] = sheet.Row{
			Key:   strconv.FormatInt(cat.Id, 10),
			Cells: []string{cat.Name},
		}
	}
	return
}

func (ctl *Controller) RequestAdd(values []string) (key string, approved bool, err error) {

	id, warnings, err := ctl.svc.Add(ctl.ctx, ctl.kind, values[0])
	if rejected(err) {
		return "", false, nil
	}
	if err != nil {
		return
	}

	for _, name := range warnings {
		ctl.logger.Info(ctl.ctx, "similar category exists", "kind", ctl.kind, "name", name)
	}
	return strconv.FormatInt(id, 10), true, nil
}

func (ctl *Controller) RequestEdit(rowKey, colKey, value string) (approved bool, err error) {

	if colKey != nameKey {
		return false, nil
	}

	id, err := strconv.ParseInt(rowKey, 10, 64)
	if err != nil {
		return false, nil
	}

	err = ctl.svc.Rename(ctl.ctx, id, value)
	if rejected(err) {
		return false, nil
	}
	if err != nil {
		return
	}
	return true, nil
}

func (ctl *Controller) RequestDelete(rowKey string) (approved bool, err error) {

	id, err := strconv.ParseInt(rowKey, 10, 64)
	if err != nil {
		return false, nil
	}

	err = ctl.svc.Delete(ctl.ctx, id)
	if err != nil {
		return
	}
	return true, nil
}

// rejected separates validation outcomes from transport trouble.
func rejected(err error) bool {
	return errors.Is(err, ErrEmptyName) || errors.Is(err, ErrDuplicate)
}

package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/entity"
	"gestobra/internal/core/id"
	"gestobra/internal/domain/filter"
)

type widget struct {
	entity.Catalog
	Color string
}

type memRepo struct {
	rows    []*widget
	listErr error
	// savedAt is the UpdatedAt each record carried when Update stored it
	savedAt map[id.ID]time.Time
}

func (r *memRepo) Create(_ context.Context, w *widget) error {
	r.rows = append(r.rows, w)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, wid id.ID) (*widget, error) {
	for _, w := range r.rows {
		if w.ID == wid {
			return w, nil
		}
	}
	return nil, apperror.NewNotFound("record", wid)
}

func (r *memRepo) Update(_ context.Context, w *widget) error {
	for i, existing := range r.rows {
		if existing.ID == w.ID {
			r.rows[i] = w
			if r.savedAt == nil {
				r.savedAt = make(map[id.ID]time.Time)
			}
			r.savedAt[w.ID] = w.UpdatedAt
			return nil
		}
	}
	return apperror.NewNotFound("record", w.ID)
}

func (r *memRepo) SetDeletionMark(_ context.Context, wid id.ID, marked bool) error {
	for _, w := range r.rows {
		if w.ID == wid {
			w.DeletionMark = marked
			return nil
		}
	}
	return apperror.NewNotFound("record", wid)
}

func (r *memRepo) List(context.Context) ([]*widget, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*widget, 0, len(r.rows))
	for _, w := range r.rows {
		if !w.DeletionMark {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *memRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, w := range r.rows {
		if w.Code == code {
			return true, nil
		}
	}
	return false, nil
}

type passTx struct{}

func (passTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type seqCodes struct{ n int }

func (s *seqCodes) Next(_ context.Context, prefix string) (string, error) {
	s.n++
	return fmt.Sprintf("%s-2026-%05d", prefix, s.n), nil
}

func newWidgetService(repo *memRepo) *CatalogService[*widget] {
	return NewCatalogService(CatalogServiceConfig[*widget]{
		Repo:      repo,
		TxManager: passTx{},
		Codes:     &seqCodes{},
		Fields: filter.Fields[*widget]{
			Text:   map[string]func(*widget) string{"name": func(w *widget) string { return w.Name }},
			Search: []string{"name"},
			Dates: map[string]func(*widget) *time.Time{
				"createdAt": func(w *widget) *time.Time { return w.CreatedOn() },
			},
			DefaultDate: "createdAt",
			Enums:       map[string]func(*widget) string{"color": func(w *widget) string { return w.Color }},
		},
		EntityName: "widget",
		CodePrefix: "WID",
	})
}

func newWidget(name, color string) *widget {
	return &widget{Catalog: entity.NewCatalog("", name), Color: color}
}

func TestCatalogService_CreateAssignsCode(t *testing.T) {
	repo := &memRepo{}
	svc := newWidgetService(repo)

	w := newWidget("Blue widget", "blue")
	require.NoError(t, svc.Create(context.Background(), w))

	assert.Equal(t, "WID-2026-00001", w.Code)
	assert.Len(t, repo.rows, 1)
}

func TestCatalogService_CreateRejectsDuplicateCode(t *testing.T) {
	repo := &memRepo{}
	svc := newWidgetService(repo)
	first := newWidget("One", "red")
	first.Code = "X-1"
	require.NoError(t, svc.Create(context.Background(), first))

	second := newWidget("Two", "red")
	second.Code = "X-1"
	err := svc.Create(context.Background(), second)

	assert.True(t, apperror.HasCode(err, apperror.CodeConflict))
	assert.Len(t, repo.rows, 1)
}

func TestCatalogService_CreateValidates(t *testing.T) {
	repo := &memRepo{}
	err := newWidgetService(repo).Create(context.Background(), newWidget("", "red"))

	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	assert.Empty(t, repo.rows)
}

func TestCatalogService_HooksCanAbort(t *testing.T) {
	repo := &memRepo{}
	svc := newWidgetService(repo)
	svc.Hooks().On(BeforeCreate, func(_ context.Context, w *widget) error {
		if w.Color == "" {
			return apperror.NewValidation("color is required")
		}
		return nil
	})

	err := svc.Create(context.Background(), newWidget("Plain", ""))

	assert.Error(t, err)
	assert.Empty(t, repo.rows)
}

func TestCatalogService_GetByIDNotFound(t *testing.T) {
	wid := id.New()
	_, err := newWidgetService(&memRepo{}).GetByID(context.Background(), wid)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	assert.Equal(t, "widget", appErr.Details["entity"])
}

func TestCatalogService_UpdateStampsModificationTime(t *testing.T) {
	edited := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		edit      func(w *widget)
		abort     bool
		wantErr   bool
		wantStamp bool
	}{
		{name: "rename", edit: func(w *widget) { w.Name = "Renamed" }, wantStamp: true},
		{name: "enum field", edit: func(w *widget) { w.Color = "green" }, wantStamp: true},
		{name: "invalid edit", edit: func(w *widget) { w.Name = "" }, wantErr: true},
		{name: "hook aborts", edit: func(w *widget) { w.Color = "green" }, abort: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{}
			svc := newWidgetService(repo)
			svc.now = func() time.Time { return edited }
			if tt.abort {
				svc.Hooks().On(BeforeUpdate, func(context.Context, *widget) error {
					return apperror.NewValidation("locked")
				})
			}

			w := newWidget("Original", "red")
			w.UpdatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
			require.NoError(t, svc.Create(context.Background(), w))
			created := w.UpdatedAt

			tt.edit(w)
			err := svc.Update(context.Background(), w)

			saved, stored := repo.savedAt[w.ID]
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, created, w.UpdatedAt)
				assert.False(t, stored)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, edited, w.UpdatedAt)
			require.True(t, stored)
			assert.Equal(t, edited, saved)
		})
	}
}

func TestCatalogService_DeleteIsSoft(t *testing.T) {
	repo := &memRepo{}
	svc := newWidgetService(repo)
	w := newWidget("Gone", "red")
	require.NoError(t, svc.Create(context.Background(), w))

	require.NoError(t, svc.Delete(context.Background(), w.ID))

	assert.True(t, repo.rows[0].DeletionMark)
	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCatalogService_ListFiltersAndPaginates(t *testing.T) {
	repo := &memRepo{}
	svc := newWidgetService(repo)
	for _, w := range []*widget{
		newWidget("Red one", "red"),
		newWidget("Blue one", "blue"),
		newWidget("Red two", "red"),
		newWidget("Red three", "red"),
	} {
		require.NoError(t, svc.Create(context.Background(), w))
	}

	res, err := svc.List(context.Background(), ListFilter{
		Query:  filter.Query{Search: "red", Enums: map[string]string{"color": "red"}},
		Limit:  2,
		Offset: 1,
	})

	require.NoError(t, err)
	assert.EqualValues(t, 3, res.TotalCount)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Red two", res.Items[0].Name)
	assert.Equal(t, "Red three", res.Items[1].Name)
}

func TestCatalogService_ListErrors(t *testing.T) {
	svc := newWidgetService(&memRepo{listErr: errors.New("connection reset")})

	_, err := svc.List(context.Background(), ListFilter{})
	assert.ErrorContains(t, err, "list widget")

	_, err = svc.List(context.Background(), ListFilter{Query: filter.Query{Enums: map[string]string{"size": "xl"}}})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, paginate(items, 0, 0).Items)
	assert.Equal(t, []int{4, 5}, paginate(items, 10, 3).Items)
	assert.Empty(t, paginate(items, 2, 9).Items)
	assert.Equal(t, []int{1, 2}, paginate(items, 2, -4).Items)
}

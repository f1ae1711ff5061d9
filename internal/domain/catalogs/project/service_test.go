package project

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/id"
	"gestobra/internal/domain/filter"
)

type memRepo struct {
	created []*Project
}

func (r *memRepo) Create(_ context.Context, p *Project) error {
	r.created = append(r.created, p)
	return nil
}
func (r *memRepo) GetByID(_ context.Context, pid id.ID) (*Project, error) {
	return nil, apperror.NewNotFound("project", pid)
}
func (r *memRepo) Update(context.Context, *Project) error             { return nil }
func (r *memRepo) SetDeletionMark(context.Context, id.ID, bool) error { return nil }
func (r *memRepo) List(context.Context) ([]*Project, error)           { return r.created, nil }
func (r *memRepo) ExistsByCode(context.Context, string) (bool, error) { return false, nil }

type knownClients map[id.ID]bool

func (k knownClients) Exists(_ context.Context, clientID id.ID) (bool, error) {
	return k[clientID], nil
}

type passTx struct{}

func (passTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedCodes struct{}

func (fixedCodes) Next(_ context.Context, prefix string) (string, error) {
	return prefix + "-2026-00001", nil
}

func TestService_CreateChecksClient(t *testing.T) {
	known := id.New()
	repo := &memRepo{}
	svc := NewService(repo, knownClients{known: true}, passTx{}, fixedCodes{})

	p := NewProject("Edificio Norte")
	p.ClientID = &known
	require.NoError(t, svc.Create(context.Background(), p))
	assert.Equal(t, "PRY-2026-00001", p.Code)

	unknown := id.New()
	orphan := NewProject("Casa Sur")
	orphan.ClientID = &unknown
	err := svc.Create(context.Background(), orphan)

	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	assert.Len(t, repo.created, 1)
}

func TestProject_Validate(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)

	p := NewProject("Puente")
	p.StartDate = &start
	p.EndDate = &end
	assert.Error(t, p.Validate(context.Background()))

	p.EndDate = nil
	p.Budget = decimal.RequireFromString("-1")
	assert.Error(t, p.Validate(context.Background()))

	p.Budget = decimal.RequireFromString("150000")
	p.Status = "demolished"
	assert.Error(t, p.Validate(context.Background()))

	p.Status = StatusPaused
	assert.NoError(t, p.Validate(context.Background()))
}

func TestFields_StartDateRangeExcludesUnscheduled(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	scheduled := NewProject("Scheduled")
	scheduled.StartDate = &start
	unscheduled := NewProject("Unscheduled")

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	criteria, err := Fields().Build(filter.Query{From: &from})
	require.NoError(t, err)

	got := filter.Apply([]*Project{scheduled, unscheduled}, criteria)
	require.Len(t, got, 1)
	assert.Equal(t, "Scheduled", got[0].Name)
}

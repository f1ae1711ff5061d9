package stock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/id"
)

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeRepo struct {
	items     map[id.ID]*fakeItem
	saved     []Balance
	updateErr error
}

func (r *fakeRepo) GetForUpdate(_ context.Context, itemID id.ID) (*fakeItem, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, apperror.NewNotFound("material", itemID)
	}
	copied := *item
	return &copied, nil
}

func (r *fakeRepo) UpdateBalance(_ context.Context, item *fakeItem) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.saved = append(r.saved, item.balance)
	r.items[item.id] = item
	return nil
}

type recorded struct {
	entity    string
	direction Direction
	outcome   string
}

type fakeRecorder struct {
	events []recorded
}

func (r *fakeRecorder) ObserveMovement(entity string, direction Direction, outcome string) {
	r.events = append(r.events, recorded{entity, direction, outcome})
}

func newTestService(items ...*fakeItem) (*Service[*fakeItem], *fakeRepo, *fakeRecorder) {
	repo := &fakeRepo{items: make(map[id.ID]*fakeItem)}
	for _, it := range items {
		repo.items[it.id] = it
	}
	rec := &fakeRecorder{}
	svc := NewService(ServiceConfig[*fakeItem]{
		Repo:       repo,
		TxManager:  &fakeTxManager{},
		Ledger:     NewLedger(fixedClock(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC))),
		Recorder:   rec,
		EntityName: "material",
	})
	return svc, repo, rec
}

func TestService_MoveApplied(t *testing.T) {
	item := newFakeItem("2", "1")
	svc, repo, rec := newTestService(item)

	updated, err := svc.Move(context.Background(), item.id, Movement{Direction: DirectionIn, Amount: d("3"), Reason: "restock"})

	require.NoError(t, err)
	assert.True(t, d("5").Equal(updated.balance.QuantityOnHand))
	require.Len(t, repo.saved, 1)
	assert.True(t, d("5").Equal(repo.saved[0].QuantityOnHand))
	assert.Equal(t, []recorded{{"material", DirectionIn, OutcomeApplied}}, rec.events)
}

func TestService_MoveRejectedWritesNothing(t *testing.T) {
	item := newFakeItem("2", "1")
	svc, repo, rec := newTestService(item)

	_, err := svc.Move(context.Background(), item.id, Movement{Direction: DirectionOut, Amount: d("2.5")})

	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientStock))
	assert.Empty(t, repo.saved)
	assert.True(t, d("2").Equal(repo.items[item.id].balance.QuantityOnHand))
	assert.Equal(t, OutcomeRejected, rec.events[0].outcome)
}

func TestService_MoveUnknownItem(t *testing.T) {
	svc, _, rec := newTestService()

	_, err := svc.Move(context.Background(), id.New(), Movement{Direction: DirectionIn, Amount: d("1")})

	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, OutcomeFailed, rec.events[0].outcome)
}

func TestService_MoveStorageFailure(t *testing.T) {
	item := newFakeItem("2", "1")
	svc, repo, _ := newTestService(item)
	repo.updateErr = errors.New("check constraint violated")

	_, err := svc.Move(context.Background(), item.id, Movement{Direction: DirectionOut, Amount: d("1")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "update material balance")
	assert.True(t, d("2").Equal(repo.items[item.id].balance.QuantityOnHand))
}

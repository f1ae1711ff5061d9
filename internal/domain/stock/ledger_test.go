package stock

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/id"
)

type fakeItem struct {
	id        id.ID
	balance   Balance
	updatedAt time.Time
}

func (f *fakeItem) GetID() id.ID            { return f.id }
func (f *fakeItem) CurrentBalance() Balance { return f.balance }
func (f *fakeItem) ApplyBalance(b Balance, at time.Time) {
	f.balance = b
	f.updatedAt = at
}

func newFakeItem(quantity, minimum string) *fakeItem {
	return &fakeItem{
		id:        id.New(),
		balance:   Balance{QuantityOnHand: d(quantity), MinimumQuantity: d(minimum)},
		updatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func fixedClock(t time.Time) Clock { return func() time.Time { return t } }

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		amount    string
		current   string
		wantCode  string
	}{
		{name: "in accepted", direction: DirectionIn, amount: "5", current: "0"},
		{name: "in has no upper bound", direction: DirectionIn, amount: "1000000", current: "1"},
		{name: "out below stock", direction: DirectionOut, amount: "3", current: "10"},
		{name: "out equal to stock", direction: DirectionOut, amount: "10", current: "10"},
		{name: "out above stock", direction: DirectionOut, amount: "10.5", current: "10", wantCode: apperror.CodeInsufficientStock},
		{name: "zero amount", direction: DirectionIn, amount: "0", current: "10", wantCode: apperror.CodeInvalidAmount},
		{name: "negative amount", direction: DirectionOut, amount: "-1", current: "10", wantCode: apperror.CodeInvalidAmount},
		{name: "invalid amount wins over stock check", direction: DirectionOut, amount: "0", current: "0", wantCode: apperror.CodeInvalidAmount},
		{name: "unknown direction", direction: "sideways", amount: "1", current: "10", wantCode: apperror.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.direction, d(tt.amount), d(tt.current))
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestLedger_ApplyIn(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	item := newFakeItem("4", "5")

	res, err := NewLedger(fixedClock(now)).Apply(item, Movement{Direction: DirectionIn, Amount: d("7.5"), Reason: "delivery"})

	require.NoError(t, err)
	assert.True(t, d("11.5").Equal(item.balance.QuantityOnHand))
	assert.True(t, d("5").Equal(item.balance.MinimumQuantity))
	assert.Equal(t, now, item.updatedAt)
	assert.True(t, d("4").Equal(res.Previous))
	assert.True(t, d("11.5").Equal(res.Current))
	assert.Equal(t, LevelNormal, res.Level)
	assert.Equal(t, "delivery", res.Reason)
	assert.Equal(t, item.id, res.ItemID)
}

func TestLedger_WithdrawAllThenReject(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	ledger := NewLedger(fixedClock(now))
	item := newFakeItem("10", "10")
	assert.Equal(t, LevelCritical, item.balance.Level())

	res, err := ledger.Apply(item, Movement{Direction: DirectionOut, Amount: d("10")})
	require.NoError(t, err)
	assert.True(t, item.balance.QuantityOnHand.IsZero())
	assert.Equal(t, LevelCritical, res.Level)

	stamped := item.updatedAt
	later := NewLedger(fixedClock(now.Add(time.Hour)))
	_, err = later.Apply(item, Movement{Direction: DirectionOut, Amount: d("1")})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	assert.Equal(t, item.id.String(), appErr.Details["item_id"])
	assert.True(t, item.balance.QuantityOnHand.IsZero())
	assert.Equal(t, stamped, item.updatedAt)
}

func TestLedger_RejectionLeavesItemUntouched(t *testing.T) {
	movements := []Movement{
		{Direction: DirectionIn, Amount: decimal.Zero},
		{Direction: DirectionIn, Amount: d("-2")},
		{Direction: DirectionOut, Amount: d("3.0001")},
		{Direction: "transfer", Amount: d("1")},
	}

	for _, m := range movements {
		item := newFakeItem("3", "1")
		before := *item

		_, err := NewLedger(nil).Apply(item, m)

		assert.Error(t, err)
		assert.True(t, before.balance.QuantityOnHand.Equal(item.balance.QuantityOnHand))
		assert.Equal(t, before.updatedAt, item.updatedAt)
	}
}

func TestLedger_Conservation(t *testing.T) {
	ledger := NewLedger(nil)
	item := newFakeItem("0", "2")
	amounts := []struct {
		dir    Direction
		amount string
	}{
		{DirectionIn, "5"}, {DirectionOut, "1.25"}, {DirectionIn, "0.5"}, {DirectionOut, "4.25"},
	}

	expected := decimal.Zero
	for _, a := range amounts {
		_, err := ledger.Apply(item, Movement{Direction: a.dir, Amount: d(a.amount)})
		require.NoError(t, err)
		if a.dir == DirectionIn {
			expected = expected.Add(d(a.amount))
		} else {
			expected = expected.Sub(d(a.amount))
		}
		assert.True(t, expected.Equal(item.balance.QuantityOnHand))
		assert.False(t, item.balance.QuantityOnHand.IsNegative())
	}
}

func TestBalance_Validate(t *testing.T) {
	assert.NoError(t, Balance{QuantityOnHand: d("0"), MinimumQuantity: d("0")}.Validate())
	assert.Error(t, Balance{QuantityOnHand: d("-1"), MinimumQuantity: d("0")}.Validate())
	assert.Error(t, Balance{QuantityOnHand: d("1"), MinimumQuantity: d("-0.5")}.Validate())
}

func TestSummarize(t *testing.T) {
	items := []*fakeItem{
		newFakeItem("0", "0"),
		newFakeItem("3", "2"),
		newFakeItem("9", "2"),
		newFakeItem("1", "2"),
	}

	s := Summarize(items)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.ByLevel[LevelCritical])
	assert.Equal(t, 1, s.ByLevel[LevelLow])
	assert.Equal(t, 1, s.ByLevel[LevelNormal])

	empty := Summarize[*fakeItem](nil)
	assert.Equal(t, 0, empty.ByLevel[LevelLow])
	assert.Len(t, empty.ByLevel, 3)
}

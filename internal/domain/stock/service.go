package stock

import (
	"context"
	"fmt"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/id"
	"gestobra/internal/core/tx"
	"gestobra/pkg/logger"
)

// Repository is the storage contract the movement service needs.
// GetForUpdate must lock the row until the surrounding transaction ends.
type Repository[T Item] interface {
	GetForUpdate(ctx context.Context, id id.ID) (T, error)
	UpdateBalance(ctx context.Context, item T) error
}

// Recorder observes movement outcomes (metrics).
type Recorder interface {
	ObserveMovement(entity string, direction Direction, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveMovement(string, Direction, string) {}

// Movement outcomes reported to the Recorder.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Service applies movements to stored items inside a transaction.
type Service[T Item] struct {
	repo       Repository[T]
	txManager  tx.Manager
	ledger     *Ledger
	recorder   Recorder
	entityName string
}

// ServiceConfig holds dependencies for Service.
type ServiceConfig[T Item] struct {
	Repo       Repository[T]
	TxManager  tx.Manager
	Ledger     *Ledger
	Recorder   Recorder
	EntityName string
}

// NewService creates a movement service.
func NewService[T Item](cfg ServiceConfig[T]) *Service[T] {
	ledger := cfg.Ledger
	if ledger == nil {
		ledger = NewLedger(nil)
	}
	var recorder Recorder = nopRecorder{}
	if cfg.Recorder != nil {
		recorder = cfg.Recorder
	}
	return &Service[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		ledger:     ledger,
		recorder:   recorder,
		entityName: cfg.EntityName,
	}
}

// Move locks the item, applies the movement and stores the new balance.
// On rejection nothing is written and the typed error is returned.
func (s *Service[T]) Move(ctx context.Context, itemID id.ID, m Movement) (T, error) {
	var (
		updated T
		result  Result
	)

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		item, err := s.repo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}

		result, err = s.ledger.Apply(item, m)
		if err != nil {
			return err
		}

		if err := s.repo.UpdateBalance(ctx, item); err != nil {
			return fmt.Errorf("update %s balance: %w", s.entityName, err)
		}
		updated = item
		return nil
	})
	if err != nil {
		var zero T
		outcome := OutcomeFailed
		if isRejection(err) {
			outcome = OutcomeRejected
			logger.Warn(ctx, "stock movement rejected",
				"entity", s.entityName,
				"item_id", itemID,
				"direction", m.Direction,
				"amount", m.Amount.String(),
				"error", err,
			)
		}
		s.recorder.ObserveMovement(s.entityName, m.Direction, outcome)
		return zero, err
	}

	s.recorder.ObserveMovement(s.entityName, m.Direction, OutcomeApplied)
	logger.Info(ctx, "stock movement applied",
		"entity", s.entityName,
		"item_id", result.ItemID,
		"direction", result.Direction,
		"amount", result.Amount.String(),
		"reason", result.Reason,
		"previous", result.Previous.String(),
		"current", result.Current.String(),
		"level", result.Level,
	)

	return updated, nil
}

func isRejection(err error) bool {
	appErr, ok := apperror.AsAppError(err)
	if !ok {
		return false
	}
	switch appErr.Code {
	case apperror.CodeInvalidAmount, apperror.CodeInsufficientStock, apperror.CodeValidation:
		return true
	}
	return false
}

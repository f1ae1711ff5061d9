// Package audit attributes catalog changes to the authenticated administrator.
package audit

import (
	"context"

	appctx "gestobra/internal/core/context"
	"gestobra/internal/domain"
	"gestobra/pkg/logger"
)

// Action names written to the audit log.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Entry is one attributed change.
type Entry struct {
	Entity    string
	Action    string
	RecordID  string
	Code      string
	UserID    string
	SessionID string
	RequestID string
}

// Sink receives audit entries. The default sink writes them to the context logger.
type Sink func(ctx context.Context, e Entry)

// LogSink writes e as a structured "audit" log line.
func LogSink(ctx context.Context, e Entry) {
	logger.Info(ctx, "audit",
		"entity", e.Entity,
		"action", e.Action,
		"record_id", e.RecordID,
		"code", e.Code,
		"user_id", e.UserID,
		"session_id", e.SessionID,
		"request_id", e.RequestID,
	)
}

// Attach registers after-hooks that emit an Entry for every create, update
// and delete. A nil sink means LogSink.
func Attach[T domain.CatalogEntity](hooks *domain.HookRegistry[T], entity string, sink Sink) {
	if sink == nil {
		sink = LogSink
	}

	emit := func(action string) domain.Hook[T] {
		return func(ctx context.Context, record T) error {
			sink(ctx, newEntry(ctx, entity, action, record))
			return nil
		}
	}

	hooks.On(domain.AfterCreate, emit(ActionCreated))
	hooks.On(domain.AfterUpdate, emit(ActionUpdated))
	hooks.On(domain.AfterDelete, emit(ActionDeleted))
}

func newEntry[T domain.CatalogEntity](ctx context.Context, entity, action string, record T) Entry {
	e := Entry{
		Entity:    entity,
		Action:    action,
		RecordID:  record.GetID().String(),
		Code:      record.GetCode(),
		RequestID: appctx.GetRequestID(ctx),
	}
	if user := appctx.GetUser(ctx); user != nil {
		e.UserID = user.UserID
		e.SessionID = user.SessionID
	}
	return e
}

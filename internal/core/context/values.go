// Package context carries request-scoped values: the caller and the trace ids.
package context

import (
	"context"

	"github.com/google/uuid"
)

type key int

const (
	userKey key = iota
	traceKey
)

// UserContext identifies the authenticated administrator.
type UserContext struct {
	UserID    string
	Email     string
	Role      string
	SessionID string
}

// TraceContext identifies one API request. RequestID is echoed to the client;
// TraceID may be supplied by an upstream proxy.
type TraceContext struct {
	TraceID   string
	RequestID string
}

// NewTraceContext keeps the ids a client sent and generates the missing ones.
func NewTraceContext(requestID, traceID string) *TraceContext {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}
	return &TraceContext{TraceID: traceID, RequestID: requestID}
}

func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceKey, trace)
}

// GetUser returns nil outside an authenticated request.
func GetUser(ctx context.Context) *UserContext {
	user, _ := ctx.Value(userKey).(*UserContext)
	return user
}

func GetTrace(ctx context.Context) *TraceContext {
	trace, _ := ctx.Value(traceKey).(*TraceContext)
	return trace
}

func GetUserID(ctx context.Context) string {
	if user := GetUser(ctx); user != nil {
		return user.UserID
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if trace := GetTrace(ctx); trace != nil {
		return trace.RequestID
	}
	return ""
}

// LogFields returns the request and caller ids in ctx as logger key-value pairs.
func LogFields(ctx context.Context) []any {
	var kv []any
	if trace := GetTrace(ctx); trace != nil {
		kv = append(kv, "trace_id", trace.TraceID, "request_id", trace.RequestID)
	}
	if user := GetUser(ctx); user != nil {
		kv = append(kv, "user_id", user.UserID)
	}
	return kv
}

// Package router decides, per session and per logical operation, whether to
// execute against the real backend or the deterministic simulated backend,
// and applies the fallback policy when the real path fails.
package router

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"go.uber.org/zap"

	"franchisehub-backend/internal/auth"
	"franchisehub-backend/internal/domain/uow"
	"franchisehub-backend/pkg/apperr"
)

type Path string

const (
	PathSimulated Path = "simulated"
	PathReal      Path = "real"
)

// Operation describes a logical call for routing purposes. FallbackSafe must
// stay false for writes whose re-execution on the simulated path could fake a
// side effect the real backend rejected (the registration rule).
type Operation struct {
	Name         string
	Mutating     bool
	FallbackSafe bool
}

type Decision struct {
	Path          Path
	AllowFallback bool
}

// Policy is the single source of truth for path selection. Rule order:
// anonymous -> simulated; demo account -> simulated; real backend disabled ->
// simulated; otherwise real.
type Policy struct {
	DemoAccounts       map[string]bool
	RealBackendEnabled bool
	FallbackEnabled    bool
}

func NewPolicy(demoAccounts []string, realEnabled, fallbackEnabled bool) Policy {
	demo := make(map[string]bool, len(demoAccounts))
	for _, a := range demoAccounts {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			demo[a] = true
		}
	}
	return Policy{DemoAccounts: demo, RealBackendEnabled: realEnabled, FallbackEnabled: fallbackEnabled}
}

func (p Policy) Decide(sess auth.Session, op Operation) Decision {
	if sess.Anonymous() {
		return Decision{Path: PathSimulated}
	}
	if p.DemoAccounts[strings.ToLower(sess.Email)] {
		return Decision{Path: PathSimulated}
	}
	if !p.RealBackendEnabled {
		return Decision{Path: PathSimulated}
	}
	return Decision{Path: PathReal, AllowFallback: p.FallbackEnabled && op.FallbackSafe}
}

// Sources holds one unit-of-work per path.
type Sources struct {
	Real      uow.UnitOfWork
	Simulated uow.UnitOfWork
}

type Router struct {
	policy  Policy
	sources Sources
	log     *zap.Logger
}

func New(policy Policy, sources Sources, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{policy: policy, sources: sources, log: log}
}

func (r *Router) Policy() Policy { return r.policy }

// Execute runs fn against the unit of work the policy selects. When the real
// path fails with a recoverable error and fallback applies, fn is re-executed
// once against the simulated path (never speculatively in parallel) and the
// swallowed primary failure is logged. Validation errors surface unchanged.
func Execute[T any](ctx context.Context, r *Router, sess auth.Session, op Operation, fn func(ctx context.Context, tx uow.UnitOfWork) (T, error)) (T, error) {
	out, _, err := ExecutePath(ctx, r, sess, op, fn)
	return out, err
}

// ExecutePath is Execute plus the path that ultimately served fn. Callers that
// publish events after the call use it to stamp the publish context, so
// side-effect writers (the notification dispatcher) hit the same backend the
// operation committed to.
func ExecutePath[T any](ctx context.Context, r *Router, sess auth.Session, op Operation, fn func(ctx context.Context, tx uow.UnitOfWork) (T, error)) (T, Path, error) {
	d := r.policy.Decide(sess, op)
	if d.Path == PathSimulated {
		out, err := fn(WithPath(ctx, PathSimulated), r.sources.Simulated)
		return out, PathSimulated, err
	}

	out, err := fn(WithPath(ctx, PathReal), r.sources.Real)
	if err == nil || !d.AllowFallback || !Recoverable(err) {
		return out, PathReal, err
	}
	r.log.Warn("real backend failed, falling back to simulated path",
		zap.String("operation", op.Name),
		zap.String("user_id", sess.UserID),
		zap.Error(err))
	out, err = fn(WithPath(ctx, PathSimulated), r.sources.Simulated)
	return out, PathSimulated, err
}

// Recoverable reports whether err is an infrastructure failure eligible for
// fallback. Business-rule violations are never recoverable.
func Recoverable(err error) bool {
	if err == nil {
		return false
	}
	if apperr.IsExternal(err) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

type pathKey struct{}

// WithPath records the executed path so downstream consumers (the
// notification dispatcher) write to the same backend the operation ran on.
func WithPath(ctx context.Context, p Path) context.Context {
	return context.WithValue(ctx, pathKey{}, p)
}

func PathFromContext(ctx context.Context) Path {
	if p, ok := ctx.Value(pathKey{}).(Path); ok {
		return p
	}
	return PathSimulated
}

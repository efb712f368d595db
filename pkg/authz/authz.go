// Package authz is the role gate: a pure decision function composing a role
// membership check with an optional ownership predicate. Converting a denial
// into an HTTP status is the caller's concern.
package authz

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

// Identity is a validated caller, as placed on the request context by the
// auth middleware.
type Identity struct {
	UserID string
	Role   string
}

// Predicate evaluates ownership against a freshly loaded resource, never
// against a client-supplied claim.
type Predicate func() bool

// FromContext extracts the validated identity from ctx, or nil when the
// request is anonymous.
func FromContext(ctx context.Context) *Identity {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil
	}
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	return &Identity{UserID: userID, Role: role}
}

// Authorize denies anonymous callers first, then checks role membership,
// then the ownership predicate. It has no side effects.
func Authorize(id *Identity, requiredRole string, owns Predicate) error {
	if id == nil {
		return apperror.Unauthorized("User not authenticated")
	}
	if requiredRole != "" && id.Role != requiredRole {
		return apperror.Forbidden("You do not have permission to perform this action")
	}
	if owns != nil && !owns() {
		return apperror.Forbidden("You do not have permission to perform this action")
	}
	return nil
}

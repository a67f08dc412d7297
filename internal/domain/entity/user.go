// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// UserRole is the role assigned by the identity provider.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleOperator UserRole = "operator"
	UserRoleViewer   UserRole = "viewer"
)

// CurrentUser is the authenticated caller, as asserted by the identity provider.
type CurrentUser struct {
	ID    uuid.UUID
	Email string
	Role  UserRole
}

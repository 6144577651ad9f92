package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleStaff  Role = "STAFF"
	RoleViewer Role = "VIEWER"
)

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID uuid.UUID
	Name   string
	Role   Role
}

// CanWrite reports whether the principal may create or modify records.
func (p Principal) CanWrite() bool {
	return p.Role == RoleAdmin || p.Role == RoleStaff
}

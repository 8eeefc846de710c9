// Package auth provides password hashing and the token-backed session model:
// a signed session token carries the principal's identity while a
// server-side registry makes logout an actual revocation.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// AdminDisplayName is the fixed display name for administrator sessions.
const AdminDisplayName = "Admin"

// Echo context keys set by the session middleware.
const (
	ContextKeySession   = "session"
	ContextKeySessionID = "session_id"
)

// Session describes the authenticated principal behind a request. The
// absence of a Session is the anonymous state; there is no in-between.
type Session struct {
	PrincipalID uuid.UUID `json:"principal_id"`
	DisplayName string    `json:"display_name"`
	IsAdmin     bool      `json:"is_admin"`
}

// MemberSession builds the session established by a member login.
func MemberSession(memberID uuid.UUID, fullName string) *Session {
	return &Session{PrincipalID: memberID, DisplayName: fullName, IsAdmin: false}
}

// AdminSession builds the session established by an admin login.
func AdminSession(adminID uuid.UUID) *Session {
	return &Session{PrincipalID: adminID, DisplayName: AdminDisplayName, IsAdmin: true}
}

// SessionClaims are the JWT claims carried by a session token. The
// registered ID (JTI) keys the server-side session registry.
type SessionClaims struct {
	PrincipalID string `json:"principal_id"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Session converts the claims back into a Session.
func (c *SessionClaims) Session() (*Session, error) {
	principalID, err := uuid.Parse(c.PrincipalID)
	if err != nil {
		return nil, fmt.Errorf("parse principal id: %w", err)
	}
	return &Session{
		PrincipalID: principalID,
		DisplayName: c.DisplayName,
		IsAdmin:     c.IsAdmin,
	}, nil
}

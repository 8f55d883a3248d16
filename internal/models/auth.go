package models

import "github.com/golang-jwt/jwt/v5"

// UserRole is the closed set of portal actors.
type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleGuide   UserRole = "GUIDE"
	RolePanel   UserRole = "PANEL"
	RoleAdmin   UserRole = "ADMIN"
)

// JWTClaims are the claims carried by tokens issued by the portal's
// identity service. This API only validates them.
type JWTClaims struct {
	RollNo string   `json:"rollNo,omitempty"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

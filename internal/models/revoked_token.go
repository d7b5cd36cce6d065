package models

import "time"

// RevokedToken is a tombstone for a token invalidated before its
// natural expiry. Once present the jti stays revoked.
type RevokedToken struct {
	JTI       string    `json:"jti"`
	CreatedAt time.Time `json:"created_at"`
}

package repository

import (
	"context"
	"time"

	"github.com/skillforge/journey-service/internal/models"
)

// RevokeToken inserts a tombstone for the jti. Revoking twice is a
// no-op, not an error.
func (r *Repository) RevokeToken(ctx context.Context, jti string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO revoked_tokens (jti)
		VALUES ($1)
		ON CONFLICT (jti) DO NOTHING`, jti)
	return translate(err)
}

// IsTokenRevoked is a point lookup by jti
func (r *Repository) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`, jti).
		Scan(&revoked)
	if err != nil {
		return false, translate(err)
	}
	return revoked, nil
}

// ListRevokedTokens returns the current ledger contents, newest first
func (r *Repository) ListRevokedTokens(ctx context.Context) ([]models.RevokedToken, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT jti, created_at
		FROM revoked_tokens
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	tokens := []models.RevokedToken{}
	for rows.Next() {
		var token models.RevokedToken
		if err := rows.Scan(&token.JTI, &token.CreatedAt); err != nil {
			return nil, translate(err)
		}
		tokens = append(tokens, token)
	}
	return tokens, translate(rows.Err())
}

// DeleteRevokedTokensBefore garbage-collects tombstones whose tokens
// expired on their own: anything revoked before cutoff (now minus the
// token TTL) is rejected on expiry alone and no longer needs a ledger
// row.
func (r *Repository) DeleteRevokedTokensBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM revoked_tokens WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

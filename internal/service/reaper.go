package service

import (
	"context"
	"time"
)

// ReapRevokedTokens garbage-collects revocation tombstones for tokens
// that have passed their natural expiry. Purely an optimization: an
// expired token is rejected on expiry alone, with or without its
// ledger row.
func (s *Service) ReapRevokedTokens(ctx context.Context, ttl time.Duration) error {
	n, err := s.store.DeleteRevokedTokensBefore(ctx, time.Now().Add(-ttl))
	if err != nil {
		return mapStoreErr(err)
	}
	if n > 0 {
		s.log.Infof("Reaped %d expired revoked tokens", n)
	}
	return nil
}

// internal/quota/store.go
package quota

import (
	"context"
	"errors"
)

var ErrQuotaCheckFailed = errors.New("QUOTA_CHECK_FAILED")

// Store tracks the one free generation each client gets. Clients that
// bring their own API key bypass the store entirely.
type Store interface {
	// Used reports whether the client has already spent its free
	// generation.
	Used(ctx context.Context, clientID string) (bool, error)

	// MarkUsed records that the client has spent its free generation.
	MarkUsed(ctx context.Context, clientID string) error
}

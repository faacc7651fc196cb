package cache

import (
	"context"
	"errors"

	"wallet-ledger/internal/model"
)

var ErrCacheMiss = errors.New("cache miss")

// WalletCache is the read-side cache of wallets. It is never the source of
// truth: mutations invalidate it after commit.
type WalletCache interface {
	Get(ctx context.Context, userID string) (*model.Wallet, error)

	// Set stores a wallet unless a newer version was already invalidated or cached
	Set(ctx context.Context, wallet *model.Wallet) error

	// Invalidate drops the cached wallet and refuses later Sets older than version
	Invalidate(ctx context.Context, userID string, version int64) error
}

// Nop is used when caching is disabled; every read misses.
type Nop struct{}

var _ WalletCache = Nop{}

func (Nop) Get(context.Context, string) (*model.Wallet, error) { return nil, ErrCacheMiss }
func (Nop) Set(context.Context, *model.Wallet) error { return nil }
func (Nop) Invalidate(context.Context, string, int64) error { return nil }

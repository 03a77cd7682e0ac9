package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dream/internal/logger"
	"dream/internal/models"
	"dream/internal/storage"
)

// Storage keys of the three blobs.
const (
	TransactionsKey = "dream_transactions_v1"
	BudgetsKey      = "dream_budgets_v1"
	AssetsKey       = "dream_assets_v1"
)

// Repository loads and saves State through a KV store.
type Repository struct {
	store storage.KV
}

// NewRepository creates a repository on store.
func NewRepository(store storage.KV) *Repository {
	return &Repository{store: store}
}

// Load reads all three collections. A missing, unreadable or corrupt blob is
// logged and replaced by its default: seed transactions, no budgets, seed
// assets.
func (r *Repository) Load(ctx context.Context, now time.Time) State {
	return State{
		Transactions: loadOrDefault(ctx, r.store, TransactionsKey, func() []models.Transaction { return SeedTransactions(now) }),
		Budgets:      loadOrDefault(ctx, r.store, BudgetsKey, func() []models.Budget { return []models.Budget{} }),
		Assets:       loadOrDefault(ctx, r.store, AssetsKey, SeedAssets),
	}
}

// Save writes the given collections of state.
func (r *Repository) Save(ctx context.Context, state State, collections ...Collection) error {
	for _, c := range collections {
		var err error
		switch c {
		case Transactions:
			err = save(ctx, r.store, TransactionsKey, state.Transactions)
		case Budgets:
			err = save(ctx, r.store, BudgetsKey, state.Budgets)
		case Assets:
			err = save(ctx, r.store, AssetsKey, state.Assets)
		default:
			err = fmt.Errorf("unknown collection %d", c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func loadOrDefault[T any](ctx context.Context, store storage.KV, key string, fallback func() []T) []T {
	log := logger.Get()

	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Errorw("failed to read ledger blob, using defaults", "key", key, "error", err)
		return fallback()
	}
	if !ok {
		return fallback()
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Errorw("failed to decode ledger blob, using defaults", "key", key, "error", err)
		return fallback()
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func save[T any](ctx context.Context, store storage.KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

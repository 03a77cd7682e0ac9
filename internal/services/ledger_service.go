package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sync"
	"time"

	"dream/internal/aggregate"
	"dream/internal/category"
	apperrors "dream/internal/errors"
	"dream/internal/events"
	"dream/internal/ledger"
	"dream/internal/logger"
	"dream/internal/models"
	"dream/internal/pagination"
)

// Clock reports the current time in the ledger's location.
type Clock func() time.Time

// ledgerService owns the in-memory ledger state. Every command swaps in a
// new State, persists the collection it touched and publishes an event.
// Persistence and publish failures are logged and never fail the command.
type ledgerService struct {
	mu        sync.RWMutex
	state     ledger.State
	repo      *ledger.Repository
	publisher events.Publisher
	trees     category.Trees
	now       Clock
}

// NewLedgerService loads the stored state and creates a new LedgerServicer.
func NewLedgerService(ctx context.Context, repo *ledger.Repository, publisher events.Publisher, trees category.Trees, now Clock) LedgerServicer {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &ledgerService{
		state:     repo.Load(ctx, now()),
		repo:      repo,
		publisher: publisher,
		trees:     trees,
		now:       now,
	}
}

func (s *ledgerService) Snapshot() ledger.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ListTransactions returns stored transactions, newest first, narrowed by
// the filter and paged.
func (s *ledgerService) ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if filter.FromDate != nil && filter.ToDate != nil && filter.ToDate.Before(*filter.FromDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "to_date must not be before from_date")
	}

	state := s.Snapshot()
	matched := make([]models.Transaction, 0, len(state.Transactions))
	for _, t := range state.Transactions {
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}
		if filter.FromDate != nil && t.Date.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && t.Date.After(*filter.ToDate) {
			continue
		}
		matched = append(matched, t)
	}
	aggregate.SortNewestFirst(matched)

	resp := pagination.Slice(matched, page)
	return &resp, nil
}

func (s *ledgerService) GetTransaction(id string) (*models.Transaction, error) {
	t, ok := s.Snapshot().FindTransaction(id)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &t, nil
}

// SaveTransaction inserts a new transaction or replaces the one with the
// same id.
func (s *ledgerService) SaveTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	return s.storeTransaction(ctx, t, false)
}

// ReplaceTransaction overwrites an existing transaction.
func (s *ledgerService) ReplaceTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	return s.storeTransaction(ctx, t, true)
}

// storeTransaction checks the classification against the category trees
// unless it is the one already stored under t.ID.
func (s *ledgerService) storeTransaction(ctx context.Context, t models.Transaction, mustExist bool) (*models.Transaction, error) {
	if err := s.validateTransaction(t); err != nil {
		return nil, err
	}

	s.mu.Lock()
	prev, exists := s.state.FindTransaction(t.ID)
	if mustExist && !exists {
		s.mu.Unlock()
		return nil, apperrors.ErrTransactionNotFound
	}
	if !(exists && sameClassification(prev, t)) && !s.trees.Classifies(t.Type, t.Category, t.SubCategory) {
		s.mu.Unlock()
		return nil, apperrors.WithMessage(apperrors.ErrUnknownCategory,
			fmt.Sprintf("%s is not in the %s category tree", t.CategoryLabel(), t.Type))
	}
	s.state = s.state.SaveTransaction(t)
	state := s.state
	s.mu.Unlock()

	s.persist(ctx, state, ledger.Transactions)
	s.publish(ctx, events.New(events.TransactionSaved, t.ID, t))
	return &t, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	next, ok := s.state.DeleteTransaction(id)
	if !ok {
		s.mu.Unlock()
		return apperrors.ErrTransactionNotFound
	}
	s.state = next
	s.mu.Unlock()

	s.persist(ctx, next, ledger.Transactions)
	s.publish(ctx, events.New(events.TransactionDeleted, id, nil))
	return nil
}

func (s *ledgerService) GetBudgets() []models.Budget {
	return s.Snapshot().Budgets
}

// UpsertBudget sets the monthly limit for a top-level expense category.
func (s *ledgerService) UpsertBudget(ctx context.Context, b models.Budget) (*models.Budget, error) {
	if !s.trees.Expense.Contains(b.Category) {
		return nil, apperrors.ErrUnknownCategory
	}
	if b.Limit.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Budget limit must not be negative")
	}

	s.mu.Lock()
	s.state = s.state.UpsertBudget(b)
	state := s.state
	s.mu.Unlock()

	s.persist(ctx, state, ledger.Budgets)
	s.publish(ctx, events.New(events.BudgetSaved, b.Category, b))
	return &b, nil
}

func (s *ledgerService) GetAssets() []models.Asset {
	return s.Snapshot().Assets
}

func (s *ledgerService) UpdateAsset(ctx context.Context, id string, update AssetUpdate) (*models.Asset, error) {
	s.mu.Lock()
	asset, ok := s.state.FindAsset(id)
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.ErrAssetNotFound
	}
	asset.Balance = update.Balance
	if update.Name != nil && *update.Name != "" {
		asset.Name = *update.Name
	}
	if update.AccountNumber != nil {
		if *update.AccountNumber == "" {
			asset.AccountNumber = nil
		} else {
			asset.AccountNumber = models.Ptr(*update.AccountNumber)
		}
	}
	s.state, _ = s.state.UpdateAsset(asset)
	state := s.state
	s.mu.Unlock()

	s.persist(ctx, state, ledger.Assets)
	s.publish(ctx, events.New(events.AssetUpdated, asset.ID, asset))
	return &asset, nil
}

var csvHeader = []string{"id", "date", "type", "category", "sub_category", "amount", "note"}

// ExportCSV writes every transaction, newest first.
func (s *ledgerService) ExportCSV(w io.Writer) error {
	txns := append([]models.Transaction(nil), s.Snapshot().Transactions...)
	aggregate.SortNewestFirst(txns)

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, t := range txns {
		sub := ""
		if t.SubCategory != nil {
			sub = *t.SubCategory
		}
		record := []string{
			t.ID,
			t.Date.Format(time.RFC3339),
			string(t.Type),
			t.Category,
			sub,
			t.Amount.StringFixed(2),
			t.Note,
		}
		if err := cw.Write(record); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *ledgerService) validateTransaction(t models.Transaction) error {
	if t.ID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Transaction id is required")
	}
	if !t.Type.IsValid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid transaction type")
	}
	if t.Category == "" {
		return apperrors.ErrCategoryRequired
	}
	if t.Amount.IsNegative() {
		return apperrors.ErrInvalidAmount
	}
	return nil
}

func sameClassification(a, b models.Transaction) bool {
	if a.Type != b.Type || a.Category != b.Category {
		return false
	}
	if a.SubCategory == nil || b.SubCategory == nil {
		return a.SubCategory == nil && b.SubCategory == nil
	}
	return *a.SubCategory == *b.SubCategory
}

func (s *ledgerService) persist(ctx context.Context, state ledger.State, collections ...ledger.Collection) {
	if err := s.repo.Save(ctx, state, collections...); err != nil {
		logger.Get().Errorw("failed to persist ledger", "error", err)
	}
}

func (s *ledgerService) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.Get().Warnw("failed to publish event", "type", e.Type, "resource_id", e.ResourceID, "error", err)
	}
}

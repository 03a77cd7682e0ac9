package services

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"dream/internal/aggregate"
	"dream/internal/category"
	"dream/internal/entry"
	"dream/internal/ledger"
	"dream/internal/models"
	"dream/internal/pagination"
)

// CategoryServicer exposes the category trees.
type CategoryServicer interface {
	Trees() category.Trees
	Tree(txType models.TransactionType) category.Tree
	Names(txType models.TransactionType) []string
	ResolveIcon(txType models.TransactionType, categoryName string, subCategory *string) string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *string
}

// AssetUpdate overwrites an asset's balance and optionally its name and
// account number.
type AssetUpdate struct {
	Balance       decimal.Decimal
	Name          *string
	AccountNumber *string
}

// LedgerServicer owns the ledger state and every mutation of it.
type LedgerServicer interface {
	Snapshot() ledger.State
	ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransaction(id string) (*models.Transaction, error)
	SaveTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error)
	ReplaceTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetBudgets() []models.Budget
	UpsertBudget(ctx context.Context, b models.Budget) (*models.Budget, error)
	GetAssets() []models.Asset
	UpdateAsset(ctx context.Context, id string, update AssetUpdate) (*models.Asset, error)
	ExportCSV(w io.Writer) error
}

// AnalyticsServicer derives the dashboard and analytics views.
type AnalyticsServicer interface {
	Summary() aggregate.Summary
	Days() []aggregate.DayGroup
	BudgetProgress(year int, month time.Month, includeZero bool) []aggregate.BudgetLine
	DailySeries(days int) []aggregate.DayPoint
	CategoryBreakdown() []aggregate.CategoryAmount
	AssetTotal() decimal.Decimal
}

// EntryFields carries form field changes. Nil fields are left alone.
type EntryFields struct {
	Amount *string
	Date   *string
	Note   *string
}

// EntryServicer drives entry sessions: the category grid, the form fields
// and submission into the ledger.
type EntryServicer interface {
	Open(txType models.TransactionType) entry.View
	OpenForEdit(transactionID string) (*entry.View, error)
	Get(id string) (*entry.View, error)
	SwitchType(id string, txType models.TransactionType) (*entry.View, error)
	Select(id, nodeID string) (*entry.View, error)
	Ascend(id string) (*entry.View, error)
	UpdateFields(id string, fields EntryFields) (*entry.View, error)
	ApplyReceipt(ctx context.Context, id string, image []byte, mimeType string) (*entry.View, error)
	Submit(ctx context.Context, id string) (*models.Transaction, error)
	Discard(id string) error
}

// AdvisorServicer answers free-text questions about the ledger.
type AdvisorServicer interface {
	Ask(ctx context.Context, query string) string
}

// AuthServicer checks the owner's passcode.
type AuthServicer interface {
	Enabled() bool
	VerifyPasscode(passcode string) error
}

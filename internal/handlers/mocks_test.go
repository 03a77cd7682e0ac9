package handlers

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
	"dream/internal/services"
)

// --- mock ledger service ---

type mockLedgerService struct {
	listTransactionsFn   func(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	getTransactionFn     func(id string) (*models.Transaction, error)
	saveTransactionFn    func(ctx context.Context, t models.Transaction) (*models.Transaction, error)
	replaceTransactionFn func(ctx context.Context, t models.Transaction) (*models.Transaction, error)
	deleteTransactionFn  func(ctx context.Context, id string) error
	upsertBudgetFn       func(ctx context.Context, b models.Budget) (*models.Budget, error)
	updateAssetFn        func(ctx context.Context, id string, update services.AssetUpdate) (*models.Asset, error)
	exportCSVFn          func(w io.Writer) error
	state                ledger.State
}

func (m *mockLedgerService) Snapshot() ledger.State { return m.state }

func (m *mockLedgerService) ListTransactions(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(filter, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockLedgerService) GetTransaction(id string) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(id)
	}
	return &models.Transaction{ID: id}, nil
}

func (m *mockLedgerService) SaveTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	if m.saveTransactionFn != nil {
		return m.saveTransactionFn(ctx, t)
	}
	return &t, nil
}

func (m *mockLedgerService) ReplaceTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	if m.replaceTransactionFn != nil {
		return m.replaceTransactionFn(ctx, t)
	}
	return &t, nil
}

func (m *mockLedgerService) DeleteTransaction(ctx context.Context, id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(ctx, id)
	}
	return nil
}

func (m *mockLedgerService) GetBudgets() []models.Budget { return m.state.Budgets }

func (m *mockLedgerService) UpsertBudget(ctx context.Context, b models.Budget) (*models.Budget, error) {
	if m.upsertBudgetFn != nil {
		return m.upsertBudgetFn(ctx, b)
	}
	return &b, nil
}

func (m *mockLedgerService) GetAssets() []models.Asset { return m.state.Assets }

func (m *mockLedgerService) UpdateAsset(ctx context.Context, id string, update services.AssetUpdate) (*models.Asset, error) {
	if m.updateAssetFn != nil {
		return m.updateAssetFn(ctx, id, update)
	}
	return &models.Asset{ID: id, Balance: update.Balance}, nil
}

func (m *mockLedgerService) ExportCSV(w io.Writer) error {
	if m.exportCSVFn != nil {
		return m.exportCSVFn(w)
	}
	return nil
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

// --- mock analytics service ---

type mockAnalyticsService struct {
	budgetProgressFn func(year int, month time.Month, includeZero bool) []aggregate.BudgetLine
	dailySeriesFn    func(days int) []aggregate.DayPoint
}

func (m *mockAnalyticsService) Summary() aggregate.Summary { return aggregate.Summary{} }

func (m *mockAnalyticsService) Days() []aggregate.DayGroup { return []aggregate.DayGroup{} }

func (m *mockAnalyticsService) BudgetProgress(year int, month time.Month, includeZero bool) []aggregate.BudgetLine {
	if m.budgetProgressFn != nil {
		return m.budgetProgressFn(year, month, includeZero)
	}
	return []aggregate.BudgetLine{}
}

func (m *mockAnalyticsService) DailySeries(days int) []aggregate.DayPoint {
	if m.dailySeriesFn != nil {
		return m.dailySeriesFn(days)
	}
	return make([]aggregate.DayPoint, days)
}

func (m *mockAnalyticsService) CategoryBreakdown() []aggregate.CategoryAmount {
	return []aggregate.CategoryAmount{}
}

func (m *mockAnalyticsService) AssetTotal() decimal.Decimal { return decimal.RequireFromString("100.50") }

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

// --- mock entry service ---

type mockEntryService struct {
	openFn         func(txType models.TransactionType) entry.View
	openForEditFn  func(transactionID string) (*entry.View, error)
	selectFn       func(id, nodeID string) (*entry.View, error)
	updateFieldsFn func(id string, fields services.EntryFields) (*entry.View, error)
	applyReceiptFn func(ctx context.Context, id string, image []byte, mimeType string) (*entry.View, error)
	submitFn       func(ctx context.Context, id string) (*models.Transaction, error)
	discardFn      func(id string) error
}

func (m *mockEntryService) Open(txType models.TransactionType) entry.View {
	if m.openFn != nil {
		return m.openFn(txType)
	}
	return entry.View{ID: "session-1", Type: txType}
}

func (m *mockEntryService) OpenForEdit(transactionID string) (*entry.View, error) {
	if m.openForEditFn != nil {
		return m.openForEditFn(transactionID)
	}
	return &entry.View{ID: "session-1", Editing: true, TransactionID: &transactionID}, nil
}

func (m *mockEntryService) Get(id string) (*entry.View, error) {
	return &entry.View{ID: id}, nil
}

func (m *mockEntryService) SwitchType(id string, txType models.TransactionType) (*entry.View, error) {
	return &entry.View{ID: id, Type: txType}, nil
}

func (m *mockEntryService) Select(id, nodeID string) (*entry.View, error) {
	if m.selectFn != nil {
		return m.selectFn(id, nodeID)
	}
	return &entry.View{ID: id}, nil
}

func (m *mockEntryService) Ascend(id string) (*entry.View, error) {
	return &entry.View{ID: id}, nil
}

func (m *mockEntryService) UpdateFields(id string, fields services.EntryFields) (*entry.View, error) {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(id, fields)
	}
	return &entry.View{ID: id}, nil
}

func (m *mockEntryService) ApplyReceipt(ctx context.Context, id string, image []byte, mimeType string) (*entry.View, error) {
	if m.applyReceiptFn != nil {
		return m.applyReceiptFn(ctx, id, image, mimeType)
	}
	return &entry.View{ID: id}, nil
}

func (m *mockEntryService) Submit(ctx context.Context, id string) (*models.Transaction, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, id)
	}
	return &models.Transaction{ID: "tx-1"}, nil
}

func (m *mockEntryService) Discard(id string) error {
	if m.discardFn != nil {
		return m.discardFn(id)
	}
	return nil
}

var _ services.EntryServicer = (*mockEntryService)(nil)

// --- mock advisor, auth and category services ---

type mockAdvisorService struct {
	askFn func(ctx context.Context, query string) string
}

func (m *mockAdvisorService) Ask(ctx context.Context, query string) string {
	if m.askFn != nil {
		return m.askFn(ctx, query)
	}
	return ""
}

var _ services.AdvisorServicer = (*mockAdvisorService)(nil)

type mockAuthService struct {
	enabled          bool
	verifyPasscodeFn func(passcode string) error
}

func (m *mockAuthService) Enabled() bool { return m.enabled }

func (m *mockAuthService) VerifyPasscode(passcode string) error {
	if m.verifyPasscodeFn != nil {
		return m.verifyPasscodeFn(passcode)
	}
	return nil
}

var _ services.AuthServicer = (*mockAuthService)(nil)

func newCategoryService() services.CategoryServicer {
	return services.NewCategoryService(category.DefaultTrees())
}

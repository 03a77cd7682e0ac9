// Package ledger holds the application state (transactions, budgets, assets)
// and persists it as three JSON blobs. State values are never mutated in
// place: every command returns a new State.
package ledger

import "dream/internal/models"

// Collection names one of the independently persisted blobs.
type Collection int

const (
	Transactions Collection = iota
	Budgets
	Assets
)

// State is the whole ledger.
type State struct {
	Transactions []models.Transaction
	Budgets      []models.Budget
	Assets       []models.Asset
}

// SaveTransaction replaces the transaction with the same id, or prepends it
// when the id is new.
func (s State) SaveTransaction(t models.Transaction) State {
	for i, existing := range s.Transactions {
		if existing.ID == t.ID {
			txns := make([]models.Transaction, len(s.Transactions))
			copy(txns, s.Transactions)
			txns[i] = t
			s.Transactions = txns
			return s
		}
	}
	txns := make([]models.Transaction, 0, len(s.Transactions)+1)
	txns = append(txns, t)
	s.Transactions = append(txns, s.Transactions...)
	return s
}

// DeleteTransaction removes the transaction with the given id.
func (s State) DeleteTransaction(id string) (State, bool) {
	for i, existing := range s.Transactions {
		if existing.ID == id {
			txns := make([]models.Transaction, 0, len(s.Transactions)-1)
			txns = append(txns, s.Transactions[:i]...)
			s.Transactions = append(txns, s.Transactions[i+1:]...)
			return s, true
		}
	}
	return s, false
}

// FindTransaction looks a transaction up by id.
func (s State) FindTransaction(id string) (models.Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return models.Transaction{}, false
}

// UpsertBudget replaces the budget for the same category, or appends it.
func (s State) UpsertBudget(b models.Budget) State {
	budgets := make([]models.Budget, len(s.Budgets), len(s.Budgets)+1)
	copy(budgets, s.Budgets)
	for i, existing := range budgets {
		if existing.Category == b.Category {
			budgets[i] = b
			s.Budgets = budgets
			return s
		}
	}
	s.Budgets = append(budgets, b)
	return s
}

// UpdateAsset replaces the asset with the same id. Unknown ids are reported
// and leave the state unchanged.
func (s State) UpdateAsset(a models.Asset) (State, bool) {
	for i, existing := range s.Assets {
		if existing.ID == a.ID {
			assets := make([]models.Asset, len(s.Assets))
			copy(assets, s.Assets)
			assets[i] = a
			s.Assets = assets
			return s, true
		}
	}
	return s, false
}

// FindAsset looks an asset up by id.
func (s State) FindAsset(id string) (models.Asset, bool) {
	for _, a := range s.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return models.Asset{}, false
}

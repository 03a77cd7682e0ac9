package services

import (
	"context"
	"strings"

	"dream/internal/advisor"
)

// advisorService feeds the ledger history to the advisor model.
type advisorService struct {
	ledger  LedgerServicer
	advisor advisor.Advisor
}

// NewAdvisorService creates a new AdvisorServicer.
func NewAdvisorService(ledger LedgerServicer, a advisor.Advisor) AdvisorServicer {
	if a == nil {
		a = advisor.Disabled{}
	}
	return &advisorService{ledger: ledger, advisor: a}
}

// Ask never fails. A blank query gets the empty-analysis answer without a
// model call.
func (s *advisorService) Ask(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return advisor.EmptyAnswer
	}
	return s.advisor.Advise(ctx, query, s.ledger.Snapshot().Transactions)
}

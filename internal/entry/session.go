// Package entry implements the transaction entry and edit session: the
// category navigator view, the pending classification that will be
// submitted, and the amount, date and note fields.
//
// The pending (category, subCategory) pair is separate from the navigator.
// It is only overwritten by an explicit Select, a receipt with a known
// category, or a type switch, so browsing back up the tree never loses an
// existing classification.
package entry

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dream/internal/aggregate"
	"dream/internal/category"
	apperrors "dream/internal/errors"
	"dream/internal/models"
	"dream/internal/uuid"
)

// DateLayout is the wire format of the date field.
const DateLayout = "2006-01-02"

// Session is one open entry form. It is not safe for concurrent use.
type Session struct {
	id       string
	trees    category.Trees
	nav      *category.Navigator
	loc      *time.Location
	openedAt time.Time
	original *models.Transaction

	pendingCategory *string
	pendingSub      *string

	amount string
	date   time.Time
	note   string
}

// New opens a blank session for txType dated today.
func New(id string, trees category.Trees, txType models.TransactionType, now time.Time) *Session {
	return &Session{
		id:       id,
		trees:    trees,
		nav:      category.NewNavigator(trees, txType),
		loc:      now.Location(),
		openedAt: now,
		date:     aggregate.StartOfDay(now, now.Location()),
	}
}

// Edit opens a session pre-filled from an existing transaction. The stored
// classification stays pending even when the navigator opens at the top
// level.
func Edit(id string, trees category.Trees, t models.Transaction, now time.Time) *Session {
	nav := category.NewNavigator(trees, t.Type)
	nav.RestoreFrom(t.Type, t.Category, t.SubCategory)

	original := t
	s := &Session{
		id:              id,
		trees:           trees,
		nav:             nav,
		loc:             now.Location(),
		openedAt:        now,
		original:        &original,
		pendingCategory: models.Ptr(t.Category),
		amount:          t.Amount.String(),
		date:            aggregate.StartOfDay(t.Date, now.Location()),
		note:            t.Note,
	}
	if t.SubCategory != nil {
		s.pendingSub = models.Ptr(*t.SubCategory)
	}
	return s
}

// ID identifies the session.
func (s *Session) ID() string { return s.id }

// Type is the transaction type being entered.
func (s *Session) Type() models.TransactionType { return s.nav.Type() }

// Editing reports whether the session edits an existing transaction.
func (s *Session) Editing() bool { return s.original != nil }

// Pending returns the classification a submit would save.
func (s *Session) Pending() (category, subCategory *string) {
	return s.pendingCategory, s.pendingSub
}

// SwitchType changes the transaction type. Switching to the current type is
// a no-op; any other switch resets the navigator and drops the pending
// classification.
func (s *Session) SwitchType(txType models.TransactionType) {
	if txType == s.nav.Type() {
		return
	}
	s.nav.Initialize(txType)
	s.pendingCategory = nil
	s.pendingSub = nil
}

// Select picks the visible node with the given id and makes the navigator's
// selection the pending classification.
func (s *Session) Select(nodeID string) error {
	if _, ok := s.nav.SelectID(nodeID); !ok {
		return apperrors.WithMessage(apperrors.ErrUnknownNode, "category node "+nodeID+" is not visible")
	}
	main, sub := s.nav.Selection()
	s.pendingCategory, s.pendingSub = copyOptional(main), copyOptional(sub)
	return nil
}

// Ascend moves the navigator up one level. The pending classification is
// kept.
func (s *Session) Ascend() {
	s.nav.Ascend()
}

// SetAmount stores the raw amount text; it is validated on submit.
func (s *Session) SetAmount(amount string) {
	s.amount = strings.TrimSpace(amount)
}

// SetDate sets the calendar day from a YYYY-MM-DD string.
func (s *Session) SetDate(day string) error {
	d, err := time.ParseInLocation(DateLayout, day, s.loc)
	if err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD")
	}
	s.date = d
	return nil
}

// SetNote replaces the note.
func (s *Session) SetNote(note string) {
	s.note = note
}

// ApplyReceipt copies what a receipt scan found into the form. A category
// is only taken when it names a top-level expense category, in which case
// the session switches to expense and the category becomes pending with no
// sub-category. Anything else the scan returned is ignored.
func (s *Session) ApplyReceipt(r models.ReceiptData) {
	if r.Amount != nil && !r.Amount.IsZero() {
		s.amount = r.Amount.String()
	}
	if r.Date != nil && *r.Date != "" {
		_ = s.SetDate(*r.Date)
	}
	if r.Merchant != nil && *r.Merchant != "" {
		s.note = *r.Merchant
	}
	if r.Category != nil && s.trees.Expense.Contains(*r.Category) {
		s.SwitchType(models.TransactionTypeExpense)
		s.pendingCategory = models.Ptr(*r.Category)
		s.pendingSub = nil
	}
}

// CanSubmit reports whether Submit would succeed.
func (s *Session) CanSubmit() bool {
	_, err := s.parseAmount()
	return err == nil && s.pendingCategory != nil && *s.pendingCategory != ""
}

// Submit builds the transaction to save. Edits keep their id; new entries
// get one from newID. A blank note becomes "category-sub" or "category".
func (s *Session) Submit(newID uuid.Supplier) (models.Transaction, error) {
	amount, err := s.parseAmount()
	if err != nil {
		return models.Transaction{}, err
	}
	if s.pendingCategory == nil || *s.pendingCategory == "" {
		return models.Transaction{}, apperrors.ErrCategoryRequired
	}

	t := models.Transaction{
		Amount:   amount,
		Type:     s.nav.Type(),
		Category: *s.pendingCategory,
		Date:     s.submitDate(),
		Note:     strings.TrimSpace(s.note),
	}
	if s.pendingSub != nil && *s.pendingSub != "" {
		t.SubCategory = models.Ptr(*s.pendingSub)
	}
	if t.Note == "" {
		t.Note = t.CategoryLabel()
	}
	if s.original != nil {
		t.ID = s.original.ID
	} else {
		t.ID = newID()
	}
	return t, nil
}

func (s *Session) parseAmount() (decimal.Decimal, error) {
	if s.amount == "" {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount is required")
	}
	amount, err := decimal.NewFromString(s.amount)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	return amount, nil
}

// submitDate keeps a timestamp's time of day where one is known: the original
// time for an edit on the same day, the opening time for an entry made today,
// and midnight otherwise.
func (s *Session) submitDate() time.Time {
	if s.original != nil && aggregate.StartOfDay(s.original.Date, s.loc).Equal(s.date) {
		return s.original.Date
	}
	if s.original == nil && aggregate.StartOfDay(s.openedAt, s.loc).Equal(s.date) {
		return s.openedAt
	}
	return s.date
}

func copyOptional(v *string) *string {
	if v == nil {
		return nil
	}
	return models.Ptr(*v)
}

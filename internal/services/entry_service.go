package services

import (
	"context"
	"errors"
	"sync"

	"dream/internal/advisor"
	"dream/internal/cache"
	"dream/internal/category"
	"dream/internal/entry"
	apperrors "dream/internal/errors"
	"dream/internal/logger"
	"dream/internal/models"
	"dream/internal/uuid"
)

// entryService keeps open entry sessions in an expiring cache. Sessions are
// not safe for concurrent use, so every access goes through mu.
type entryService struct {
	mu        sync.Mutex
	sessions  *cache.LRUCache[*entry.Session]
	ledger    LedgerServicer
	advisor   advisor.Advisor
	trees     category.Trees
	now       Clock
	sessionID uuid.Supplier
	recordID  uuid.Supplier
}

// EntryOptions configures NewEntryService.
type EntryOptions struct {
	Sessions  *cache.LRUCache[*entry.Session]
	Ledger    LedgerServicer
	Advisor   advisor.Advisor
	Trees     category.Trees
	Now       Clock
	SessionID uuid.Supplier
	RecordID  uuid.Supplier
}

// NewEntryService creates a new EntryServicer.
func NewEntryService(opts EntryOptions) EntryServicer {
	if opts.SessionID == nil {
		opts.SessionID = uuid.New
	}
	if opts.RecordID == nil {
		opts.RecordID = uuid.New
	}
	if opts.Advisor == nil {
		opts.Advisor = advisor.Disabled{}
	}
	return &entryService{
		sessions:  opts.Sessions,
		ledger:    opts.Ledger,
		advisor:   opts.Advisor,
		trees:     opts.Trees,
		now:       opts.Now,
		sessionID: opts.SessionID,
		recordID:  opts.RecordID,
	}
}

// Open starts a blank session for txType.
func (s *entryService) Open(txType models.TransactionType) entry.View {
	sess := entry.New(s.sessionID(), s.trees, txType, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Set(sess.ID(), sess)
	return sess.View()
}

// OpenForEdit starts a session pre-filled from a stored transaction.
func (s *entryService) OpenForEdit(transactionID string) (*entry.View, error) {
	t, err := s.ledger.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}
	sess := entry.Edit(s.sessionID(), s.trees, *t, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Set(sess.ID(), sess)
	v := sess.View()
	return &v, nil
}

func (s *entryService) Get(id string) (*entry.View, error) {
	return s.update(id, func(*entry.Session) error { return nil })
}

func (s *entryService) SwitchType(id string, txType models.TransactionType) (*entry.View, error) {
	return s.update(id, func(sess *entry.Session) error {
		sess.SwitchType(txType)
		return nil
	})
}

func (s *entryService) Select(id, nodeID string) (*entry.View, error) {
	return s.update(id, func(sess *entry.Session) error {
		return sess.Select(nodeID)
	})
}

func (s *entryService) Ascend(id string) (*entry.View, error) {
	return s.update(id, func(sess *entry.Session) error {
		sess.Ascend()
		return nil
	})
}

// UpdateFields applies form changes. A bad date leaves every field as it was.
func (s *entryService) UpdateFields(id string, fields EntryFields) (*entry.View, error) {
	return s.update(id, func(sess *entry.Session) error {
		if fields.Date != nil {
			if err := sess.SetDate(*fields.Date); err != nil {
				return err
			}
		}
		if fields.Amount != nil {
			sess.SetAmount(*fields.Amount)
		}
		if fields.Note != nil {
			sess.SetNote(*fields.Note)
		}
		return nil
	})
}

// ApplyReceipt scans a receipt image and copies what was found into the
// session. The model call runs without holding the session lock.
func (s *entryService) ApplyReceipt(ctx context.Context, id string, image []byte, mimeType string) (*entry.View, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Receipt image is empty")
	}

	data, err := s.advisor.ParseReceipt(ctx, image, mimeType)
	if err != nil {
		if errors.Is(err, advisor.ErrUnavailable) {
			return nil, apperrors.ErrAdvisorUnavailable
		}
		logger.Get().Warnw("receipt scan failed", "session_id", id, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrReceiptUnreadable, err)
	}

	return s.update(id, func(sess *entry.Session) error {
		sess.ApplyReceipt(data)
		return nil
	})
}

// Submit validates the session, saves the transaction and closes the
// session. Edits only replace a transaction that still exists. A rejected
// submission keeps the session open.
func (s *entryService) Submit(ctx context.Context, id string) (*models.Transaction, error) {
	s.mu.Lock()
	sess, ok := s.sessions.Get(id)
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.ErrSessionNotFound
	}
	t, err := sess.Submit(s.recordID)
	editing := sess.Editing()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	// An edit whose transaction was deleted meanwhile must not recreate it.
	store := s.ledger.SaveTransaction
	if editing {
		store = s.ledger.ReplaceTransaction
	}
	saved, err := store(ctx, t)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions.Delete(id)
	s.mu.Unlock()
	return saved, nil
}

func (s *entryService) Discard(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions.Get(id); !ok {
		return apperrors.ErrSessionNotFound
	}
	s.sessions.Delete(id)
	return nil
}

func (s *entryService) update(id string, fn func(*entry.Session) error) (*entry.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	v := sess.View()
	return &v, nil
}

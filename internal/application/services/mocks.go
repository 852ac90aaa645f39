package services

import (
	"context"
	"sort"
	"sync"

	"github.com/DanielPopoola/zkybank/internal/application"
	"github.com/DanielPopoola/zkybank/internal/domain"
)

func sortEntriesMostRecentFirst(entries []domain.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})
}

// MockTxManager is an in-memory application.TxManager for tests. Writes are
// staged per transaction and applied atomically on commit under one mutex,
// with the same version-match-or-fail rule the Postgres repositories enforce.
// FindByNumberForUpdate is a plain read here: the fake exercises the weaker
// end of the locking seam, where conflict detection happens entirely at save.
type MockTxManager struct {
	mu       sync.Mutex
	accounts map[domain.AccountNumber]domain.Account
	entries  []domain.LedgerEntry

	// lockOrder records every FindByNumberForUpdate call so tests can assert
	// the stable acquisition order of two-account operations.
	lockOrder []string

	// saveConflicts forces the next n commits that contain saves to fail
	// with ErrConcurrencyConflict.
	saveConflicts int
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{
		accounts: make(map[domain.AccountNumber]domain.Account),
	}
}

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, uow application.UnitOfWork) error) error {
	uow := &mockUnitOfWork{store: m}
	if err := fn(ctx, uow); err != nil {
		return err
	}
	return uow.commit()
}

// Seed stores an account directly, bypassing transactional bookkeeping.
func (m *MockTxManager) Seed(account domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.Number] = account
}

// Account returns the stored account and whether it exists.
func (m *MockTxManager) Account(number domain.AccountNumber) (domain.Account, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[number]
	return account, ok
}

// EntriesFor returns the committed ledger entries for one account.
func (m *MockTxManager) EntriesFor(accountID domain.AccountID) []domain.LedgerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.LedgerEntry
	for _, entry := range m.entries {
		if entry.AccountID == accountID {
			out = append(out, entry)
		}
	}
	return out
}

// EntryCount returns the total number of committed ledger entries.
func (m *MockTxManager) EntryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// LockOrder returns the account numbers passed to FindByNumberForUpdate in
// call order.
func (m *MockTxManager) LockOrder() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lockOrder))
	copy(out, m.lockOrder)
	return out
}

func (m *MockTxManager) ResetLockOrder() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lockOrder = nil
}

// ForceSaveConflicts makes the next n committing transactions with saves fail
// with ErrConcurrencyConflict.
func (m *MockTxManager) ForceSaveConflicts(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveConflicts = n
}

type mockUnitOfWork struct {
	store   *MockTxManager
	creates []domain.Account
	saves   []domain.Account
	appends []domain.LedgerEntry
}

func (u *mockUnitOfWork) Accounts() application.AccountRepository {
	return &mockAccountRepository{uow: u}
}

func (u *mockUnitOfWork) Ledger() application.LedgerRepository {
	return &mockLedgerRepository{uow: u}
}

func (u *mockUnitOfWork) commit() error {
	store := u.store
	store.mu.Lock()
	defer store.mu.Unlock()

	if len(u.saves) > 0 && store.saveConflicts > 0 {
		store.saveConflicts--
		return application.ErrConcurrencyConflict
	}

	// Validate everything before applying anything: the boundary is atomic.
	for _, account := range u.creates {
		if _, exists := store.accounts[account.Number]; exists {
			return application.ErrDuplicateAccountNumber
		}
	}
	for _, account := range u.saves {
		current, exists := store.accounts[account.Number]
		if !exists || current.Version != account.Version-1 {
			return application.ErrConcurrencyConflict
		}
	}

	for _, account := range u.creates {
		store.accounts[account.Number] = account
	}
	for _, account := range u.saves {
		store.accounts[account.Number] = account
	}
	store.entries = append(store.entries, u.appends...)
	return nil
}

type mockAccountRepository struct {
	uow *mockUnitOfWork
}

func (r *mockAccountRepository) Create(_ context.Context, account domain.Account) error {
	r.uow.creates = append(r.uow.creates, account)
	return nil
}

func (r *mockAccountRepository) FindByNumber(_ context.Context, number domain.AccountNumber) (*domain.Account, error) {
	store := r.uow.store
	store.mu.Lock()
	defer store.mu.Unlock()
	account, ok := store.accounts[number]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (r *mockAccountRepository) FindByNumberForUpdate(_ context.Context, number domain.AccountNumber) (*domain.Account, error) {
	store := r.uow.store
	store.mu.Lock()
	defer store.mu.Unlock()
	store.lockOrder = append(store.lockOrder, number.String())
	account, ok := store.accounts[number]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (r *mockAccountRepository) Save(_ context.Context, account domain.Account) error {
	r.uow.saves = append(r.uow.saves, account)
	return nil
}

type mockLedgerRepository struct {
	uow *mockUnitOfWork
}

func (r *mockLedgerRepository) Append(_ context.Context, entry domain.LedgerEntry) error {
	r.uow.appends = append(r.uow.appends, entry)
	return nil
}

func (r *mockLedgerRepository) ListByAccount(_ context.Context, accountID domain.AccountID) ([]domain.LedgerEntry, error) {
	store := r.uow.store
	store.mu.Lock()
	defer store.mu.Unlock()

	var out []domain.LedgerEntry
	for _, entry := range store.entries {
		if entry.AccountID == accountID {
			out = append(out, entry)
		}
	}
	// Most recent first, matching the SQL repository's ORDER BY.
	sortEntriesMostRecentFirst(out)
	return out, nil
}

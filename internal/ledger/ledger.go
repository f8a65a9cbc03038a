package ledger

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInsufficientCredits is returned when a debit exceeds the balance.
var ErrInsufficientCredits = errors.New("insufficient credits")

// ErrInvalidAmount is returned for zero or negative credit amounts.
var ErrInvalidAmount = errors.New("credit amount must be positive")

// Ledger holds the in-memory credit balance. Safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	balance int
}

// New constructs a ledger seeded with the starting balance.
// Negative starting balances are clamped to zero.
func New(starting int) *Ledger {
	if starting < 0 {
		starting = 0
	}
	return &Ledger{balance: starting}
}

// Balance returns the current credit balance.
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Debit removes amount credits from the balance. The balance is unchanged
// when the debit would drive it negative.
func (l *Ledger) Debit(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("debit %d: %w", amount, ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balance < amount {
		return fmt.Errorf("debit %d with balance %d: %w", amount, l.balance, ErrInsufficientCredits)
	}
	l.balance -= amount
	return nil
}

// Credit adds amount credits and returns the new balance.
func (l *Ledger) Credit(amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit %d: %w", amount, ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += amount
	return l.balance, nil
}

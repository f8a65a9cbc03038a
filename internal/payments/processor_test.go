package payments_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stemsync/internal/ledger"
	"stemsync/internal/payments"
)

func TestPurchaseCreditsLedgerWithBonus(t *testing.T) {
	l := ledger.New(1)
	proc := payments.NewProcessor(l, 0, nil)

	receipt, err := proc.Purchase(context.Background(), "12")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if receipt.CreditsGranted != 14 {
		t.Fatalf("credits granted = %d, want 14", receipt.CreditsGranted)
	}
	if receipt.NewBalance != 15 {
		t.Fatalf("new balance = %d, want 15", receipt.NewBalance)
	}
	if got := l.Balance(); got != 15 {
		t.Fatalf("ledger balance = %d, want 15", got)
	}
	if receipt.SettledAt.IsZero() {
		t.Fatal("receipt should carry a settlement time")
	}
}

func TestPurchaseUnknownPackage(t *testing.T) {
	l := ledger.New(0)
	proc := payments.NewProcessor(l, 0, nil)

	_, err := proc.Purchase(context.Background(), "99")
	if !errors.Is(err, ledger.ErrUnknownPackage) {
		t.Fatalf("expected ErrUnknownPackage, got %v", err)
	}
	if got := l.Balance(); got != 0 {
		t.Fatalf("balance = %d, want 0", got)
	}
}

func TestPurchaseCancelledBeforeSettlement(t *testing.T) {
	l := ledger.New(0)
	proc := payments.NewProcessor(l, 5*time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := proc.Purchase(ctx, "1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := l.Balance(); got != 0 {
		t.Fatalf("cancelled purchase must not credit the ledger, balance = %d", got)
	}
}

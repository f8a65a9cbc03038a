package payments

import (
	"context"
	"log/slog"
	"time"

	"stemsync/internal/ledger"
	"stemsync/internal/logging"
)

// Receipt reports a settled purchase.
type Receipt struct {
	Package        ledger.Package
	CreditsGranted int
	NewBalance     int
	SettledAt      time.Time
}

// Processor settles simulated credit purchases against a ledger.
type Processor struct {
	ledger *ledger.Ledger
	delay  time.Duration
	logger *slog.Logger
}

// NewProcessor constructs a processor with the given settling delay.
func NewProcessor(l *ledger.Ledger, delay time.Duration, logger *slog.Logger) *Processor {
	if delay < 0 {
		delay = 0
	}
	return &Processor{
		ledger: l,
		delay:  delay,
		logger: logging.NewComponentLogger(logger, "payments"),
	}
}

// Purchase settles the package with the given id and credits the ledger with
// its full credit total including bonus credits. Cancellation before the
// settling delay elapses leaves the ledger untouched.
func (p *Processor) Purchase(ctx context.Context, packageID string) (Receipt, error) {
	pkg, err := ledger.PackageByID(packageID)
	if err != nil {
		return Receipt{}, err
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	balance, err := p.ledger.Credit(pkg.Total())
	if err != nil {
		return Receipt{}, err
	}

	p.logger.Info("purchase settled",
		logging.String("package", pkg.ID),
		logging.Int("credits", pkg.Total()),
		logging.Int("balance", balance))

	return Receipt{
		Package:        pkg,
		CreditsGranted: pkg.Total(),
		NewBalance:     balance,
		SettledAt:      time.Now(),
	}, nil
}

package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"stemsync/internal/ledger"
	"stemsync/internal/logging"
	"stemsync/internal/project"
	"stemsync/internal/separation"
)

// ErrOperationInProgress is returned when an upload or reset arrives while a
// separation is already in flight. Requests are rejected, never queued.
var ErrOperationInProgress = errors.New("separation already in progress")

// Status is a point-in-time snapshot of the workflow.
type Status struct {
	State     State
	Balance   int
	Project   *project.Project
	LastError string
}

// Controller owns the upload -> separation -> mix state machine.
type Controller struct {
	ledger *ledger.Ledger
	store  *project.Store
	engine separation.Engine
	cost   int
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	lastErr error
}

// NewController wires the ledger, store, and engine into a controller in the
// idle state. cost is the number of credits debited per upload.
func NewController(l *ledger.Ledger, store *project.Store, engine separation.Engine, cost int, logger *slog.Logger) *Controller {
	if cost < 1 {
		cost = 1
	}
	return &Controller{
		ledger: l,
		store:  store,
		engine: engine,
		cost:   cost,
		state:  StateIdle,
		logger: logging.NewComponentLogger(logger, "workflow"),
	}
}

// State returns the current workflow state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Balance reports the ledger balance. It never blocks on a running
// separation.
func (c *Controller) Balance() int {
	return c.ledger.Balance()
}

// Project returns a copy of the active project, or nil.
func (c *Controller) Project() *project.Project {
	return c.store.Current()
}

// Status returns a consistent snapshot of state, balance, and project.
func (c *Controller) Status() Status {
	c.mu.Lock()
	state := c.state
	lastErr := ""
	if c.lastErr != nil {
		lastErr = c.lastErr.Error()
	}
	c.mu.Unlock()

	return Status{
		State:     state,
		Balance:   c.ledger.Balance(),
		Project:   c.store.Current(),
		LastError: lastErr,
	}
}

// Upload runs one separation attempt for the given source file.
//
// The credit debit completes before the engine is issued. While the engine
// runs the controller lock is released, so reads (State, Balance, Status)
// stay available; a concurrent Upload is rejected with
// ErrOperationInProgress. On engine failure the debited credit is not
// refunded and the controller settles back into ready when a previous
// project is still loaded, idle otherwise.
func (c *Controller) Upload(ctx context.Context, sourcePath string) (*project.Project, error) {
	c.mu.Lock()
	if c.state == StateSeparating {
		c.mu.Unlock()
		return nil, ErrOperationInProgress
	}
	if c.ledger.Balance() < c.cost {
		c.state = StateAwaitingCredits
		c.lastErr = ledger.ErrInsufficientCredits
		c.mu.Unlock()
		return nil, fmt.Errorf("upload needs %d credit(s): %w", c.cost, ledger.ErrInsufficientCredits)
	}
	if err := c.ledger.Debit(c.cost); err != nil {
		// Lost a race against an external debit between the check and here.
		c.state = StateAwaitingCredits
		c.lastErr = err
		c.mu.Unlock()
		return nil, err
	}
	c.state = StateSeparating
	c.lastErr = nil
	c.mu.Unlock()

	c.logger.Info("upload accepted",
		logging.String("source", sourcePath),
		logging.Int("cost", c.cost),
		logging.Int("balance", c.ledger.Balance()))

	result, err := c.engine.Separate(ctx, separation.Request{
		SourcePath:      sourcePath,
		RequiredCredits: c.cost,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = c.settledState()
		c.lastErr = err
		c.logger.Warn("separation failed", logging.Error(err))
		return nil, err
	}
	if err := c.store.SetCurrent(result); err != nil {
		c.state = c.settledState()
		c.lastErr = err
		return nil, err
	}
	c.state = StateReady
	c.lastErr = nil
	c.logger.Info("project ready",
		logging.String("project_id", result.ID),
		logging.String("title", result.Title))
	return result.Clone(), nil
}

// settledState is the state a failed separation lands in. A project loaded
// before the attempt stays loaded, so the machine returns to ready; with no
// project the machine is idle. Callers must hold c.mu.
func (c *Controller) settledState() State {
	if c.store.Current() != nil {
		return StateReady
	}
	return StateIdle
}

// Reset discards the active project and returns to idle. It is rejected
// while a separation is in flight.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSeparating {
		return ErrOperationInProgress
	}
	c.store.Clear()
	c.state = StateIdle
	c.lastErr = nil
	c.logger.Info("project reset")
	return nil
}

// UpdateStem adjusts mixer fields on a stem of the active project.
func (c *Controller) UpdateStem(stemID string, update project.StemUpdate) (*project.Project, error) {
	return c.store.UpdateStem(stemID, update)
}

// Rename retitles the active project.
func (c *Controller) Rename(title string) (*project.Project, error) {
	return c.store.Rename(title)
}

// Save refreshes the active project's UpdatedAt timestamp.
func (c *Controller) Save() (*project.Project, error) {
	return c.store.Save()
}

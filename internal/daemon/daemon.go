package daemon

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"stemsync/internal/config"
	"stemsync/internal/export"
	"stemsync/internal/ledger"
	"stemsync/internal/logging"
	"stemsync/internal/payments"
	"stemsync/internal/project"
	"stemsync/internal/separation"
	"stemsync/internal/services"
	"stemsync/internal/workflow"
)

// Daemon owns the studio subsystems and enforces single-instance execution.
type Daemon struct {
	cfg        *config.Config
	logger     *slog.Logger
	ledger     *ledger.Ledger
	store      *project.Store
	controller *workflow.Controller
	processor  *payments.Processor
	renderer   *export.Renderer
	logPath    string

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc

	api *apiServer
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	Workflow     workflow.Status
	LockFilePath string
	APIAddress   string
}

// New constructs a daemon with initialized subsystems.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || logger == nil {
		return nil, errors.New("daemon requires config and logger")
	}

	credits := ledger.New(cfg.Studio.StartingCredits)
	store := project.NewStore()
	engine := separation.NewSimulated(
		time.Duration(cfg.Studio.SeparationDelaySeconds)*time.Second, logger)
	controller := workflow.NewController(credits, store, engine, cfg.Studio.SeparationCost, logger)
	processor := payments.NewProcessor(credits,
		time.Duration(cfg.Studio.PaymentDelaySeconds)*time.Second, logger)
	renderer := export.NewRenderer(cfg.Paths.ExportDir,
		time.Duration(cfg.Studio.ExportDelaySeconds)*time.Second, logger)

	lockPath := filepath.Join(cfg.Paths.LogDir, "stemsyncd.lock")
	d := &Daemon{
		cfg:        cfg,
		logger:     logger,
		ledger:     credits,
		store:      store,
		controller: controller,
		processor:  processor,
		renderer:   renderer,
		logPath:    filepath.Join(cfg.Paths.LogDir, "stemsync.log"),
		lockPath:   lockPath,
		lock:       flock.New(lockPath),
	}

	srv, err := newAPIServer(cfg, d, logging.NewComponentLogger(logger, "api-server"))
	if err != nil {
		return nil, err
	}
	d.api = srv
	return d, nil
}

// Start acquires the daemon lock and brings up the HTTP surface.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another stemsync daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	if d.api != nil {
		if err := d.api.start(d.ctx); err != nil {
			_ = d.lock.Unlock()
			d.cancel()
			d.ctx = nil
			d.cancel = nil
			return err
		}
	}

	d.running.Store(true)
	d.logger.Info("stemsync daemon started",
		slog.String("lock", d.lockPath),
		slog.Int("credits", d.ledger.Balance()))
	return nil
}

// Stop shuts down the HTTP surface and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.api != nil {
		d.api.stop()
	}
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("stemsync daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Status returns the current daemon status.
func (d *Daemon) Status() Status {
	st := Status{
		Running:      d.running.Load(),
		Workflow:     d.controller.Status(),
		LockFilePath: d.lockPath,
	}
	if d.api != nil {
		st.APIAddress = d.api.address()
	}
	return st
}

// WorkflowStatus returns the workflow snapshot without daemon bookkeeping.
func (d *Daemon) WorkflowStatus() workflow.Status {
	return d.controller.Status()
}

// Upload runs the full upload-and-separate flow for the given source file.
func (d *Daemon) Upload(ctx context.Context, sourcePath string) (*project.Project, error) {
	ctx = services.WithOperation(ctx, "upload")
	p, err := d.controller.Upload(ctx, sourcePath)
	if err != nil {
		logging.WithContext(ctx, d.logger).Warn("upload failed", logging.Error(err))
		return nil, err
	}
	logging.WithContext(services.WithProjectID(ctx, p.ID), d.logger).Info("upload complete",
		logging.String("title", p.Title))
	return p, nil
}

// Purchase settles a credit package purchase against the ledger.
func (d *Daemon) Purchase(ctx context.Context, packageID string) (payments.Receipt, error) {
	return d.processor.Purchase(services.WithOperation(ctx, "purchase"), packageID)
}

// Packages returns the purchasable credit package catalog.
func (d *Daemon) Packages() []ledger.Package {
	return ledger.Packages()
}

// UpdateStem applies a volume or pan change to a stem of the active project.
func (d *Daemon) UpdateStem(stemID string, update project.StemUpdate) (*project.Project, error) {
	return d.controller.UpdateStem(stemID, update)
}

// Rename retitles the active project.
func (d *Daemon) Rename(title string) (*project.Project, error) {
	return d.controller.Rename(title)
}

// Save persists the current mix state of the active project.
func (d *Daemon) Save() (*project.Project, error) {
	return d.controller.Save()
}

// Export renders the active project mix and returns the output path.
func (d *Daemon) Export(ctx context.Context) (string, error) {
	return d.renderer.Export(services.WithOperation(ctx, "export"), d.controller.Project())
}

// Share returns a shareable link for the active project.
func (d *Daemon) Share() (string, error) {
	p := d.controller.Project()
	if p == nil {
		return "", project.ErrNoActiveProject
	}
	return export.ShareLink(d.cfg.Paths.BaseURL, p.ID), nil
}

// Reset discards the active project and returns the workflow to idle.
func (d *Daemon) Reset() error {
	return d.controller.Reset()
}

// LogPath returns the path to the daemon log file.
func (d *Daemon) LogPath() string {
	return d.logPath
}

package daemon_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"stemsync/internal/daemon"
	"stemsync/internal/logging"
	"stemsync/internal/project"
	"stemsync/internal/testsupport"
	"stemsync/internal/workflow"
)

func startDaemon(t *testing.T, opts ...testsupport.ConfigOption) *daemon.Daemon {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	d, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start daemon: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestDaemonStartStop(t *testing.T) {
	d := startDaemon(t)

	status := d.Status()
	if !status.Running {
		t.Fatal("expected daemon running after start")
	}
	if status.APIAddress == "" {
		t.Fatal("expected api server bound to an address")
	}
	if status.Workflow.State != workflow.StateIdle {
		t.Fatalf("expected idle workflow, got %s", status.Workflow.State)
	}

	d.Stop()
	if d.Status().Running {
		t.Fatal("expected daemon stopped")
	}
}

func TestDaemonSecondInstanceRejected(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutAPI())

	first, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	if err := first.Start(context.Background()); err != nil {
		t.Fatalf("start first: %v", err)
	}
	defer first.Close()

	second, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new second daemon: %v", err)
	}
	if err := second.Start(context.Background()); err == nil {
		second.Close()
		t.Fatal("expected second instance start to fail")
	}
}

func TestDaemonUploadFlow(t *testing.T) {
	d := startDaemon(t, testsupport.WithoutAPI())
	source := testsupport.WriteAudioFile(t, "my mix.mp3")

	p, err := d.Upload(context.Background(), source)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if p.Title != "my mix" {
		t.Fatalf("unexpected title %q", p.Title)
	}
	if len(p.Stems) != 4 {
		t.Fatalf("expected 4 stems, got %d", len(p.Stems))
	}

	status := d.WorkflowStatus()
	if status.State != workflow.StateReady {
		t.Fatalf("expected ready state, got %s", status.State)
	}
	if status.Balance != 2 {
		t.Fatalf("expected 2 credits remaining, got %d", status.Balance)
	}
}

func TestDaemonExportAndShare(t *testing.T) {
	d := startDaemon(t, testsupport.WithoutAPI())
	source := testsupport.WriteAudioFile(t, "track.mp3")

	if _, err := d.Upload(context.Background(), source); err != nil {
		t.Fatalf("upload: %v", err)
	}

	path, err := d.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}

	link, err := d.Share()
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if !strings.Contains(link, "/projects/") {
		t.Fatalf("unexpected share link %q", link)
	}
}

func TestDaemonShareWithoutProject(t *testing.T) {
	d := startDaemon(t, testsupport.WithoutAPI())

	if _, err := d.Share(); !errors.Is(err, project.ErrNoActiveProject) {
		t.Fatalf("expected ErrNoActiveProject, got %v", err)
	}
	if _, err := d.Export(context.Background()); !errors.Is(err, project.ErrNoActiveProject) {
		t.Fatalf("expected ErrNoActiveProject from export, got %v", err)
	}
}

func TestDaemonPurchaseAndReset(t *testing.T) {
	d := startDaemon(t, testsupport.WithoutAPI(), testsupport.WithStartingCredits(0))

	receipt, err := d.Purchase(context.Background(), "12")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if receipt.NewBalance != 14 {
		t.Fatalf("expected 14 credits, got %d", receipt.NewBalance)
	}

	source := testsupport.WriteAudioFile(t, "track.wav")
	if _, err := d.Upload(context.Background(), source); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := d.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if d.WorkflowStatus().State != workflow.StateIdle {
		t.Fatal("expected idle after reset")
	}
	if got := d.WorkflowStatus().Balance; got != 13 {
		t.Fatalf("reset must not refund credits, balance %d", got)
	}
}

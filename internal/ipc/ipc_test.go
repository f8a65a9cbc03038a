package ipc_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"stemsync/internal/daemon"
	"stemsync/internal/ipc"
	"stemsync/internal/ledger"
	"stemsync/internal/logging"
	"stemsync/internal/project"
	"stemsync/internal/testsupport"
	"stemsync/internal/workflow"
)

func startIPC(t *testing.T, opts ...testsupport.ConfigOption) *ipc.Client {
	t.Helper()

	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithoutAPI()}, opts...)...)
	d, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start daemon: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	socket := filepath.Join(cfg.Paths.LogDir, "stemsync.sock")
	server, err := ipc.NewServer(context.Background(), socket, d, logging.NewNop(), nil)
	if err != nil {
		t.Fatalf("new ipc server: %v", err)
	}
	server.Serve()
	t.Cleanup(server.Close)

	client, err := ipc.Dial(socket)
	if err != nil {
		t.Fatalf("dial ipc: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestIPCStatusAndPackages(t *testing.T) {
	client := startIPC(t)

	status, err := client.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.Running || status.State != string(workflow.StateIdle) {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.Credits != 3 {
		t.Fatalf("expected 3 starting credits, got %d", status.Credits)
	}

	packages, err := client.Packages()
	if err != nil {
		t.Fatalf("packages: %v", err)
	}
	if len(packages) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(packages))
	}
}

func TestIPCUploadAndMix(t *testing.T) {
	client := startIPC(t)
	source := testsupport.WriteAudioFile(t, "demo.mp3")

	p, err := client.Upload(source)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if p == nil || len(p.Stems) != 4 {
		t.Fatalf("unexpected project %+v", p)
	}

	volume := 55
	updated, err := client.UpdateStem(ipc.UpdateStemRequest{StemID: p.Stems[0].ID, Volume: &volume})
	if err != nil {
		t.Fatalf("update stem: %v", err)
	}
	if updated.Stems[0].Volume != 55 {
		t.Fatalf("expected volume 55, got %d", updated.Stems[0].Volume)
	}

	renamed, err := client.Rename("Night Drive")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Title != "Night Drive" {
		t.Fatalf("unexpected title %q", renamed.Title)
	}

	if _, err := client.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	path, err := client.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if path == "" {
		t.Fatal("expected export path")
	}

	link, err := client.Share()
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if link == "" {
		t.Fatal("expected share link")
	}

	if err := client.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
}

func TestIPCErrorKindsSurvive(t *testing.T) {
	client := startIPC(t, testsupport.WithStartingCredits(0))

	source := testsupport.WriteAudioFile(t, "demo.mp3")
	if _, err := client.Upload(source); !errors.Is(err, ledger.ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}

	if _, err := client.Save(); !errors.Is(err, project.ErrNoActiveProject) {
		t.Fatalf("expected ErrNoActiveProject, got %v", err)
	}

	if _, err := client.Purchase("999"); !errors.Is(err, ledger.ErrUnknownPackage) {
		t.Fatalf("expected ErrUnknownPackage, got %v", err)
	}

	volume := 10
	if _, err := client.UpdateStem(ipc.UpdateStemRequest{StemID: "missing", Volume: &volume}); !errors.Is(err, project.ErrNoActiveProject) {
		t.Fatalf("expected ErrNoActiveProject for stem update, got %v", err)
	}
}

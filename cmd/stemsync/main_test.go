package main

import (
	"strings"
	"testing"

	"stemsync/internal/testsupport"
)

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Stemsync Studio")
	requireContains(t, out, "running")
	requireContains(t, out, "idle")
	requireContains(t, out, "none")
}

func TestUploadAndStemsCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	source := testsupport.WriteAudioFile(t, "summer jam.mp3")

	out, _, err := runCLI(t, []string{"upload", source}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	requireContains(t, out, "4 stems")
	requireContains(t, out, "summer jam")

	out, _, err = runCLI(t, []string{"stems"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("stems: %v", err)
	}
	requireContains(t, out, "Vocal")
	requireContains(t, out, "Bass")
	requireContains(t, out, "120")
}

func TestMixByStemType(t *testing.T) {
	env := setupCLITestEnv(t)
	source := testsupport.WriteAudioFile(t, "track.mp3")

	if _, _, err := runCLI(t, []string{"upload", source}, env.socketPath, env.configPath); err != nil {
		t.Fatalf("upload: %v", err)
	}

	out, _, err := runCLI(t, []string{"mix", "vocal", "--volume", "42"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("mix: %v", err)
	}
	requireContains(t, out, "Vocal: volume 42")
}

func TestMixRejectsEmptyUpdate(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"mix", "some-stem"}, env.socketPath, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "nothing to change") {
		t.Fatalf("expected empty update rejection, got %v", err)
	}
}

func TestCreditsCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"credits"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("credits: %v", err)
	}
	requireContains(t, out, "Balance: 3")
	requireContains(t, out, "$0.50")
	requireContains(t, out, "$10.00")

	out, _, err = runCLI(t, []string{"credits", "buy", "12"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("credits buy: %v", err)
	}
	requireContains(t, out, "balance is now 17")
}

func TestUploadWithoutCredits(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStartingCredits(0))
	source := testsupport.WriteAudioFile(t, "track.mp3")

	_, _, err := runCLI(t, []string{"upload", source}, env.socketPath, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "credit") {
		t.Fatalf("expected credit error, got %v", err)
	}
}

func TestShareWithoutProject(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"share"}, env.socketPath, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "no active project") {
		t.Fatalf("expected no active project error, got %v", err)
	}
}

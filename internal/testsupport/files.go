package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteAudioFile drops a small placeholder audio file under the test temp
// directory and returns its path.
func WriteAudioFile(t testing.TB, name string) string {
	t.Helper()

	if name == "" {
		name = "track.mp3"
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

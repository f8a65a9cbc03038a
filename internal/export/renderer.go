package export

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stemsync/internal/logging"
	"stemsync/internal/project"
	"stemsync/internal/services"
)

// Placeholder payload standing in for a rendered mix.
var mockMixPayload = []byte("Mock audio data")

// Renderer writes simulated mix exports into a target directory.
type Renderer struct {
	dir    string
	delay  time.Duration
	logger *slog.Logger
}

// NewRenderer constructs a renderer writing into dir after the given delay.
func NewRenderer(dir string, delay time.Duration, logger *slog.Logger) *Renderer {
	if delay < 0 {
		delay = 0
	}
	return &Renderer{
		dir:    dir,
		delay:  delay,
		logger: logging.NewComponentLogger(logger, "export"),
	}
}

// Export renders the project's mix and returns the written file path. The
// file is named "<title>_remix.mp3" with the title sanitized for filesystem
// use. Cancellation before the render delay elapses writes nothing.
func (r *Renderer) Export(ctx context.Context, p *project.Project) (string, error) {
	if p == nil {
		return "", project.ErrNoActiveProject
	}

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", services.Wrap(services.ErrTransient, "export", "render", "create export directory", err)
	}

	name := sanitizeTitle(p.Title) + "_remix.mp3"
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, mockMixPayload, 0o644); err != nil {
		return "", services.Wrap(services.ErrTransient, "export", "render", "write export", err)
	}

	r.logger.Info("mix exported",
		logging.String("project_id", p.ID),
		logging.String("file", name))
	return path, nil
}

// ShareLink builds the public URL for a project.
func ShareLink(baseURL, projectID string) string {
	return strings.TrimRight(baseURL, "/") + "/projects/" + projectID
}

func sanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "untitled"
	}
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

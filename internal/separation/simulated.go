package separation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"stemsync/internal/logging"
	"stemsync/internal/project"
	"stemsync/internal/services"
)

// Per-type mixer defaults applied to freshly separated stems.
var defaultVolumes = map[project.StemType]int{
	project.StemVocal:       75,
	project.StemDrums:       80,
	project.StemInstruments: 70,
	project.StemBass:        85,
}

var supportedExtensions = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".flac": {},
	".m4a":  {},
	".aac":  {},
	".ogg":  {},
	".opus": {},
	".aiff": {},
}

// DefaultVolume returns the deterministic starting volume for a stem type.
func DefaultVolume(stemType project.StemType) int {
	if volume, ok := defaultVolumes[stemType]; ok {
		return volume
	}
	return 75
}

// SupportedSource reports whether the filename carries a supported audio
// extension.
func SupportedSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := supportedExtensions[ext]
	return ok
}

// Simulated is a timer-backed Engine producing deterministic mock stems. A
// real backend replaces it behind the same interface.
type Simulated struct {
	delay    time.Duration
	analysis Analysis
	logger   *slog.Logger
}

// NewSimulated constructs the simulated engine. The analysis values are
// copied onto every stem of every produced project.
func NewSimulated(delay time.Duration, logger *slog.Logger) *Simulated {
	if delay < 0 {
		delay = 0
	}
	return &Simulated{
		delay:    delay,
		analysis: Analysis{Key: "C", Tempo: 120},
		logger:   logging.NewComponentLogger(logger, "separation"),
	}
}

// Separate validates the source, waits the configured delay, and returns a
// project holding one stem per fixed type referencing the original source.
func (s *Simulated) Separate(ctx context.Context, req Request) (*project.Project, error) {
	path := strings.TrimSpace(req.SourcePath)
	if path == "" {
		return nil, services.Wrap(ErrSeparationFailed, "separation", "validate", "empty source path", nil)
	}
	if !SupportedSource(path) {
		return nil, services.Wrap(ErrSeparationFailed, "separation", "validate",
			fmt.Sprintf("unsupported format %q", filepath.Ext(path)), nil)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, services.Wrap(ErrSeparationFailed, "separation", "validate", "source unreadable", err)
	}
	if info.IsDir() {
		return nil, services.Wrap(ErrSeparationFailed, "separation", "validate",
			fmt.Sprintf("source %q is a directory", path), nil)
	}

	s.logger.Info("separating source",
		logging.String("source", filepath.Base(path)),
		logging.Duration("delay", s.delay))

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	source := "file://" + path
	stems := make([]project.Stem, 0, 4)
	for _, stemType := range project.AllStemTypes() {
		stems = append(stems, project.Stem{
			ID:          uuid.NewString(),
			Type:        stemType,
			AudioSource: source,
			Volume:      DefaultVolume(stemType),
			Pan:         0,
			Key:         s.analysis.Key,
			Tempo:       s.analysis.Tempo,
		})
	}

	result := &project.Project{
		ID:        uuid.NewString(),
		Title:     project.TitleFromFilename(path),
		Stems:     stems,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := project.ValidateStems(result.Stems); err != nil {
		return nil, services.Wrap(ErrSeparationFailed, "separation", "assemble", "", err)
	}

	s.logger.Info("separation complete",
		logging.String("project_id", result.ID),
		logging.String("title", result.Title))
	return result, nil
}

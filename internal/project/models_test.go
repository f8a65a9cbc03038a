package project_test

import (
	"testing"

	"github.com/google/uuid"

	"stemsync/internal/project"
)

func TestTitleFromFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"track.mp3", "track"},
		{"/music/uploads/song.flac", "song"},
		{"My Demo.wav", "My Demo"},
		{"noext", "noext"},
		{"archive.tar.gz", "archive.tar"},
		{".mp3", "Untitled Project"},
		{"", "Untitled Project"},
		{"   ", "Untitled Project"},
	}
	for _, tc := range cases {
		if got := project.TitleFromFilename(tc.in); got != tc.want {
			t.Fatalf("TitleFromFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseStemType(t *testing.T) {
	for _, stemType := range project.AllStemTypes() {
		parsed, ok := project.ParseStemType(" " + string(stemType) + " ")
		if !ok || parsed != stemType {
			t.Fatalf("ParseStemType(%q) = %q, %v", stemType, parsed, ok)
		}
	}
	if _, ok := project.ParseStemType("guitar"); ok {
		t.Fatal("expected unknown stem type to be rejected")
	}
	if _, ok := project.ParseStemType(""); ok {
		t.Fatal("expected empty stem type to be rejected")
	}
}

func TestStemTypeDisplayName(t *testing.T) {
	if got := project.StemVocal.DisplayName(); got != "Vocal" {
		t.Fatalf("DisplayName = %q, want Vocal", got)
	}
	if got := project.StemInstruments.DisplayName(); got != "Instruments" {
		t.Fatalf("DisplayName = %q, want Instruments", got)
	}
}

func TestValidateStems(t *testing.T) {
	valid := validStems()
	if err := project.ValidateStems(valid); err != nil {
		t.Fatalf("ValidateStems(valid) = %v", err)
	}

	missing := valid[:3]
	if err := project.ValidateStems(missing); err == nil {
		t.Fatal("expected error for missing stem type")
	}

	duplicated := append([]project.Stem{}, valid...)
	duplicated[3].Type = project.StemVocal
	if err := project.ValidateStems(duplicated); err == nil {
		t.Fatal("expected error for duplicated stem type")
	}

	badVolume := append([]project.Stem{}, valid...)
	badVolume[0].Volume = 150
	if err := project.ValidateStems(badVolume); err == nil {
		t.Fatal("expected error for out-of-range volume")
	}

	blankID := append([]project.Stem{}, valid...)
	blankID[1].ID = ""
	if err := project.ValidateStems(blankID); err == nil {
		t.Fatal("expected error for blank stem id")
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := &project.Project{
		ID:    uuid.NewString(),
		Title: "demo",
		Stems: validStems(),
	}
	clone := original.Clone()
	clone.Stems[0].Volume = 1
	if original.Stems[0].Volume == 1 {
		t.Fatal("mutating the clone should not touch the original")
	}
}

func validStems() []project.Stem {
	stems := make([]project.Stem, 0, 4)
	for _, stemType := range project.AllStemTypes() {
		stems = append(stems, project.Stem{
			ID:          uuid.NewString(),
			Type:        stemType,
			AudioSource: "blob:upload",
			Volume:      75,
			Pan:         0,
			Key:         "C",
			Tempo:       120,
		})
	}
	return stems
}

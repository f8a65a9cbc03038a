package project

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StemType identifies one of the fixed separated tracks.
type StemType string

const (
	StemVocal       StemType = "vocal"
	StemDrums       StemType = "drums"
	StemInstruments StemType = "instruments"
	StemBass        StemType = "bass"
)

// Volume and pan bounds enforced on every stem mutation.
const (
	MinVolume = 0
	MaxVolume = 100
	MinPan    = -50
	MaxPan    = 50
)

var allStemTypes = []StemType{
	StemVocal,
	StemDrums,
	StemInstruments,
	StemBass,
}

var stemTypeSet = func() map[StemType]struct{} {
	set := make(map[StemType]struct{}, len(allStemTypes))
	for _, stemType := range allStemTypes {
		set[stemType] = struct{}{}
	}
	return set
}()

var titleCaser = cases.Title(language.Und)

// AllStemTypes returns the ordered list of known stem types.
func AllStemTypes() []StemType {
	cp := make([]StemType, len(allStemTypes))
	copy(cp, allStemTypes)
	return cp
}

// ParseStemType converts a string into a known StemType.
func ParseStemType(value string) (StemType, bool) {
	normalized := StemType(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := stemTypeSet[normalized]
	return normalized, ok
}

// DisplayName returns the human-readable label for the stem type.
func (t StemType) DisplayName() string {
	return titleCaser.String(string(t))
}

// Stem represents one isolated track of a project.
type Stem struct {
	ID          string
	Type        StemType
	AudioSource string
	Volume      int
	Pan         int
	Key         string
	Tempo       float64
}

// Project is a named collection of exactly one stem per stem type.
type Project struct {
	ID        string
	Title     string
	Stems     []Stem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stem returns the stem with the given id, if present.
func (p *Project) Stem(id string) (Stem, bool) {
	for _, stem := range p.Stems {
		if stem.ID == id {
			return stem, true
		}
	}
	return Stem{}, false
}

// StemByType returns the stem of the given type, if present.
func (p *Project) StemByType(stemType StemType) (Stem, bool) {
	for _, stem := range p.Stems {
		if stem.Type == stemType {
			return stem, true
		}
	}
	return Stem{}, false
}

// Clone returns a deep copy so callers can hand projects across goroutines.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Stems = make([]Stem, len(p.Stems))
	copy(cp.Stems, p.Stems)
	return &cp
}

// ValidateStems checks the fixed stem-set invariant: exactly one stem per
// known type, no duplicates, ids present and unique, levels within bounds.
func ValidateStems(stems []Stem) error {
	if len(stems) != len(allStemTypes) {
		return ErrInvalidStemSet
	}
	seenTypes := make(map[StemType]struct{}, len(stems))
	seenIDs := make(map[string]struct{}, len(stems))
	for _, stem := range stems {
		if _, known := stemTypeSet[stem.Type]; !known {
			return ErrInvalidStemSet
		}
		if _, dup := seenTypes[stem.Type]; dup {
			return ErrInvalidStemSet
		}
		seenTypes[stem.Type] = struct{}{}
		if strings.TrimSpace(stem.ID) == "" {
			return ErrInvalidStemSet
		}
		if _, dup := seenIDs[stem.ID]; dup {
			return ErrInvalidStemSet
		}
		seenIDs[stem.ID] = struct{}{}
		if stem.Volume < MinVolume || stem.Volume > MaxVolume {
			return ErrOutOfRange
		}
		if stem.Pan < MinPan || stem.Pan > MaxPan {
			return ErrOutOfRange
		}
	}
	return nil
}

// TitleFromFilename derives the default project title from an uploaded
// filename by stripping the directory and extension.
func TitleFromFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.TrimSpace(base)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "Untitled Project"
	}
	return base
}

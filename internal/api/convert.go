package api

import (
	"time"

	"stemsync/internal/ledger"
	"stemsync/internal/payments"
	"stemsync/internal/project"
	"stemsync/internal/workflow"
)

// FromStem converts a domain stem to its API representation.
func FromStem(stem project.Stem) Stem {
	return Stem{
		ID:          stem.ID,
		Type:        string(stem.Type),
		Name:        stem.Type.DisplayName(),
		AudioSource: stem.AudioSource,
		Volume:      stem.Volume,
		Pan:         stem.Pan,
		Key:         stem.Key,
		Tempo:       stem.Tempo,
	}
}

// FromProject converts a domain project to its API representation.
func FromProject(p *project.Project) *Project {
	if p == nil {
		return nil
	}
	dto := &Project{
		ID:    p.ID,
		Title: p.Title,
		Stems: make([]Stem, 0, len(p.Stems)),
	}
	for _, stem := range p.Stems {
		dto.Stems = append(dto.Stems, FromStem(stem))
	}
	if !p.CreatedAt.IsZero() {
		dto.CreatedAt = p.CreatedAt.UTC().Format(dateTimeFormat)
	}
	if !p.UpdatedAt.IsZero() {
		dto.UpdatedAt = p.UpdatedAt.UTC().Format(dateTimeFormat)
	}
	return dto
}

// FromStatus converts a workflow status snapshot to API payload.
func FromStatus(status workflow.Status) StudioStatus {
	return StudioStatus{
		State:     string(status.State),
		Credits:   status.Balance,
		Project:   FromProject(status.Project),
		LastError: status.LastError,
	}
}

// FromPackage converts a credit package to its API representation.
func FromPackage(pkg ledger.Package) CreditPackage {
	return CreditPackage{
		ID:         pkg.ID,
		Credits:    pkg.Credits,
		Bonus:      pkg.Bonus,
		Total:      pkg.Total(),
		PriceCents: pkg.PriceCents,
		Popular:    pkg.Popular,
	}
}

// FromPackages converts the package catalog into API DTOs.
func FromPackages(pkgs []ledger.Package) []CreditPackage {
	if len(pkgs) == 0 {
		return nil
	}
	out := make([]CreditPackage, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, FromPackage(pkg))
	}
	return out
}

// FromReceipt converts a settled purchase receipt to API payload.
func FromReceipt(receipt payments.Receipt) PurchaseReceipt {
	return PurchaseReceipt{
		Package:        FromPackage(receipt.Package),
		CreditsGranted: receipt.CreditsGranted,
		NewBalance:     receipt.NewBalance,
		SettledAt:      FormatTime(receipt.SettledAt),
	}
}

// FormatTime converts a time to RFC3339 or returns empty string.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}

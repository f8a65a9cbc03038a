package ledger

import "errors"

// ErrUnknownPackage is returned when a purchase references no known package.
var ErrUnknownPackage = errors.New("unknown credit package")

// Package describes a purchasable credit bundle.
type Package struct {
	ID         string
	Credits    int
	Bonus      int
	PriceCents int
	Popular    bool
}

// Total returns the credits granted by the package including bonus credits.
func (p Package) Total() int {
	return p.Credits + p.Bonus
}

var catalog = []Package{
	{ID: "1", Credits: 1, PriceCents: 50},
	{ID: "12", Credits: 12, Bonus: 2, PriceCents: 500, Popular: true},
	{ID: "30", Credits: 30, Bonus: 8, PriceCents: 1000},
}

// Packages returns the purchasable credit bundles in display order.
func Packages() []Package {
	cp := make([]Package, len(catalog))
	copy(cp, catalog)
	return cp
}

// PackageByID looks up a credit package by its identifier.
func PackageByID(id string) (Package, error) {
	for _, pkg := range catalog {
		if pkg.ID == id {
			return pkg, nil
		}
	}
	return Package{}, ErrUnknownPackage
}

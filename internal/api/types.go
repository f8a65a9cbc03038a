package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Stem describes a single separated stem in a transport-friendly format.
type Stem struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	AudioSource string  `json:"audioSource"`
	Volume      int     `json:"volume"`
	Pan         int     `json:"pan"`
	Key         string  `json:"key"`
	Tempo       float64 `json:"tempo"`
}

// Project describes the active project and its stems.
type Project struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Stems     []Stem `json:"stems"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// StudioStatus aggregates workflow state for API consumers.
type StudioStatus struct {
	State     string   `json:"state"`
	Credits   int      `json:"credits"`
	Project   *Project `json:"project,omitempty"`
	LastError string   `json:"lastError,omitempty"`
}

// CreditPackage describes a purchasable credit bundle.
type CreditPackage struct {
	ID         string `json:"id"`
	Credits    int    `json:"credits"`
	Bonus      int    `json:"bonus,omitempty"`
	Total      int    `json:"total"`
	PriceCents int    `json:"priceCents"`
	Popular    bool   `json:"popular,omitempty"`
}

// PurchaseReceipt reports the outcome of a settled credit purchase.
type PurchaseReceipt struct {
	Package        CreditPackage `json:"package"`
	CreditsGranted int           `json:"creditsGranted"`
	NewBalance     int           `json:"newBalance"`
	SettledAt      string        `json:"settledAt"`
}

// ExportResult reports the file produced by a mix export.
type ExportResult struct {
	Path string `json:"path"`
}

// ShareResult carries the shareable link for the active project.
type ShareResult struct {
	URL string `json:"url"`
}

// Error is the wire shape for failed requests.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

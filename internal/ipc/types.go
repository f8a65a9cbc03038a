package ipc

import "stemsync/internal/api"

// Project mirrors the HTTP API project DTO for IPC callers.
type Project = api.Project

// CreditPackage mirrors the HTTP API package DTO for IPC callers.
type CreditPackage = api.CreditPackage

// PurchaseReceipt mirrors the HTTP API receipt DTO for IPC callers.
type PurchaseReceipt = api.PurchaseReceipt

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse represents combined daemon/workflow status information.
type StatusResponse struct {
	Running    bool       `json:"running"`
	State      string     `json:"state"`
	Credits    int        `json:"credits"`
	Project    *Project   `json:"project,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
	LockPath   string     `json:"lock_path"`
	APIAddress string     `json:"api_address,omitempty"`
	Err        *api.Error `json:"error,omitempty"`
}

// UploadRequest submits an audio file for separation.
type UploadRequest struct {
	Path string `json:"path"`
}

// UploadResponse carries the project created from a successful separation.
type UploadResponse struct {
	Project *Project   `json:"project,omitempty"`
	Err     *api.Error `json:"error,omitempty"`
}

// PackagesRequest fetches the purchasable credit package catalog.
type PackagesRequest struct{}

// PackagesResponse lists the credit package catalog.
type PackagesResponse struct {
	Packages []CreditPackage `json:"packages"`
}

// PurchaseRequest settles a credit package purchase.
type PurchaseRequest struct {
	PackageID string `json:"package_id"`
}

// PurchaseResponse carries the purchase receipt.
type PurchaseResponse struct {
	Receipt *PurchaseReceipt `json:"receipt,omitempty"`
	Err     *api.Error       `json:"error,omitempty"`
}

// UpdateStemRequest adjusts mix parameters on one stem. Nil fields are
// left unchanged.
type UpdateStemRequest struct {
	StemID string `json:"stem_id"`
	Volume *int   `json:"volume,omitempty"`
	Pan    *int   `json:"pan,omitempty"`
}

// RenameRequest retitles the active project.
type RenameRequest struct {
	Title string `json:"title"`
}

// SaveRequest persists the active project mix state.
type SaveRequest struct{}

// ExportRequest renders the active project mix to a file.
type ExportRequest struct{}

// ExportResponse reports the rendered output path.
type ExportResponse struct {
	Path string     `json:"path,omitempty"`
	Err  *api.Error `json:"error,omitempty"`
}

// ShareRequest fetches a shareable link for the active project.
type ShareRequest struct{}

// ShareResponse carries the shareable project link.
type ShareResponse struct {
	URL string     `json:"url,omitempty"`
	Err *api.Error `json:"error,omitempty"`
}

// ResetRequest discards the active project.
type ResetRequest struct{}

// ResetResponse reports reset outcome.
type ResetResponse struct {
	Err *api.Error `json:"error,omitempty"`
}

// ProjectResponse carries the project after a mix mutation.
type ProjectResponse struct {
	Project *Project   `json:"project,omitempty"`
	Err     *api.Error `json:"error,omitempty"`
}

// LogTailRequest fetches log lines based on offset and follow semantics.
// A negative offset requests the last Limit lines.
type LogTailRequest struct {
	Offset     int64 `json:"offset"`
	Limit      int   `json:"limit"`
	Follow     bool  `json:"follow"`
	WaitMillis int   `json:"wait_millis"`
}

// LogTailResponse returns log lines and the next offset.
type LogTailResponse struct {
	Lines  []string `json:"lines"`
	Offset int64    `json:"offset"`
}

// StopRequest shuts the daemon down.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearBebidaRequest carries the POST /menu body. Binding tags only check
// presence; range and enum rules run as ordered checks in the service so the
// first violated rule is the one reported.
type CrearBebidaRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Size  string  `json:"size"  validate:"required"`
	Price float64 `json:"price" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BebidaResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// SeedResponse is returned by POST /menu/seed.
type SeedResponse struct {
	Message      string `json:"message"`
	TotalBebidas int64  `json:"total_bebidas"`
}

// RootResponse is the GET / info payload.
type RootResponse struct {
	Message  string `json:"message"`
	Version  string `json:"version"`
	Status   string `json:"status"`
	Database string `json:"database"`
}

package models

// Vehicle carries the subset of fleet data billing cares about. Rates are
// nullable in the DB; nil or non-positive values fall back to engine defaults.
type Vehicle struct {
	ID           uint64   `json:"id"`
	Registration string   `json:"registration"`
	Make         string   `json:"make,omitempty"`
	Model        string   `json:"model,omitempty"`
	DailyRate    *float64 `json:"dailyRate,omitempty"`
	WeeklyRate   *float64 `json:"weeklyRate,omitempty"`
	Status       string   `json:"status,omitempty"`
}

// VehiclePayload is the create/update body for vehicles.
type VehiclePayload struct {
	Registration string   `json:"registration" binding:"required"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	DailyRate    *float64 `json:"dailyRate"`
	WeeklyRate   *float64 `json:"weeklyRate"`
	Status       string   `json:"status"`
}

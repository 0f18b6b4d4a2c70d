package dto

// HealthResponse reports service and database availability.
type HealthResponse struct {
	Status string `json:"status"`
}

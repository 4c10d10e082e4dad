package common

// ListResponse wraps a list with its length
type ListResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
}

// HealthResponse reports liveness of the service and its backing stores
type HealthResponse struct {
	Status      string            `json:"status"`
	Environment string            `json:"environment"`
	Checks      map[string]string `json:"checks,omitempty"`
}

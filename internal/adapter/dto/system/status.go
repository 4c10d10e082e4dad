package system

// StatusResponse reports connectivity of the owner's integrations
type StatusResponse struct {
	LLMConnected      bool   `json:"llm_connected"`
	SMTPConnected     bool   `json:"smtp_connected"`
	DatabaseConnected bool   `json:"database_connected"`
	LLMError          string `json:"llm_error,omitempty"`
	SMTPError         string `json:"smtp_error,omitempty"`
	DatabaseError     string `json:"database_error,omitempty"`
	Message           string `json:"message"`
}

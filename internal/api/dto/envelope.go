package dto

// Envelope wraps every successful response.
type Envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Message string    `json:"message,omitempty"`
	Meta    *PageMeta `json:"meta,omitempty"`
}

// ErrorEnvelope wraps every failed response. Details maps a field to its messages.
type ErrorEnvelope struct {
	Success    bool                `json:"success"`
	Error      string              `json:"error"`
	Message    string              `json:"message"`
	StatusCode int                 `json:"statusCode"`
	Details    map[string][]string `json:"details,omitempty"`
}

// PageMeta describes a paginated list.
type PageMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

package dto

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject       string `json:"subject"`
	Description   string `json:"description"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateResponseRequest payload.
type CreateResponseRequest struct {
	Message string `json:"message"`
}

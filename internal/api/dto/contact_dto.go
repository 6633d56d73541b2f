package dto

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

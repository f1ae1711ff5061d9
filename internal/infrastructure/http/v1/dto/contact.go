package dto

import "gestobra/internal/domain/contact"

// ContactRequest is the public contact form. Validation happens in the domain
// so field errors come back in one response.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ToMessage converts DTO to a contact message.
func (r *ContactRequest) ToMessage() contact.Message {
	return contact.Message{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

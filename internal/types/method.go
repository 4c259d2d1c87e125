package types

import "github.com/go-playground/validator/v10"

// CommunicationMethod represents a named outreach channel in the admin
// catalog. Sequence is a dense 1..N ranking equal to 1+index in display
// order; the catalog renumbers on every add, delete, and reorder.
type CommunicationMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Sequence    int    `json:"sequence"`
	Mandatory   bool   `json:"mandatory"`
}

// DefaultMethods returns the catalog seeded at startup.
func DefaultMethods() []CommunicationMethod {
	return []CommunicationMethod{
		{ID: "linkedin-post", Name: "LinkedIn Post", Description: "Share content on LinkedIn company page", Sequence: 1, Mandatory: true},
		{ID: "linkedin-message", Name: "LinkedIn Message", Description: "Direct message on LinkedIn", Sequence: 2, Mandatory: true},
		{ID: "email", Name: "Email", Description: "Email communication", Sequence: 3, Mandatory: true},
		{ID: "phone-call", Name: "Phone Call", Description: "Direct phone communication", Sequence: 4, Mandatory: false},
		{ID: "other", Name: "Other", Description: "Other forms of communication", Sequence: 5, Mandatory: false},
	}
}

// MethodRequest represents the request to add or update a communication method.
type MethodRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description,omitempty"`
	Mandatory   bool   `json:"mandatory"`
}

// Validate validates the MethodRequest using the validator.
func (r *MethodRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

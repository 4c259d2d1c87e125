// Package types provides type definitions for structured data used throughout the outreach-tracker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultPeriodicityDays is the follow-up interval applied when a company
// does not specify one.
const DefaultPeriodicityDays = 14

// Company represents an organization being tracked for recurring outreach.
// Communications are ordered most-recent-first by insertion: a newly logged
// entry always becomes Communications[0] regardless of its date value.
type Company struct {
	ID                          uuid.UUID       `json:"id"`
	Name                        string          `json:"name"`
	Location                    string          `json:"location,omitempty"`
	LinkedInProfile             string          `json:"linkedin_profile,omitempty"`
	Emails                      []string        `json:"emails,omitempty"`
	PhoneNumbers                []string        `json:"phone_numbers,omitempty"`
	Comments                    string          `json:"comments,omitempty"`
	CommunicationPeriodicityDays int            `json:"communication_periodicity_days"`
	Communications              []Communication `json:"communications"`
}

// LastCommunication returns the most recently inserted communication, or nil
// if the company has no history.
func (c *Company) LastCommunication() *Communication {
	if len(c.Communications) == 0 {
		return nil
	}
	return &c.Communications[0]
}

// Communication represents a single logged outreach to a company.
// Immutable once logged.
type Communication struct {
	ID    uuid.UUID `json:"id"`
	Type  string    `json:"type"`
	Date  time.Time `json:"date"`
	Notes string    `json:"notes,omitempty"`
}

// CreateCompanyRequest represents the request to register a new company.
type CreateCompanyRequest struct {
	Name                         string   `json:"name" validate:"required,min=2"`
	Location                     string   `json:"location,omitempty"`
	LinkedInProfile              string   `json:"linkedin_profile,omitempty"`
	Emails                       []string `json:"emails" validate:"required,min=1,dive,email"`
	PhoneNumbers                 []string `json:"phone_numbers,omitempty" validate:"omitempty,dive,min=7"`
	Comments                     string   `json:"comments,omitempty"`
	CommunicationPeriodicityDays int      `json:"communication_periodicity_days,omitempty" validate:"omitempty,min=1"`
}

// UpdateCompanyRequest represents the request to edit an existing company.
// Communications cannot be edited through this path; they are appended only
// via the log-communication operation.
type UpdateCompanyRequest struct {
	Name                         string   `json:"name" validate:"required,min=2"`
	Location                     string   `json:"location,omitempty"`
	LinkedInProfile              string   `json:"linkedin_profile,omitempty"`
	Emails                       []string `json:"emails" validate:"required,min=1,dive,email"`
	PhoneNumbers                 []string `json:"phone_numbers,omitempty" validate:"omitempty,dive,min=7"`
	Comments                     string   `json:"comments,omitempty"`
	CommunicationPeriodicityDays int      `json:"communication_periodicity_days,omitempty" validate:"omitempty,min=1"`
}

// LogCommunicationRequest represents the request to log a communication
// against one company. Date is a calendar date in YYYY-MM-DD form; time of
// day is never significant.
type LogCommunicationRequest struct {
	Type  string `json:"type" validate:"required,min=1"`
	Date  string `json:"date" validate:"required"`
	Notes string `json:"notes,omitempty"`
}

// Validate validates the CreateCompanyRequest using the validator.
func (r *CreateCompanyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateCompanyRequest using the validator.
func (r *UpdateCompanyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LogCommunicationRequest using the validator.
func (r *LogCommunicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

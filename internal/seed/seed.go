// Package seed loads company and method seed data from a JSON file into a
// store. Seed files are validated against schemas/seed.schema.json before
// anything is applied, so a bad file never leaves the store half-populated.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/outreach-tracker/internal/schemas"
	"github.com/jonathan/outreach-tracker/internal/store"
	"github.com/jonathan/outreach-tracker/internal/types"
)

// schemaRelPath locates the seed schema relative to the repo root.
var schemaRelPath = filepath.Join("schemas", "seed.schema.json")

// File is the top-level shape of a seed file. Communications are listed
// most-recent-first, matching the store's in-memory ordering.
type File struct {
	Companies []Company `json:"companies"`
	Methods   []Method  `json:"methods,omitempty"`
}

// Company is one seeded company record.
type Company struct {
	Name                         string          `json:"name"`
	Location                     string          `json:"location,omitempty"`
	LinkedInProfile              string          `json:"linkedin_profile,omitempty"`
	Emails                       []string        `json:"emails"`
	PhoneNumbers                 []string        `json:"phone_numbers,omitempty"`
	Comments                     string          `json:"comments,omitempty"`
	CommunicationPeriodicityDays int             `json:"communication_periodicity_days,omitempty"`
	Communications               []Communication `json:"communications,omitempty"`
}

// Communication is one seeded history entry.
type Communication struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Notes string `json:"notes,omitempty"`
}

// Method is one additional catalog entry appended after the defaults.
type Method struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Mandatory   bool   `json:"mandatory,omitempty"`
}

// Load reads and schema-validates a seed file.
func Load(path string) (*File, error) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil, fmt.Errorf("seed schema not found: %s", schemaRelPath)
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// Populate applies a seed file to a store. Communications are replayed
// oldest-first so the file's most-recent-first listing matches the store's
// insertion order when done.
func Populate(s *store.Store, f *File) error {
	for _, m := range f.Methods {
		if _, err := s.AddMethod(types.MethodRequest{
			Name:        m.Name,
			Description: m.Description,
			Mandatory:   m.Mandatory,
		}); err != nil {
			return fmt.Errorf("seed method %q: %w", m.Name, err)
		}
	}

	for _, c := range f.Companies {
		company, err := s.AddCompany(types.CreateCompanyRequest{
			Name:                         c.Name,
			Location:                     c.Location,
			LinkedInProfile:              c.LinkedInProfile,
			Emails:                       c.Emails,
			PhoneNumbers:                 c.PhoneNumbers,
			Comments:                     c.Comments,
			CommunicationPeriodicityDays: c.CommunicationPeriodicityDays,
		})
		if err != nil {
			return fmt.Errorf("seed company %q: %w", c.Name, err)
		}

		for i := len(c.Communications) - 1; i >= 0; i-- {
			comm := c.Communications[i]
			if _, err := s.LogCommunication(company.ID, types.LogCommunicationRequest{
				Type:  comm.Type,
				Date:  comm.Date,
				Notes: comm.Notes,
			}); err != nil {
				return fmt.Errorf("seed communication for %q: %w", c.Name, err)
			}
		}
	}

	return nil
}

// LoadInto is the common path: load a seed file and populate the store.
func LoadInto(s *store.Store, path string) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	return Populate(s, f)
}

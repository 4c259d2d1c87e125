package store

import (
	"github.com/google/uuid"

	"github.com/jonathan/outreach-tracker/internal/schedule"
	"github.com/jonathan/outreach-tracker/internal/types"
)

// AddCompany registers a new company. The periodicity defaults to
// types.DefaultPeriodicityDays when unset; an explicit value below one day
// is rejected before anything is written.
func (s *Store) AddCompany(req types.CreateCompanyRequest) (*types.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	periodicity := req.CommunicationPeriodicityDays
	if periodicity == 0 {
		periodicity = types.DefaultPeriodicityDays
	}
	if periodicity < 1 {
		return nil, &schedule.ErrInvalidPeriodicity{Days: periodicity}
	}

	company := types.Company{
		ID:                           uuid.New(),
		Name:                         req.Name,
		Location:                     req.Location,
		LinkedInProfile:              req.LinkedInProfile,
		Emails:                       req.Emails,
		PhoneNumbers:                 req.PhoneNumbers,
		Comments:                     req.Comments,
		CommunicationPeriodicityDays: periodicity,
		Communications:               []types.Communication{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.companies = append(s.companies, company)
	if err := s.recompute(); err != nil {
		s.companies = s.companies[:len(s.companies)-1]
		return nil, err
	}

	s.log.Info().Str("company_id", company.ID.String()).Str("name", company.Name).Msg("company added")
	return &company, nil
}

// EditCompany replaces a company's profile fields. The communication history
// is untouched; it only grows through LogCommunication.
func (s *Store) EditCompany(id uuid.UUID, req types.UpdateCompanyRequest) (*types.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	periodicity := req.CommunicationPeriodicityDays
	if periodicity == 0 {
		periodicity = types.DefaultPeriodicityDays
	}
	if periodicity < 1 {
		return nil, &schedule.ErrInvalidPeriodicity{Days: periodicity}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	company := s.findCompany(id)
	if company == nil {
		return nil, &ErrUnknownCompany{ID: id}
	}

	company.Name = req.Name
	company.Location = req.Location
	company.LinkedInProfile = req.LinkedInProfile
	company.Emails = req.Emails
	company.PhoneNumbers = req.PhoneNumbers
	company.Comments = req.Comments
	company.CommunicationPeriodicityDays = periodicity

	if err := s.recompute(); err != nil {
		return nil, err
	}

	updated := *company
	return &updated, nil
}

// DeleteCompany removes a company and its highlight setting.
func (s *Store) DeleteCompany(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.companies {
		if s.companies[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &ErrUnknownCompany{ID: id}
	}

	s.companies = append(s.companies[:idx], s.companies[idx+1:]...)
	delete(s.highlights, id)

	if err := s.recompute(); err != nil {
		return err
	}

	s.log.Info().Str("company_id", id.String()).Msg("company deleted")
	return nil
}

// GetCompany returns a copy of one company.
func (s *Store) GetCompany(id uuid.UUID) (*types.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	company := s.findCompany(id)
	if company == nil {
		return nil, &ErrUnknownCompany{ID: id}
	}
	out := *company
	return &out, nil
}

// ListCompanies returns a copy of the raw company list.
func (s *Store) ListCompanies() []types.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Company, len(s.companies))
	copy(out, s.companies)
	return out
}

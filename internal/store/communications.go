package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/outreach-tracker/internal/schedule"
	"github.com/jonathan/outreach-tracker/internal/types"
)

// dateLayout is the calendar-date wire format for logged communications.
const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &ErrMalformedDate{Value: value, Cause: err}
	}
	return schedule.Midnight(parsed), nil
}

// LogCommunication appends one communication to a company's history and
// recomputes all derived views before returning. The entry is prepended:
// insertion order defines recency, so a backdated date still lands at
// Communications[0] and can move the next due date backwards.
func (s *Store) LogCommunication(companyID uuid.UUID, req types.LogCommunicationRequest) (*types.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	company := s.findCompany(companyID)
	if company == nil {
		return nil, &ErrUnknownCompany{ID: companyID}
	}

	s.prepend(company, req, date)

	if err := s.recompute(); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("company_id", companyID.String()).
		Str("type", req.Type).
		Str("date", req.Date).
		Msg("communication logged")

	updated := *company
	return &updated, nil
}

// LogCommunicationBatch logs the same communication payload against several
// companies in one action. Every target must exist before anything is
// written, and the derived views are recomputed once after the full batch,
// not after each write. Each company's entry gets its own ID.
func (s *Store) LogCommunicationBatch(companyIDs []uuid.UUID, req types.LogCommunicationRequest) ([]*types.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targets := make([]*types.Company, 0, len(companyIDs))
	for _, id := range companyIDs {
		company := s.findCompany(id)
		if company == nil {
			return nil, &ErrUnknownCompany{ID: id}
		}
		targets = append(targets, company)
	}

	for _, company := range targets {
		s.prepend(company, req, date)
	}

	if err := s.recompute(); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("companies", len(targets)).
		Str("type", req.Type).
		Str("date", req.Date).
		Msg("communication logged to batch")

	updated := make([]*types.Company, len(targets))
	for i, company := range targets {
		c := *company
		updated[i] = &c
	}
	return updated, nil
}

// prepend inserts a fresh communication at the front of the company's
// history. Must be called with the write lock held.
func (s *Store) prepend(company *types.Company, req types.LogCommunicationRequest, date time.Time) {
	comm := types.Communication{
		ID:    uuid.New(),
		Type:  req.Type,
		Date:  date,
		Notes: req.Notes,
	}
	company.Communications = append([]types.Communication{comm}, company.Communications...)
}

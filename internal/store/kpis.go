package store

import "github.com/ScottySprrw/Fit-tracker/internal/domain"

// AddKPIMeasurement constructs a measurement from the partial input and
// appends it. The referenced client must exist.
func (s *Store) AddKPIMeasurement(in domain.KPIMeasurementInput) (domain.KPIMeasurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ClientID != 0 && !s.clientExistsLocked(in.ClientID) {
		return domain.KPIMeasurement{}, ErrClientNotFound
	}

	m := domain.NewKPIMeasurement(in)
	s.kpiMeasurements = append(s.kpiMeasurements, m)
	s.persist()
	return m, nil
}

// UpdateKPIMeasurement merges the patch into the matching measurement.
func (s *Store) UpdateKPIMeasurement(id int64, patch domain.KPIMeasurementPatch) (domain.KPIMeasurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.kpiMeasurements {
		if s.kpiMeasurements[i].ID != id {
			continue
		}
		updated := s.kpiMeasurements[i]
		updated.Apply(patch)
		s.kpiMeasurements[i] = updated
		s.persist()
		return updated, nil
	}
	return domain.KPIMeasurement{}, ErrNotFound
}

// DeleteKPIMeasurement removes the measurement with the given ID.
func (s *Store) DeleteKPIMeasurement(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.kpiMeasurements {
		if s.kpiMeasurements[i].ID == id {
			s.kpiMeasurements = append(s.kpiMeasurements[:i:i], s.kpiMeasurements[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// GetKPIMeasurementsByClient returns all measurements for the client.
func (s *Store) GetKPIMeasurementsByClient(clientID int64) []domain.KPIMeasurement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.KPIMeasurement{}
	for _, m := range s.kpiMeasurements {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	return out
}

// GetKPIMeasurementsByType returns the client's measurements of one KPI
// type.
func (s *Store) GetKPIMeasurementsByType(clientID int64, kpiType domain.KPIType) []domain.KPIMeasurement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.KPIMeasurement{}
	for _, m := range s.kpiMeasurements {
		if m.ClientID == clientID && m.KPIType == kpiType {
			out = append(out, m)
		}
	}
	return out
}

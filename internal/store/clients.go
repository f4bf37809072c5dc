package store

import "github.com/ScottySprrw/Fit-tracker/internal/domain"

// AddClient constructs a client from the partial input, appends it and
// returns the stored record.
func (s *Store) AddClient(in domain.ClientInput) domain.Client {
	client := domain.NewClient(in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, client)
	s.persist()
	return client.Clone()
}

// UpdateClient merges the patch into the matching client and refreshes
// its updatedAt. Returns ErrNotFound when the ID is unknown.
func (s *Store) UpdateClient(id int64, patch domain.ClientPatch) (domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		updated := s.clients[i].Clone()
		updated.Apply(patch)
		s.clients[i] = updated
		s.persist()
		return updated.Clone(), nil
	}
	return domain.Client{}, ErrNotFound
}

// DeleteClient removes the client and cascades: every workout log and KPI
// measurement referencing it goes too.
func (s *Store) DeleteClient(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	clients := s.clients[:0:0]
	for _, c := range s.clients {
		if c.ID == id {
			found = true
			continue
		}
		clients = append(clients, c)
	}
	if !found {
		return ErrNotFound
	}
	s.clients = clients

	workouts := s.workoutLogs[:0:0]
	for _, w := range s.workoutLogs {
		if w.ClientID != id {
			workouts = append(workouts, w)
		}
	}
	s.workoutLogs = workouts

	kpis := s.kpiMeasurements[:0:0]
	for _, m := range s.kpiMeasurements {
		if m.ClientID != id {
			kpis = append(kpis, m)
		}
	}
	s.kpiMeasurements = kpis

	s.persist()
	return nil
}

// GetClientByID returns the client, or false when the ID is unknown.
func (s *Store) GetClientByID(id int64) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return domain.Client{}, false
}

// GetClients returns all clients in insertion order.
func (s *Store) GetClients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Client, len(s.clients))
	for i, c := range s.clients {
		out[i] = c.Clone()
	}
	return out
}

// SetSelectedTags records the active tag filter. This is session state:
// it shapes GetFilteredClients but is not part of exports.
func (s *Store) SetSelectedTags(tags []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTags = append([]string{}, tags...)
	s.persist()
}

// SelectedTags returns the active tag filter.
func (s *Store) SelectedTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.selectedTags...)
}

// GetFilteredClients returns every client when the filter is empty, else
// the clients whose tags intersect the selection. Matching any selected
// tag is enough.
func (s *Store) GetFilteredClients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.selectedTags) == 0 {
		out := make([]domain.Client, len(s.clients))
		for i, c := range s.clients {
			out[i] = c.Clone()
		}
		return out
	}
	out := []domain.Client{}
	for _, c := range s.clients {
		if c.HasAnyTag(s.selectedTags) {
			out = append(out, c.Clone())
		}
	}
	return out
}

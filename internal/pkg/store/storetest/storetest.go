// Package storetest provides an in-memory store.Store for handler and service tests.
package storetest

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/ougirez/elections/internal/domain"
	"github.com/ougirez/elections/internal/pkg/constants"
	"github.com/ougirez/elections/internal/pkg/store"
)

type Store struct {
	mu        sync.Mutex
	countries map[domain.Year]domain.Country
	entities  []domain.Entity
	calls     []string

	// Err, when set, is returned by every query.
	Err error
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{countries: make(map[domain.Year]domain.Country)}
}

func (s *Store) AddCountry(c domain.Country) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries[c.Year] = c
}

func (s *Store) Add(entities ...domain.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities = append(s.entities, entities...)
}

// Calls lists the store methods invoked so far, in order.
func (s *Store) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *Store) record(call string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	return s.Err
}

func (s *Store) Ping(context.Context) error {
	return s.record("Ping")
}

func (s *Store) GetCountry(_ context.Context, year domain.Year) (*domain.Country, error) {
	if err := s.record("GetCountry"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.countries[year]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return &c, nil
}

func (s *Store) GetArea(_ context.Context, area domain.Area, year domain.Year, id string) (domain.Entity, error) {
	if err := s.record("GetArea"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entities {
		if e.Kind() == area && e.YearOf() == year && e.NaturalID() == id {
			return e, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (s *Store) CountAreas(_ context.Context, opts store.ListAreasOpts) (int, error) {
	if err := s.record("CountAreas"); err != nil {
		return 0, err
	}

	return len(s.match(opts)), nil
}

func (s *Store) ListAreas(_ context.Context, opts store.ListAreasOpts) ([]domain.Entity, error) {
	if err := s.record("ListAreas"); err != nil {
		return nil, err
	}

	matched := s.match(opts)
	sort.SliceStable(matched, func(i, j int) bool {
		return less(opts.Area, matched[i].NaturalID(), matched[j].NaturalID())
	})

	if opts.Offset != nil {
		if *opts.Offset >= uint64(len(matched)) {
			return nil, nil
		}
		matched = matched[*opts.Offset:]
	}
	if opts.Limit != nil && *opts.Limit < uint64(len(matched)) {
		matched = matched[:*opts.Limit]
	}
	return matched, nil
}

func (s *Store) match(opts store.ListAreasOpts) []domain.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.Entity
	for _, e := range s.entities {
		if e.Kind() != opts.Area || e.YearOf() != opts.Year {
			continue
		}
		if opts.Parent != nil {
			pk := parentPK(e, opts.Parent.Area)
			if pk == nil || *pk != opts.Parent.PK {
				continue
			}
		}
		matched = append(matched, e)
	}
	return matched
}

func less(area domain.Area, a, b string) bool {
	if area.NumericID() {
		x, _ := strconv.ParseInt(a, 10, 64)
		y, _ := strconv.ParseInt(b, 10, 64)
		return x < y
	}
	return a < b
}

func parentPK(e domain.Entity, parent domain.Area) *int64 {
	switch v := e.(type) {
	case domain.Municipality:
		if parent == domain.AreaProvince {
			return v.ProvincePK
		}
	case domain.Ward:
		switch parent {
		case domain.AreaProvince:
			return v.ProvincePK
		case domain.AreaMunicipality:
			return v.MunicipalityPK
		}
	case domain.VotingDistrict:
		switch parent {
		case domain.AreaProvince:
			return v.ProvincePK
		case domain.AreaMunicipality:
			return v.MunicipalityPK
		case domain.AreaWard:
			return v.WardPK
		}
	}
	return nil
}

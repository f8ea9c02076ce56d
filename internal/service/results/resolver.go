package results

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ougirez/elections/internal/domain"
	"github.com/ougirez/elections/internal/pkg/constants"
	"github.com/ougirez/elections/internal/pkg/logger"
	"github.com/ougirez/elections/internal/pkg/store"
)

// AreaQuery is an unvalidated request for results by area.
type AreaQuery struct {
	EventType string
	Year      string
	Area      string
	// AreaID selects a single entity; empty means the whole collection.
	AreaID string
	Query  url.Values

	// BaseURL and Path locate the request for the next page link.
	BaseURL string
	Path    string
}

// AreaResults holds either a single Record or a Page.
type AreaResults struct {
	Record domain.Record
	Page   *domain.Page
}

// Filter narrows a listing to the descendants of one ancestor.
type Filter struct {
	Area domain.Area
	ID   string
}

// SelectFilter picks the filter from the query string. Areas are scanned finest
// first and only the first one present is honored; it must be strictly coarser
// than area.
func SelectFilter(area domain.Area, q url.Values) (*Filter, error) {
	for i := len(domain.Areas) - 1; i >= 0; i-- {
		candidate := domain.Areas[i]
		id := q.Get(candidate.String())
		if id == "" {
			continue
		}

		if !area.CanFilterBy(candidate) {
			return nil, filterError(area)
		}
		return &Filter{Area: candidate, ID: id}, nil
	}

	return nil, nil
}

func filterError(area domain.Area) error {
	parents := area.Parents()
	if len(parents) == 0 {
		return constants.NewClientError(fmt.Sprintf("Incorrect filter specified. %s cannot be filtered.", area))
	}
	return constants.NewClientError(fmt.Sprintf("Incorrect filter specified. %s can only be filtered by: %s.",
		area, strings.Join(areaNames(parents), ", ")))
}

func (s *Service) ResultsByArea(ctx context.Context, q AreaQuery) (*AreaResults, error) {
	eventType, err := ValidateEventType(q.EventType)
	if err != nil {
		return nil, err
	}
	year, err := ValidateYear(q.Year)
	if err != nil {
		return nil, err
	}
	area, err := ValidateArea(q.Area)
	if err != nil {
		return nil, err
	}
	filter, err := SelectFilter(area, q.Query)
	if err != nil {
		return nil, err
	}
	paging, err := ParsePaging(q.Query)
	if err != nil {
		return nil, err
	}

	if q.AreaID != "" {
		record, err := s.getArea(ctx, eventType, year, area, q.AreaID)
		if err != nil {
			return nil, err
		}
		return &AreaResults{Record: record}, nil
	}

	opts := store.ListAreasOpts{Area: area, Year: year}
	if filter != nil {
		parent, err := s.store.GetArea(ctx, filter.Area, year, filter.ID)
		if err != nil {
			if constants.IsNotFound(err) {
				return nil, constants.NewNotFoundError(fmt.Sprintf("No %s with id %s found for %d.", filter.Area, filter.ID, year))
			}
			return nil, fmt.Errorf("store.GetArea: %w", err)
		}
		opts.Parent = &store.ParentRef{Area: filter.Area, PK: parent.Key()}
	}

	page, err := s.listAreas(ctx, eventType, opts, paging, q)
	if err != nil {
		return nil, err
	}
	return &AreaResults{Page: page}, nil
}

func (s *Service) getArea(ctx context.Context, eventType domain.EventType, year domain.Year, area domain.Area, id string) (domain.Record, error) {
	entity, err := s.store.GetArea(ctx, area, year, id)
	if err != nil {
		if constants.IsNotFound(err) {
			return nil, constants.NewNotFoundError(fmt.Sprintf("No %s with id %s found for %d.", area, id, year))
		}
		return nil, fmt.Errorf("store.GetArea: %w", err)
	}

	return SerializeArea(entity, eventType), nil
}

func (s *Service) listAreas(
	ctx context.Context,
	eventType domain.EventType,
	opts store.ListAreasOpts,
	paging Paging,
	q AreaQuery,
) (*domain.Page, error) {
	count, err := s.store.CountAreas(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.CountAreas: %w", err)
	}

	if !paging.All {
		limit, offset := paging.Limit(), paging.Offset()
		opts.Limit, opts.Offset = &limit, &offset
	}

	entities, err := s.store.ListAreas(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.ListAreas: %w", err)
	}
	if len(entities) == 0 {
		return nil, constants.NewNotFoundError(fmt.Sprintf("No %s results found.", opts.Area))
	}

	logger.Debugf(ctx, "listed %d of %d %s rows for %d", len(entities), count, opts.Area, opts.Year)

	page := &domain.Page{
		Count:   count,
		Results: make([]domain.Record, len(entities)),
	}
	for i, e := range entities {
		page.Results[i] = SerializeArea(e, eventType)
	}
	if HasNext(count, paging) {
		next := NextURL(q.BaseURL, q.Path, q.Query, paging)
		page.Next = &next
	}

	return page, nil
}

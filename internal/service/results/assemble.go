package results

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ougirez/elections/internal/domain"
	"github.com/ougirez/elections/internal/pkg/constants"
)

// Link builds an absolute URL from base and path segments, with a trailing slash.
func Link(base string, segments ...string) string {
	base = strings.TrimRight(base, "/")
	if len(segments) == 0 {
		return base + "/"
	}
	return base + "/" + strings.Join(segments, "/") + "/"
}

// EventTypeLinks maps each event type to its index.
func (s *Service) EventTypeLinks(baseURL string) map[string]string {
	links := make(map[string]string, len(domain.EventTypes))
	for _, et := range domain.EventTypes {
		links[string(et)] = Link(baseURL, string(et))
	}
	return links
}

// YearLinks maps each supported year to its overview.
func (s *Service) YearLinks(eventType, baseURL string) (map[string]string, error) {
	et, err := ValidateEventType(eventType)
	if err != nil {
		return nil, err
	}

	links := make(map[string]string, len(domain.Years))
	for _, y := range domain.Years {
		year := strconv.Itoa(y)
		links[year] = Link(baseURL, string(et), year)
	}
	return links, nil
}

// Overview returns the national results for a year with links to every area
// listing. Wards are only linked from the year they were first collected.
func (s *Service) Overview(ctx context.Context, eventType, year, baseURL string) (domain.Record, error) {
	et, err := ValidateEventType(eventType)
	if err != nil {
		return nil, err
	}
	y, err := ValidateYear(year)
	if err != nil {
		return nil, err
	}

	country, err := s.store.GetCountry(ctx, y)
	if err != nil && !constants.IsNotFound(err) {
		return nil, fmt.Errorf("store.GetCountry: %w", err)
	}

	record := domain.Record{
		"results": SerializeCountry(country, et)["results"],
	}
	for _, area := range domain.Areas {
		if area == domain.AreaWard && y < domain.WardCutoffYear {
			continue
		}
		record[area.String()] = Link(baseURL, string(et), strconv.Itoa(y), area.String())
	}

	return record, nil
}

package results

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ougirez/elections/internal/domain"
	"github.com/ougirez/elections/internal/pkg/constants"
)

func ValidateEventType(s string) (domain.EventType, error) {
	eventType := domain.EventType(strings.ToLower(s))
	for _, et := range domain.EventTypes {
		if et == eventType {
			return et, nil
		}
	}

	names := make([]string, len(domain.EventTypes))
	for i, et := range domain.EventTypes {
		names[i] = string(et)
	}
	return "", incorrect("event_type", names)
}

// ValidateYear accepts only the years results are published for. Unparsable
// input gets the same message as an unknown year.
func ValidateYear(s string) (domain.Year, error) {
	year, err := strconv.Atoi(s)
	if err == nil {
		for _, y := range domain.Years {
			if y == year {
				return y, nil
			}
		}
	}

	names := make([]string, len(domain.Years))
	for i, y := range domain.Years {
		names[i] = strconv.Itoa(y)
	}
	return 0, incorrect("year", names)
}

func ValidateArea(s string) (domain.Area, error) {
	if area, ok := domain.ParseArea(s); ok {
		return area, nil
	}
	return 0, incorrect("area", areaNames(domain.Areas))
}

func incorrect(what string, valid []string) error {
	return constants.NewClientError(fmt.Sprintf("Incorrect %s specified. Please use one of: %s.", what, strings.Join(valid, ", ")))
}

func areaNames(areas []domain.Area) []string {
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = a.String()
	}
	return names
}

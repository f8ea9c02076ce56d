package results

import (
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/ougirez/elections/internal/domain"
)

// SerializeArea renders one area row with the results of eventType.
func SerializeArea(e domain.Entity, eventType domain.EventType) domain.Record {
	var id interface{} = e.NaturalID()
	if e.Kind().NumericID() {
		if n, err := strconv.ParseInt(e.NaturalID(), 10, 64); err == nil {
			id = n
		}
	}

	return domain.Record{
		e.Kind().IDColumn(): id,
		"year":              e.YearOf(),
		"vote_complete":     e.Complete(),
		"results":           decodeResults(e.Results(eventType)),
	}
}

// SerializeCountry renders the national row. A missing row yields null results.
func SerializeCountry(c *domain.Country, eventType domain.EventType) domain.Record {
	if c == nil {
		return domain.Record{"results": nil}
	}

	return domain.Record{
		"year":          c.Year,
		"vote_complete": c.Complete(),
		"results":       decodeResults(c.Results(eventType)),
	}
}

// decodeResults parses a stored blob as JSON, passing it through verbatim when it is not JSON.
func decodeResults(blob *string) interface{} {
	if blob == nil {
		return nil
	}

	var v interface{}
	if err := sonic.UnmarshalString(*blob, &v); err != nil {
		return *blob
	}
	return v
}

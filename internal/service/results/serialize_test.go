package results

import (
	"testing"

	"github.com/ougirez/elections/internal/domain"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSerializeArea(t *testing.T) {
	ward := domain.Ward{
		PK:     1,
		WardID: 19100001,
		Year:   2009,
		Tally: domain.Tally{
			ResultsProvincial: strPtr(`{"vote_count": 1200, "party_votes": {"ANC": 700}}`),
			ResultsNational:   strPtr("not json"),
			VoteComplete:      boolPtr(true),
		},
	}

	rec := SerializeArea(ward, domain.EventTypeProvincial)
	if rec["ward_id"] != int64(19100001) {
		t.Errorf("Expected numeric ward_id, got %#v", rec["ward_id"])
	}
	if rec["year"] != 2009 {
		t.Errorf("Expected year 2009, got %v", rec["year"])
	}
	results, ok := rec["results"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected decoded results, got %T", rec["results"])
	}
	if results["vote_count"] != float64(1200) {
		t.Errorf("Expected vote_count 1200, got %v", results["vote_count"])
	}

	rec = SerializeArea(ward, domain.EventTypeNational)
	if rec["results"] != "not json" {
		t.Errorf("Expected raw blob passthrough, got %v", rec["results"])
	}
}

func TestSerializeAreaStringID(t *testing.T) {
	p := domain.Province{PK: 2, ProvinceID: "WC", Year: 2004}

	rec := SerializeArea(p, domain.EventTypeNational)
	if rec["province_id"] != "WC" {
		t.Errorf("Expected province_id WC, got %v", rec["province_id"])
	}
	if rec["results"] != nil {
		t.Errorf("Expected nil results, got %v", rec["results"])
	}
}

func TestSerializeCountryMissing(t *testing.T) {
	rec := SerializeCountry(nil, domain.EventTypeNational)
	if v, ok := rec["results"]; !ok || v != nil {
		t.Errorf("Expected null results, got %v", rec)
	}
}

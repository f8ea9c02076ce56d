package domain

import (
	"reflect"
	"testing"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		in   string
		want Area
		ok   bool
	}{
		{"province", AreaProvince, true},
		{"Municipality", AreaMunicipality, true},
		{"WARD", AreaWard, true},
		{"voting_district", AreaVotingDistrict, true},
		{"voting-district", 0, false},
		{"country", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseArea(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseArea(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCanFilterByOnlyStrictlyCoarser(t *testing.T) {
	for i, a := range Areas {
		for j, f := range Areas {
			want := j < i
			if got := a.CanFilterBy(f); got != want {
				t.Errorf("%s.CanFilterBy(%s) = %v, want %v", a, f, got, want)
			}
		}
	}
}

func TestParents(t *testing.T) {
	tests := map[Area][]Area{
		AreaProvince:       {},
		AreaMunicipality:   {AreaProvince},
		AreaWard:           {AreaProvince, AreaMunicipality},
		AreaVotingDistrict: {AreaProvince, AreaMunicipality, AreaWard},
	}

	for area, want := range tests {
		if got := area.Parents(); !reflect.DeepEqual(got, want) {
			t.Errorf("%s.Parents() = %v, want %v", area, got, want)
		}
	}
}

func TestRegistryColumns(t *testing.T) {
	if got := AreaVotingDistrict.Table(); got != "voting_districts" {
		t.Errorf("Expected table voting_districts, got %s", got)
	}
	if got := AreaMunicipality.IDColumn(); got != "municipality_id" {
		t.Errorf("Expected municipality_id, got %s", got)
	}
	if got := AreaWard.ParentColumn(AreaMunicipality); got != "municipality_pk" {
		t.Errorf("Expected municipality_pk, got %s", got)
	}
	if AreaProvince.NumericID() || !AreaWard.NumericID() {
		t.Errorf("Expected only ward and voting_district to use numeric ids")
	}
}

func TestEntityAccessors(t *testing.T) {
	national := "{\"ANC\": 10}"
	ward := Ward{PK: 7, WardID: 19100001, Year: 2009, Tally: Tally{ResultsNational: &national}}

	var e Entity = ward
	if e.NaturalID() != "19100001" {
		t.Errorf("Expected natural id 19100001, got %s", e.NaturalID())
	}
	if e.Kind() != AreaWard {
		t.Errorf("Expected kind ward, got %s", e.Kind())
	}
	if e.Results(EventTypeNational) != &national {
		t.Errorf("Expected national results blob")
	}
	if e.Results(EventTypeProvincial) != nil {
		t.Errorf("Expected no provincial results")
	}
}

package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ougirez/elections/internal/domain"
	"github.com/ougirez/elections/internal/pkg/constants"
	"github.com/ougirez/elections/internal/pkg/store/xpgx/xpgxtest"
)

func uint64Ptr(v uint64) *uint64 { return &v }

func TestAreaColumns(t *testing.T) {
	tests := map[domain.Area][]string{
		domain.AreaProvince: {"pk", "province_id", "year",
			"results_provincial", "results_national", "vote_complete"},
		domain.AreaWard: {"pk", "ward_id", "year", "province_pk", "municipality_pk",
			"results_provincial", "results_national", "vote_complete"},
		domain.AreaVotingDistrict: {"pk", "voting_district_id", "year", "province_pk", "municipality_pk", "ward_pk",
			"results_provincial", "results_national", "vote_complete"},
	}

	for area, want := range tests {
		if got := areaColumns(area); !reflect.DeepEqual(got, want) {
			t.Errorf("areaColumns(%s) = %v, want %v", area, got, want)
		}
	}
}

func TestListAreasQuery(t *testing.T) {
	tests := []struct {
		name     string
		opts     ListAreasOpts
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "unfiltered page",
			opts:     ListAreasOpts{Area: domain.AreaProvince, Year: 2004, Limit: uint64Ptr(50), Offset: uint64Ptr(100)},
			wantSQL:  "SELECT pk, province_id, year, results_provincial, results_national, vote_complete FROM provinces WHERE year = $1 ORDER BY province_id LIMIT 50 OFFSET 100",
			wantArgs: []interface{}{2004},
		},
		{
			name: "filtered without paging",
			opts: ListAreasOpts{
				Area:   domain.AreaWard,
				Year:   2009,
				Parent: &ParentRef{Area: domain.AreaMunicipality, PK: 12},
			},
			wantSQL:  "SELECT pk, ward_id, year, province_pk, municipality_pk, results_provincial, results_national, vote_complete FROM wards WHERE municipality_pk = $1 AND year = $2 ORDER BY ward_id",
			wantArgs: []interface{}{int64(12), 2009},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := listAreasQuery(tt.opts).ToSql()
			if err != nil {
				t.Fatalf("ToSql returned error: %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("Expected SQL\n%s\ngot\n%s", tt.wantSQL, sql)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("Expected args %v, got %v", tt.wantArgs, args)
			}
		})
	}
}

func TestCountAreasQuery(t *testing.T) {
	sql, args, err := countAreasQuery(ListAreasOpts{
		Area:   domain.AreaVotingDistrict,
		Year:   1999,
		Parent: &ParentRef{Area: domain.AreaProvince, PK: 3},
	}).ToSql()
	if err != nil {
		t.Fatalf("ToSql returned error: %v", err)
	}

	want := "SELECT count(*) FROM voting_districts WHERE province_pk = $1 AND year = $2"
	if sql != want {
		t.Errorf("Expected %q, got %q", want, sql)
	}
	if !reflect.DeepEqual(args, []interface{}{int64(3), 1999}) {
		t.Errorf("Unexpected args %v", args)
	}
}

func TestGetArea(t *testing.T) {
	pool := xpgxtest.New(xpgxtest.Result{
		Columns: areaColumns(domain.AreaMunicipality),
		Rows:    [][]any{{int64(4), "CPT", 2009, int64(1), `{"ANC": 1}`, nil, true}},
	})
	s := NewStore(pool)

	entity, err := s.GetArea(context.Background(), domain.AreaMunicipality, 2009, "CPT")
	if err != nil {
		t.Fatalf("GetArea returned error: %v", err)
	}

	m, ok := entity.(domain.Municipality)
	if !ok {
		t.Fatalf("Expected domain.Municipality, got %T", entity)
	}
	if m.PK != 4 || m.MunicipalityID != "CPT" || m.ProvincePK == nil || *m.ProvincePK != 1 {
		t.Errorf("Unexpected municipality %+v", m)
	}
	if m.VoteComplete == nil || !*m.VoteComplete {
		t.Errorf("Expected vote_complete true")
	}

	calls := pool.Calls()
	if len(calls) != 1 {
		t.Fatalf("Expected 1 query, got %d", len(calls))
	}
	if !reflect.DeepEqual(calls[0].Args, []any{"CPT", 2009}) {
		t.Errorf("Unexpected args %v", calls[0].Args)
	}
}

func TestGetAreaNotFound(t *testing.T) {
	pool := xpgxtest.New(xpgxtest.Result{Columns: areaColumns(domain.AreaWard)})
	s := NewStore(pool)

	_, err := s.GetArea(context.Background(), domain.AreaWard, 2009, "1")
	if !errors.Is(err, constants.ErrDBNotFound) {
		t.Errorf("Expected ErrDBNotFound, got %v", err)
	}
}

func TestGetAreaNonNumericID(t *testing.T) {
	pool := xpgxtest.New()
	s := NewStore(pool)

	_, err := s.GetArea(context.Background(), domain.AreaVotingDistrict, 2009, "abc")
	if !errors.Is(err, constants.ErrDBNotFound) {
		t.Errorf("Expected ErrDBNotFound, got %v", err)
	}
	if len(pool.Calls()) != 0 {
		t.Errorf("Expected no query for an id the column cannot hold")
	}
}

func TestListAreas(t *testing.T) {
	pool := xpgxtest.New(xpgxtest.Result{
		Columns: areaColumns(domain.AreaWard),
		Rows: [][]any{
			{int64(1), int64(19100001), 2009, int64(9), int64(2), nil, nil, nil},
			{int64(2), int64(19100002), 2009, int64(9), int64(2), nil, nil, nil},
		},
	})
	s := NewStore(pool)

	entities, err := s.ListAreas(context.Background(), ListAreasOpts{Area: domain.AreaWard, Year: 2009})
	if err != nil {
		t.Fatalf("ListAreas returned error: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(entities))
	}
	if entities[1].NaturalID() != "19100002" {
		t.Errorf("Expected 19100002, got %s", entities[1].NaturalID())
	}
}

func TestCountAreas(t *testing.T) {
	pool := xpgxtest.New(xpgxtest.Result{Columns: []string{"count"}, Rows: [][]any{{120}}})
	s := NewStore(pool)

	n, err := s.CountAreas(context.Background(), ListAreasOpts{Area: domain.AreaProvince, Year: 1999})
	if err != nil {
		t.Fatalf("CountAreas returned error: %v", err)
	}
	if n != 120 {
		t.Errorf("Expected 120, got %d", n)
	}
}

func TestGetCountry(t *testing.T) {
	pool := xpgxtest.New(xpgxtest.Result{
		Columns: countryColumns,
		Rows:    [][]any{{int64(1), 2004, `{"ANC": 69.7}`, `{"ANC": 69.7}`, true}},
	})
	s := NewStore(pool)

	country, err := s.GetCountry(context.Background(), 2004)
	if err != nil {
		t.Fatalf("GetCountry returned error: %v", err)
	}
	if country.Year != 2004 || country.ResultsNational == nil {
		t.Errorf("Unexpected country %+v", country)
	}
}

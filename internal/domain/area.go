package domain

import (
	"strconv"
	"strings"
)

// Area is one of the geographic granularities results are published at.
// Values are ordered coarsest first; the order defines the hierarchy.
type Area int

const (
	AreaProvince Area = iota
	AreaMunicipality
	AreaWard
	AreaVotingDistrict
)

// Areas lists every area, coarsest first.
var Areas = []Area{AreaProvince, AreaMunicipality, AreaWard, AreaVotingDistrict}

func ParseArea(s string) (Area, bool) {
	switch strings.ToLower(s) {
	case "province":
		return AreaProvince, true
	case "municipality":
		return AreaMunicipality, true
	case "ward":
		return AreaWard, true
	case "voting_district":
		return AreaVotingDistrict, true
	}
	return 0, false
}

func (a Area) String() string {
	switch a {
	case AreaProvince:
		return "province"
	case AreaMunicipality:
		return "municipality"
	case AreaWard:
		return "ward"
	case AreaVotingDistrict:
		return "voting_district"
	}
	return "area(" + strconv.Itoa(int(a)) + ")"
}

func (a Area) Table() string {
	switch a {
	case AreaProvince:
		return "provinces"
	case AreaMunicipality:
		return "municipalities"
	case AreaWard:
		return "wards"
	case AreaVotingDistrict:
		return "voting_districts"
	}
	return ""
}

// IDColumn is the natural identifier column, used for lookups and listing order.
func (a Area) IDColumn() string {
	return a.String() + "_id"
}

// NumericID reports whether the natural identifier is stored as an integer.
func (a Area) NumericID() bool {
	return a == AreaWard || a == AreaVotingDistrict
}

// CanFilterBy reports whether parent may narrow a listing of a. Only strictly
// coarser areas qualify.
func (a Area) CanFilterBy(parent Area) bool {
	return parent >= AreaProvince && parent < a
}

// Parents returns the areas a listing of a may be filtered by, coarsest first.
func (a Area) Parents() []Area {
	parents := make([]Area, 0, len(Areas))
	for _, p := range Areas {
		if a.CanFilterBy(p) {
			parents = append(parents, p)
		}
	}
	return parents
}

// ParentColumn is the column on a's table referencing a row of parent.
func (a Area) ParentColumn(parent Area) string {
	return parent.String() + "_pk"
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

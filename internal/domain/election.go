package domain

type Year = int

// EventType is the election category a set of results belongs to.
type EventType string

const (
	EventTypeProvincial EventType = "provincial"
	EventTypeNational   EventType = "national"
)

var EventTypes = []EventType{EventTypeProvincial, EventTypeNational}

// Years results are published for, oldest first.
var Years = []Year{1999, 2004, 2009}

// WardCutoffYear is the first year ward level results were collected.
const WardCutoffYear Year = 2009

// Tally holds the stored per event type blobs shared by every level of the hierarchy.
type Tally struct {
	ResultsProvincial *string `db:"results_provincial"`
	ResultsNational   *string `db:"results_national"`
	VoteComplete      *bool   `db:"vote_complete"`
}

func (r Tally) Results(eventType EventType) *string {
	if eventType == EventTypeNational {
		return r.ResultsNational
	}
	return r.ResultsProvincial
}

func (r Tally) Complete() *bool {
	return r.VoteComplete
}

type Country struct {
	PK   int64 `db:"pk"`
	Year Year  `db:"year"`
	Tally
}

// Entity is a row of one of the four area tables.
type Entity interface {
	Key() int64
	NaturalID() string
	YearOf() Year
	Kind() Area
	Results(eventType EventType) *string
	Complete() *bool
}

type Province struct {
	PK         int64  `db:"pk"`
	ProvinceID string `db:"province_id"`
	Year       Year   `db:"year"`
	Tally
}

type Municipality struct {
	PK             int64  `db:"pk"`
	MunicipalityID string `db:"municipality_id"`
	Year           Year   `db:"year"`
	ProvincePK     *int64 `db:"province_pk"`
	Tally
}

type Ward struct {
	PK             int64  `db:"pk"`
	WardID         int64  `db:"ward_id"`
	Year           Year   `db:"year"`
	MunicipalityPK *int64 `db:"municipality_pk"`
	ProvincePK     *int64 `db:"province_pk"`
	Tally
}

type VotingDistrict struct {
	PK               int64  `db:"pk"`
	VotingDistrictID int64  `db:"voting_district_id"`
	Year             Year   `db:"year"`
	WardPK           *int64 `db:"ward_pk"`
	MunicipalityPK   *int64 `db:"municipality_pk"`
	ProvincePK       *int64 `db:"province_pk"`
	Tally
}

func (p Province) Key() int64        { return p.PK }
func (p Province) NaturalID() string { return p.ProvinceID }
func (p Province) YearOf() Year      { return p.Year }
func (p Province) Kind() Area        { return AreaProvince }

func (m Municipality) Key() int64        { return m.PK }
func (m Municipality) NaturalID() string { return m.MunicipalityID }
func (m Municipality) YearOf() Year      { return m.Year }
func (m Municipality) Kind() Area        { return AreaMunicipality }

func (w Ward) Key() int64        { return w.PK }
func (w Ward) NaturalID() string { return formatID(w.WardID) }
func (w Ward) YearOf() Year      { return w.Year }
func (w Ward) Kind() Area        { return AreaWard }

func (v VotingDistrict) Key() int64        { return v.PK }
func (v VotingDistrict) NaturalID() string { return formatID(v.VotingDistrictID) }
func (v VotingDistrict) YearOf() Year      { return v.Year }
func (v VotingDistrict) Kind() Area        { return AreaVotingDistrict }

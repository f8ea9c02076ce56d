package results

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/ougirez/elections/internal/pkg/constants"
)

const DefaultPerPage = 50

const (
	pageMessage       = "Incorrect page specified. Please use an integer between 0 and 1000000."
	perPageMessage    = "Incorrect per_page specified. Please use an integer between 1 and 10000."
	allResultsMessage = "Incorrect all_results specified. Please use true or false."
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Paging selects the slice of a listing to return. All ignores Page and PerPage.
type Paging struct {
	Page    int `validate:"min=0,max=1000000"`
	PerPage int `validate:"min=1,max=10000"`
	All     bool
}

// ParsePaging reads page, per_page and all_results from a query string.
// A bare all_results parameter counts as true.
func ParsePaging(q url.Values) (Paging, error) {
	p := Paging{PerPage: DefaultPerPage}

	var err error
	if s := q.Get("page"); s != "" {
		if p.Page, err = strconv.Atoi(s); err != nil {
			return Paging{}, constants.NewClientError(pageMessage)
		}
	}
	if s := q.Get("per_page"); s != "" {
		if p.PerPage, err = strconv.Atoi(s); err != nil {
			return Paging{}, constants.NewClientError(perPageMessage)
		}
	}
	if q.Has("all_results") {
		s := q.Get("all_results")
		p.All = true
		if s != "" {
			if p.All, err = strconv.ParseBool(s); err != nil {
				return Paging{}, constants.NewClientError(allResultsMessage)
			}
		}
	}

	if err = validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "PerPage" {
			return Paging{}, constants.NewClientError(perPageMessage)
		}
		return Paging{}, constants.NewClientError(pageMessage)
	}

	return p, nil
}

func (p Paging) Offset() uint64 {
	return uint64(p.Page) * uint64(p.PerPage)
}

func (p Paging) Limit() uint64 {
	return uint64(p.PerPage)
}

// HasNext reports whether rows remain after the current page.
func HasNext(count int, p Paging) bool {
	if p.All {
		return false
	}
	return count > (p.Page+1)*p.PerPage
}

// NextURL is the current request with page advanced by one. Every other
// parameter, filters and per_page included, is carried over.
func NextURL(base, path string, q url.Values, p Paging) string {
	next := url.Values{}
	for k, v := range q {
		next[k] = append([]string(nil), v...)
	}
	next.Set("page", strconv.Itoa(p.Page+1))

	return base + path + "?" + next.Encode()
}

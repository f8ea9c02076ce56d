package store

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ougirez/elections/internal/domain"
	"github.com/ougirez/elections/internal/pkg/constants"
	"github.com/ougirez/elections/internal/pkg/logger"
	"github.com/ougirez/elections/internal/pkg/store/xpgx"
)

var countryColumns = []string{"pk", "year", "results_provincial", "results_national", "vote_complete"}

func getCountryQuery(year domain.Year) sq.SelectBuilder {
	return builder().Select(countryColumns...).
		From(tableCountry).
		Where(sq.Eq{"year": year})
}

func (s *store) GetCountry(ctx context.Context, year domain.Year) (*domain.Country, error) {
	start := time.Now()
	selected, err := xpgx.Getx[domain.Country](ctx, s.pool, getCountryQuery(year))
	observe("get", tableCountry, start, err)
	if err != nil {
		err = wrapErr(err)
		if !errors.Is(err, constants.ErrDBNotFound) {
			logger.Errorf(ctx, "GetCountry, year-%d: %s", year, err.Error())
		}
		return nil, err
	}

	return &selected, nil
}

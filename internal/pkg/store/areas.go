package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ougirez/elections/internal/domain"
	"github.com/ougirez/elections/internal/pkg/constants"
	"github.com/ougirez/elections/internal/pkg/logger"
	"github.com/ougirez/elections/internal/pkg/store/xpgx"
)

var tallyColumns = []string{"results_provincial", "results_national", "vote_complete"}

// areaColumns lists the columns of an area table; they match the db tags of its row struct.
func areaColumns(area domain.Area) []string {
	cols := []string{"pk", area.IDColumn(), "year"}
	for _, parent := range area.Parents() {
		cols = append(cols, area.ParentColumn(parent))
	}
	return append(cols, tallyColumns...)
}

// naturalID converts a path identifier to the column type of the area.
// An identifier that cannot be stored in the column matches no row.
func naturalID(area domain.Area, id string) (interface{}, error) {
	if !area.NumericID() {
		return id, nil
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, constants.ErrDBNotFound
	}
	return n, nil
}

func getAreaQuery(area domain.Area, year domain.Year, id interface{}) sq.SelectBuilder {
	return builder().Select(areaColumns(area)...).
		From(area.Table()).
		Where(sq.Eq{"year": year, area.IDColumn(): id})
}

func areaFilter(opts ListAreasOpts) sq.Eq {
	eq := sq.Eq{"year": opts.Year}
	if opts.Parent != nil {
		eq[opts.Area.ParentColumn(opts.Parent.Area)] = opts.Parent.PK
	}
	return eq
}

func countAreasQuery(opts ListAreasOpts) sq.SelectBuilder {
	return builder().Select("count(*)").
		From(opts.Area.Table()).
		Where(areaFilter(opts))
}

func listAreasQuery(opts ListAreasOpts) sq.SelectBuilder {
	query := builder().Select(areaColumns(opts.Area)...).
		From(opts.Area.Table()).
		Where(areaFilter(opts)).
		OrderBy(opts.Area.IDColumn())

	if opts.Limit != nil {
		query = query.Limit(*opts.Limit)
	}
	if opts.Offset != nil {
		query = query.Offset(*opts.Offset)
	}

	return query
}

func (s *store) GetArea(ctx context.Context, area domain.Area, year domain.Year, id string) (domain.Entity, error) {
	natID, err := naturalID(area, id)
	if err != nil {
		return nil, err
	}

	query := getAreaQuery(area, year, natID)
	start := time.Now()

	var entity domain.Entity
	switch area {
	case domain.AreaProvince:
		entity, err = getEntity[domain.Province](ctx, s.pool, query)
	case domain.AreaMunicipality:
		entity, err = getEntity[domain.Municipality](ctx, s.pool, query)
	case domain.AreaWard:
		entity, err = getEntity[domain.Ward](ctx, s.pool, query)
	case domain.AreaVotingDistrict:
		entity, err = getEntity[domain.VotingDistrict](ctx, s.pool, query)
	default:
		err = fmt.Errorf("unknown area %s", area)
	}

	observe("get", area.Table(), start, err)
	if err != nil {
		err = wrapErr(err)
		if !errors.Is(err, constants.ErrDBNotFound) {
			logger.Errorf(ctx, "GetArea, area-%s, year-%d, id-%s: %s", area, year, id, err.Error())
		}
		return nil, err
	}

	return entity, nil
}

func (s *store) CountAreas(ctx context.Context, opts ListAreasOpts) (int, error) {
	start := time.Now()
	n, err := xpgx.Countx(ctx, s.pool, countAreasQuery(opts))
	observe("count", opts.Area.Table(), start, err)
	if err != nil {
		logger.Errorf(ctx, "CountAreas, area-%s, year-%d: %s", opts.Area, opts.Year, err.Error())
		return 0, wrapErr(err)
	}

	return n, nil
}

func (s *store) ListAreas(ctx context.Context, opts ListAreasOpts) ([]domain.Entity, error) {
	query := listAreasQuery(opts)
	start := time.Now()

	var (
		entities []domain.Entity
		err      error
	)
	switch opts.Area {
	case domain.AreaProvince:
		entities, err = selectEntities[domain.Province](ctx, s.pool, query)
	case domain.AreaMunicipality:
		entities, err = selectEntities[domain.Municipality](ctx, s.pool, query)
	case domain.AreaWard:
		entities, err = selectEntities[domain.Ward](ctx, s.pool, query)
	case domain.AreaVotingDistrict:
		entities, err = selectEntities[domain.VotingDistrict](ctx, s.pool, query)
	default:
		err = fmt.Errorf("unknown area %s", opts.Area)
	}

	observe("list", opts.Area.Table(), start, err)
	if err != nil {
		logger.Errorf(ctx, "ListAreas, area-%s, year-%d: %s", opts.Area, opts.Year, err.Error())
		return nil, wrapErr(err)
	}

	return entities, nil
}

func getEntity[T domain.Entity](ctx context.Context, q xpgx.Querier, query sq.Sqlizer) (domain.Entity, error) {
	row, err := xpgx.Getx[T](ctx, q, query)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func selectEntities[T domain.Entity](ctx context.Context, q xpgx.Querier, query sq.Sqlizer) ([]domain.Entity, error) {
	rows, err := xpgx.Selectx[T](ctx, q, query)
	if err != nil {
		return nil, err
	}

	entities := make([]domain.Entity, len(rows))
	for i := range rows {
		entities[i] = rows[i]
	}
	return entities, nil
}

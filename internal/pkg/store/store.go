package store

import (
	"context"

	"github.com/ougirez/elections/internal/domain"
	"github.com/ougirez/elections/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// ParentRef narrows a listing to the children of one resolved row.
type ParentRef struct {
	Area domain.Area
	PK   int64
}

type ListAreasOpts struct {
	Area   domain.Area
	Year   domain.Year
	Parent *ParentRef
	Limit  *uint64
	Offset *uint64
}

type Store interface {
	GetCountry(ctx context.Context, year domain.Year) (*domain.Country, error)
	GetArea(ctx context.Context, area domain.Area, year domain.Year, id string) (domain.Entity, error)
	CountAreas(ctx context.Context, opts ListAreasOpts) (int, error)
	ListAreas(ctx context.Context, opts ListAreasOpts) ([]domain.Entity, error)
	Ping(ctx context.Context) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

func (s *store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Package results resolves election results requests against the store:
// it validates path and query parameters, picks the entity or collection to
// read, applies hierarchy filters and paging and assembles the response.
package results

import (
	"github.com/ougirez/elections/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

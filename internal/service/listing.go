package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/logging"
	"github.com/mitalikawde11/LightBnB/internal/query"
	"github.com/mitalikawde11/LightBnB/internal/store"
)

// Page is one page of search results with the total number of matches.
type Page struct {
	Results    []domain.PropertyRecord `json:"results"`
	TotalCount int64                   `json:"total_count"`
	Limit      int                     `json:"limit"`
}

// Listings answers property searches.
type Listings struct {
	props   store.PropertyRepository
	builder query.Builder
}

func NewListings(props store.PropertyRepository) *Listings {
	return &Listings{props: props, builder: query.NewBuilder()}
}

// Search returns up to limit properties matching criteria, cheapest first.
// Invalid criteria are rejected before the store is touched.
func (s *Listings) Search(ctx context.Context, criteria query.FilterCriteria, limit int) ([]domain.PropertyRecord, error) {
	q, err := s.builder.BuildSearch(criteria, limit)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Int("filters", len(criteria.Present())).
		Int("limit", limit).
		Msg("searching properties")

	return s.props.Search(ctx, q)
}

// SearchPage runs the page query and the count query concurrently.
func (s *Listings) SearchPage(ctx context.Context, criteria query.FilterCriteria, limit int) (*Page, error) {
	pageQuery, err := s.builder.BuildSearch(criteria, limit)
	if err != nil {
		return nil, err
	}
	countQuery, err := s.builder.BuildCount(criteria)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)

	var total int64
	g.Go(func() error {
		var err error
		total, err = s.props.Count(gctx, countQuery)
		return err
	})

	var results []domain.PropertyRecord
	g.Go(func() error {
		var err error
		results, err = s.props.Search(gctx, pageQuery)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search page: %w", err)
	}

	return &Page{Results: results, TotalCount: total, Limit: limit}, nil
}

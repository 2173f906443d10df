package store

import (
	"context"

	"github.com/roach88/registrar/internal/model"
)

var curators = table[model.Curator]{
	entity:  model.EntityCurator,
	columns: []string{"name"},
	values: func(c model.Curator) []any {
		return []any{text(c.Name)}
	},
	dest: func(c *model.Curator) []any {
		return []any{&c.ID, &c.Name}
	},
}

// CreateCurator inserts a curator. The ID field of c is ignored.
func (s *Store) CreateCurator(ctx context.Context, c model.Curator) (model.Curator, error) {
	return createRow(ctx, s, curators, c)
}

// GetCurator returns the curator with the given id.
func (s *Store) GetCurator(ctx context.Context, id int64) (model.Curator, error) {
	return getRow(ctx, s.db, curators, OpGet, id)
}

// ListCurators returns curators in ascending id order.
func (s *Store) ListCurators(ctx context.Context, page Page) ([]model.Curator, error) {
	return listRows(ctx, s.db, curators, nil, page)
}

// UpdateCurator replaces the curator's name.
func (s *Store) UpdateCurator(ctx context.Context, id int64, c model.Curator) (model.Curator, error) {
	return updateRow(ctx, s, curators, id, c)
}

// DeleteCurator removes a curator. Fails with a constraint violation while a
// group still references the curator.
func (s *Store) DeleteCurator(ctx context.Context, id int64) error {
	return deleteRow(ctx, s, curators, id)
}

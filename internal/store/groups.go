package store

import (
	"context"

	"github.com/roach88/registrar/internal/model"
	"github.com/roach88/registrar/internal/queryir"
)

var groups = table[model.Group]{
	entity:  model.EntityGroup,
	columns: []string{"curator_id", "name_number"},
	values: func(g model.Group) []any {
		return []any{g.CuratorID, text(g.NameNumber)}
	},
	dest: func(g *model.Group) []any {
		return []any{&g.ID, &g.CuratorID, &g.NameNumber}
	},
}

// CreateGroup inserts a group. Each curator may supervise only one group.
func (s *Store) CreateGroup(ctx context.Context, g model.Group) (model.Group, error) {
	return createRow(ctx, s, groups, g)
}

func (s *Store) GetGroup(ctx context.Context, id int64) (model.Group, error) {
	return getRow(ctx, s.db, groups, OpGet, id)
}

func (s *Store) ListGroups(ctx context.Context, page Page) ([]model.Group, error) {
	return listRows(ctx, s.db, groups, nil, page)
}

func (s *Store) UpdateGroup(ctx context.Context, id int64, g model.Group) (model.Group, error) {
	return updateRow(ctx, s, groups, id, g)
}

// DeleteGroup removes a group. Restricted while students or lessons
// reference it.
func (s *Store) DeleteGroup(ctx context.Context, id int64) error {
	return deleteRow(ctx, s, groups, id)
}

// ListStudentsByGroup returns the students of a group in ascending id order.
// An unknown group yields an empty list.
func (s *Store) ListStudentsByGroup(ctx context.Context, groupID int64) ([]model.Student, error) {
	return listRows(ctx, s.db, students, queryir.Equals{Field: "group_id", Value: groupID}, Page{})
}

package store

import (
	"context"

	"github.com/roach88/registrar/internal/model"
)

var degrees = table[model.Degree]{
	entity:  model.EntityDegree,
	columns: []string{"title"},
	values: func(d model.Degree) []any {
		return []any{text(d.Title)}
	},
	dest: func(d *model.Degree) []any {
		return []any{&d.ID, &d.Title}
	},
}

var positions = table[model.Position]{
	entity:  model.EntityPosition,
	columns: []string{"title"},
	values: func(p model.Position) []any {
		return []any{text(p.Title)}
	},
	dest: func(p *model.Position) []any {
		return []any{&p.ID, &p.Title}
	},
}

var teachers = table[model.Teacher]{
	entity:  model.EntityTeacher,
	columns: []string{"degree_id", "position_id", "name"},
	values: func(t model.Teacher) []any {
		return []any{t.DegreeID, t.PositionID, text(t.Name)}
	},
	dest: func(t *model.Teacher) []any {
		return []any{&t.ID, &t.DegreeID, &t.PositionID, &t.Name}
	},
}

// Degrees

// CreateDegree inserts a degree. Titles are unique.
func (s *Store) CreateDegree(ctx context.Context, d model.Degree) (model.Degree, error) {
	return createRow(ctx, s, degrees, d)
}

func (s *Store) GetDegree(ctx context.Context, id int64) (model.Degree, error) {
	return getRow(ctx, s.db, degrees, OpGet, id)
}

func (s *Store) ListDegrees(ctx context.Context, page Page) ([]model.Degree, error) {
	return listRows(ctx, s.db, degrees, nil, page)
}

func (s *Store) UpdateDegree(ctx context.Context, id int64, d model.Degree) (model.Degree, error) {
	return updateRow(ctx, s, degrees, id, d)
}

// DeleteDegree removes a degree. Restricted while teachers hold it.
func (s *Store) DeleteDegree(ctx context.Context, id int64) error {
	return deleteRow(ctx, s, degrees, id)
}

// Positions

func (s *Store) CreatePosition(ctx context.Context, p model.Position) (model.Position, error) {
	return createRow(ctx, s, positions, p)
}

func (s *Store) GetPosition(ctx context.Context, id int64) (model.Position, error) {
	return getRow(ctx, s.db, positions, OpGet, id)
}

func (s *Store) ListPositions(ctx context.Context, page Page) ([]model.Position, error) {
	return listRows(ctx, s.db, positions, nil, page)
}

func (s *Store) UpdatePosition(ctx context.Context, id int64, p model.Position) (model.Position, error) {
	return updateRow(ctx, s, positions, id, p)
}

// DeletePosition removes a position. Restricted while teachers hold it.
func (s *Store) DeletePosition(ctx context.Context, id int64) error {
	return deleteRow(ctx, s, positions, id)
}

// Teachers

// CreateTeacher inserts a teacher with an existing degree and position.
func (s *Store) CreateTeacher(ctx context.Context, t model.Teacher) (model.Teacher, error) {
	return createRow(ctx, s, teachers, t)
}

// GetTeacher returns the teacher with the given id.
func (s *Store) GetTeacher(ctx context.Context, id int64) (model.Teacher, error) {
	return getRow(ctx, s.db, teachers, OpGet, id)
}

// ListTeachers returns teachers in ascending id order.
func (s *Store) ListTeachers(ctx context.Context, page Page) ([]model.Teacher, error) {
	return listRows(ctx, s.db, teachers, nil, page)
}

// UpdateTeacher replaces the teacher's degree, position and name.
func (s *Store) UpdateTeacher(ctx context.Context, id int64, t model.Teacher) (model.Teacher, error) {
	return updateRow(ctx, s, teachers, id, t)
}

// DeleteTeacher removes a teacher together with all of the teacher's lessons.
func (s *Store) DeleteTeacher(ctx context.Context, id int64) error {
	return deleteRow(ctx, s, teachers, id)
}

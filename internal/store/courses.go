package store

import (
	"context"

	"github.com/roach88/registrar/internal/model"
)

var courses = table[model.Course]{
	entity:  model.EntityCourse,
	columns: []string{"title"},
	values: func(c model.Course) []any {
		return []any{text(c.Title)}
	},
	dest: func(c *model.Course) []any {
		return []any{&c.ID, &c.Title}
	},
}

// CreateCourse inserts a course. Titles are unique.
func (s *Store) CreateCourse(ctx context.Context, c model.Course) (model.Course, error) {
	return createRow(ctx, s, courses, c)
}

func (s *Store) GetCourse(ctx context.Context, id int64) (model.Course, error) {
	return getRow(ctx, s.db, courses, OpGet, id)
}

func (s *Store) ListCourses(ctx context.Context, page Page) ([]model.Course, error) {
	return listRows(ctx, s.db, courses, nil, page)
}

func (s *Store) UpdateCourse(ctx context.Context, id int64, c model.Course) (model.Course, error) {
	return updateRow(ctx, s, courses, id, c)
}

// DeleteCourse removes a course. Restricted while marks or lessons
// reference it.
func (s *Store) DeleteCourse(ctx context.Context, id int64) error {
	return deleteRow(ctx, s, courses, id)
}

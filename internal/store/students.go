package store

import (
	"context"

	"github.com/roach88/registrar/internal/model"
)

var students = table[model.Student]{
	entity:  model.EntityStudent,
	columns: []string{"group_id", "name", "birthday"},
	values: func(st model.Student) []any {
		return []any{st.GroupID, text(st.Name), text(st.Birthday)}
	},
	dest: func(st *model.Student) []any {
		return []any{&st.ID, &st.GroupID, &st.Name, &st.Birthday}
	},
}

// CreateStudent inserts a student into an existing group.
func (s *Store) CreateStudent(ctx context.Context, st model.Student) (model.Student, error) {
	return createRow(ctx, s, students, st)
}

// GetStudent returns the student with the given id.
func (s *Store) GetStudent(ctx context.Context, id int64) (model.Student, error) {
	return getRow(ctx, s.db, students, OpGet, id)
}

// ListStudents returns students in ascending id order.
func (s *Store) ListStudents(ctx context.Context, page Page) ([]model.Student, error) {
	return listRows(ctx, s.db, students, nil, page)
}

// UpdateStudent replaces the student's group, name and birthday.
func (s *Store) UpdateStudent(ctx context.Context, id int64, st model.Student) (model.Student, error) {
	return updateRow(ctx, s, students, id, st)
}

// DeleteStudent removes a student together with all of the student's marks.
func (s *Store) DeleteStudent(ctx context.Context, id int64) error {
	return deleteRow(ctx, s, students, id)
}

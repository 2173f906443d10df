package store

import (
	"context"

	"github.com/roach88/registrar/internal/model"
	"github.com/roach88/registrar/internal/queryir"
)

var marks = table[model.Mark]{
	entity:  model.EntityMark,
	columns: []string{"course_id", "student_id", "mark"},
	values: func(m model.Mark) []any {
		return []any{m.CourseID, m.StudentID, m.Mark}
	},
	dest: func(m *model.Mark) []any {
		return []any{&m.ID, &m.CourseID, &m.StudentID, &m.Mark}
	},
}

// CreateMark inserts a mark. Values outside [model.MinMark, model.MaxMark]
// are rejected by the schema's mark_range_check.
func (s *Store) CreateMark(ctx context.Context, m model.Mark) (model.Mark, error) {
	return createRow(ctx, s, marks, m)
}

// GetMark returns the mark with the given id.
func (s *Store) GetMark(ctx context.Context, id int64) (model.Mark, error) {
	return getRow(ctx, s.db, marks, OpGet, id)
}

// ListMarks returns marks in ascending id order.
func (s *Store) ListMarks(ctx context.Context, page Page) ([]model.Mark, error) {
	return listRows(ctx, s.db, marks, nil, page)
}

// UpdateMark replaces the mark's course, student and value.
func (s *Store) UpdateMark(ctx context.Context, id int64, m model.Mark) (model.Mark, error) {
	return updateRow(ctx, s, marks, id, m)
}

// DeleteMark removes a mark.
func (s *Store) DeleteMark(ctx context.Context, id int64) error {
	return deleteRow(ctx, s, marks, id)
}

// ListMarksByStudent returns a student's marks in ascending id order.
func (s *Store) ListMarksByStudent(ctx context.Context, studentID int64) ([]model.Mark, error) {
	return listRows(ctx, s.db, marks, queryir.Equals{Field: "student_id", Value: studentID}, Page{})
}

// ListStudentMarksInCourse returns one student's marks for one course in
// ascending id order.
func (s *Store) ListStudentMarksInCourse(ctx context.Context, studentID, courseID int64) ([]model.Mark, error) {
	filter := queryir.And{Predicates: []queryir.Predicate{
		queryir.Equals{Field: "student_id", Value: studentID},
		queryir.Equals{Field: "course_id", Value: courseID},
	}}
	return listRows(ctx, s.db, marks, filter, Page{})
}

// ListMarksByCourse returns a course's marks in ascending id order.
func (s *Store) ListMarksByCourse(ctx context.Context, courseID int64) ([]model.Mark, error) {
	return listRows(ctx, s.db, marks, queryir.Equals{Field: "course_id", Value: courseID}, Page{})
}

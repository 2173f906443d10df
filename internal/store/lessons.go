package store

import (
	"context"

	"github.com/roach88/registrar/internal/model"
	"github.com/roach88/registrar/internal/queryir"
)

var lessons = table[model.Lesson]{
	entity:  model.EntityLesson,
	columns: []string{"group_id", "teacher_id", "course_id", "time"},
	values: func(l model.Lesson) []any {
		return []any{l.GroupID, l.TeacherID, l.CourseID, text(l.Time)}
	},
	dest: func(l *model.Lesson) []any {
		return []any{&l.ID, &l.GroupID, &l.TeacherID, &l.CourseID, &l.Time}
	},
}

// CreateLesson inserts a lesson. Group, teacher and course must exist.
func (s *Store) CreateLesson(ctx context.Context, l model.Lesson) (model.Lesson, error) {
	return createRow(ctx, s, lessons, l)
}

// GetLesson returns the lesson with the given id.
func (s *Store) GetLesson(ctx context.Context, id int64) (model.Lesson, error) {
	return getRow(ctx, s.db, lessons, OpGet, id)
}

// ListLessons returns lessons in ascending id order.
func (s *Store) ListLessons(ctx context.Context, page Page) ([]model.Lesson, error) {
	return listRows(ctx, s.db, lessons, nil, page)
}

// UpdateLesson replaces the lesson's group, teacher, course and time.
func (s *Store) UpdateLesson(ctx context.Context, id int64, l model.Lesson) (model.Lesson, error) {
	return updateRow(ctx, s, lessons, id, l)
}

// DeleteLesson removes a lesson.
func (s *Store) DeleteLesson(ctx context.Context, id int64) error {
	return deleteRow(ctx, s, lessons, id)
}

// ListLessonsByTeacher returns a teacher's lessons in ascending id order.
func (s *Store) ListLessonsByTeacher(ctx context.Context, teacherID int64) ([]model.Lesson, error) {
	return listRows(ctx, s.db, lessons, queryir.Equals{Field: "teacher_id", Value: teacherID}, Page{})
}

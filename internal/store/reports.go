package store

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/model"
)

// Report queries. Each is a single read-only statement with a deterministic
// ORDER BY; an empty match yields an empty slice.

const averageGradesSQL = `
	SELECT s.id, s.name, ROUND(AVG(m.mark), 2) AS average_grade
	FROM students s
	JOIN marks m ON m.student_id = s.id
	GROUP BY s.id, s.name
	ORDER BY s.id ASC
`

const groupScheduleSQL = `
	SELECT l.id, l.time, g.name_number, c.title, t.name
	FROM lessons l
	JOIN student_groups g ON g.id = l.group_id
	JOIN courses c ON c.id = l.course_id
	JOIN teachers t ON t.id = l.teacher_id
	WHERE l.group_id = ?
	ORDER BY l.time ASC, l.id ASC
`

const teacherLoadSQL = `
	SELECT DISTINCT t.name, c.title
	FROM teachers t
	JOIN lessons l ON l.teacher_id = t.id
	JOIN courses c ON c.id = l.course_id
	ORDER BY t.name ASC, c.title ASC
`

// Student names are concatenated in id order so the list is stable.
const curatorLoadSQL = `
	SELECT cu.name,
	       group_concat(s.name, ', ' ORDER BY s.id) AS students,
	       COUNT(DISTINCT s.id) AS stud_count
	FROM curators cu
	JOIN student_groups g ON g.curator_id = cu.id
	JOIN students s ON s.group_id = g.id
	GROUP BY cu.name
	ORDER BY cu.name ASC
`

const teacherInfoSQL = `
	SELECT t.id, t.name, d.title, p.title
	FROM teachers t
	JOIN degrees d ON d.id = t.degree_id
	JOIN positions p ON p.id = t.position_id
	ORDER BY t.id ASC
`

// AverageGrades returns each student's mean mark rounded to two decimals.
// Students without marks are omitted.
func (s *Store) AverageGrades(ctx context.Context) ([]model.AverageGrade, error) {
	return queryReport(ctx, s, "average grades", averageGradesSQL, nil,
		func(r rowScanner) (model.AverageGrade, error) {
			var row model.AverageGrade
			err := r.Scan(&row.StudentID, &row.Name, &row.AverageGrade)
			return row, err
		})
}

// GroupSchedule returns the lessons of a group ordered by time.
// An unknown group yields an empty schedule.
func (s *Store) GroupSchedule(ctx context.Context, groupID int64) ([]model.ScheduleEntry, error) {
	return queryReport(ctx, s, "group schedule", groupScheduleSQL, []any{groupID},
		func(r rowScanner) (model.ScheduleEntry, error) {
			var row model.ScheduleEntry
			err := r.Scan(&row.LessonID, &row.Time, &row.NameNumber, &row.CourseTitle, &row.TeacherName)
			return row, err
		})
}

// TeacherLoad returns the distinct (teacher name, course title) pairs
// taught in any lesson.
func (s *Store) TeacherLoad(ctx context.Context) ([]model.TeacherLoad, error) {
	return queryReport(ctx, s, "teacher load", teacherLoadSQL, nil,
		func(r rowScanner) (model.TeacherLoad, error) {
			var row model.TeacherLoad
			err := r.Scan(&row.TeacherName, &row.CourseTitle)
			return row, err
		})
}

// CuratorLoad returns, per curator name, the students in that curator's
// groups and their distinct count. Curators without students are omitted.
func (s *Store) CuratorLoad(ctx context.Context) ([]model.CuratorLoad, error) {
	return queryReport(ctx, s, "curator load", curatorLoadSQL, nil,
		func(r rowScanner) (model.CuratorLoad, error) {
			var row model.CuratorLoad
			err := r.Scan(&row.CuratorName, &row.Students, &row.StudCount)
			return row, err
		})
}

// TeacherInfo returns every teacher with degree and position titles.
func (s *Store) TeacherInfo(ctx context.Context) ([]model.TeacherInfo, error) {
	return queryReport(ctx, s, "teacher info", teacherInfoSQL, nil,
		func(r rowScanner) (model.TeacherInfo, error) {
			var row model.TeacherInfo
			err := r.Scan(&row.TeacherID, &row.Name, &row.DegreeTitle, &row.PositionTitle)
			return row, err
		})
}

// queryReport runs a report statement and scans every row.
func queryReport[T any](ctx context.Context, s *Store, name, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		row, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}

	return result, nil
}

package model

// AverageGrade is one row of the average-grade report.
type AverageGrade struct {
	StudentID    int64   `json:"student_id"`
	Name         string  `json:"name"`
	AverageGrade float64 `json:"average_grade"`
}

// ScheduleEntry is one lesson of a group schedule.
type ScheduleEntry struct {
	LessonID    int64  `json:"lesson_id"`
	Time        string `json:"time"`
	NameNumber  string `json:"name_number"`
	CourseTitle string `json:"course_title"`
	TeacherName string `json:"teacher_name"`
}

// TeacherLoad is a distinct (teacher, course) pair.
type TeacherLoad struct {
	TeacherName string `json:"teacher_name"`
	CourseTitle string `json:"course_title"`
}

// CuratorLoad summarises the students under one curator name.
// Students is the ", "-joined list of names.
type CuratorLoad struct {
	CuratorName string `json:"curator_name"`
	Students    string `json:"students"`
	StudCount   int64  `json:"stud_count"`
}

// TeacherInfo pairs a teacher with their degree and position titles.
type TeacherInfo struct {
	TeacherID     int64  `json:"teacher_id"`
	Name          string `json:"name"`
	DegreeTitle   string `json:"degree_title"`
	PositionTitle string `json:"position_title"`
}

package model

// Curator supervises at most one group.
type Curator struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Group is a student group. CuratorID is unique across groups.
type Group struct {
	ID         int64  `json:"id"`
	CuratorID  int64  `json:"curator_id"`
	NameNumber string `json:"name_number"`
}

// Student belongs to exactly one group.
type Student struct {
	ID       int64  `json:"id"`
	GroupID  int64  `json:"group_id"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

// Course title is unique.
type Course struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Mark is a grade in [MinMark, MaxMark] given to a student for a course.
type Mark struct {
	ID        int64 `json:"id"`
	CourseID  int64 `json:"course_id"`
	StudentID int64 `json:"student_id"`
	Mark      int64 `json:"mark"`
}

// Mark bounds, inclusive.
const (
	MinMark = 2
	MaxMark = 5
)

// Degree is an academic degree. Title is unique.
type Degree struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Position is a teaching position.
type Position struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Teacher holds one degree and one position.
type Teacher struct {
	ID         int64  `json:"id"`
	DegreeID   int64  `json:"degree_id"`
	PositionID int64  `json:"position_id"`
	Name       string `json:"name"`
}

// Lesson is a scheduled class of a course for a group, taught by a teacher.
// Time is an opaque, lexically ordered label such as "09:00".
type Lesson struct {
	ID        int64  `json:"id"`
	GroupID   int64  `json:"group_id"`
	TeacherID int64  `json:"teacher_id"`
	CourseID  int64  `json:"course_id"`
	Time      string `json:"time"`
}

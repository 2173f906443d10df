package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/model"
)

func TestCRUD_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	curator, err := s.GetCurator(ctx, c.ivanova.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Curator{ID: c.ivanova.ID, Name: "Ivanova Maria"}, curator)

	group, err := s.GetGroup(ctx, c.iu711.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Group{ID: c.iu711.ID, CuratorID: c.ivanova.ID, NameNumber: "IU7-11"}, group)

	student, err := s.GetStudent(ctx, c.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, c.alice, student)
	assert.Equal(t, "2004-03-01", student.Birthday)

	course, err := s.GetCourse(ctx, c.physics.ID)
	require.NoError(t, err)
	assert.Equal(t, c.physics, course)

	mark, err := s.GetMark(ctx, c.marks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.Mark{ID: c.marks[0].ID, CourseID: c.databases.ID, StudentID: c.alice.ID, Mark: 4}, mark)

	degree, err := s.GetDegree(ctx, c.phd.ID)
	require.NoError(t, err)
	assert.Equal(t, c.phd, degree)

	position, err := s.GetPosition(ctx, c.assistant.ID)
	require.NoError(t, err)
	assert.Equal(t, c.assistant, position)

	teacher, err := s.GetTeacher(ctx, c.smirnov.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Teacher{ID: c.smirnov.ID, DegreeID: c.dsc.ID, PositionID: c.professor.ID, Name: "Smirnov"}, teacher)

	lesson, err := s.GetLesson(ctx, c.lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", lesson.Time)
	assert.Equal(t, c.lessons[1], lesson)
}

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first, err := s.CreateCurator(ctx, model.Curator{Name: "A"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteCurator(ctx, first.ID))

	second, err := s.CreateCurator(ctx, model.Curator{Name: "B"})
	require.NoError(t, err)

	assert.Greater(t, first.ID, int64(0))
	assert.Greater(t, second.ID, first.ID, "ids are never reused")
}

func TestCreate_IgnoresSuppliedID(t *testing.T) {
	s := createTestStore(t)

	created, err := s.CreateCourse(context.Background(), model.Course{ID: 99, Title: "Logic"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreate_NormalizesText(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	created, err := s.CreateCurator(ctx, model.Curator{Name: "Rene\u0301"})
	require.NoError(t, err)
	assert.Equal(t, "Ren\u00e9", created.Name)

	_, err = s.CreateCourse(ctx, model.Course{Title: "Cafe\u0301"})
	require.NoError(t, err)
	_, err = s.CreateCourse(ctx, model.Course{Title: "Caf\u00e9"})
	assert.True(t, IsConstraintViolation(err), "NFC-equal titles collide: %v", err)
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	updated, err := s.UpdateStudent(ctx, c.alice.ID, model.Student{
		GroupID:  c.iu712.ID,
		Name:     "Alice Liddell",
		Birthday: "2004-03-02",
	})
	require.NoError(t, err)

	want := model.Student{ID: c.alice.ID, GroupID: c.iu712.ID, Name: "Alice Liddell", Birthday: "2004-03-02"}
	assert.Equal(t, want, updated)

	got, err := s.GetStudent(ctx, c.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Other rows untouched.
	bob, err := s.GetStudent(ctx, c.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, c.bob, bob)
}

func TestUpdate_EveryEntity(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	curator, err := s.UpdateCurator(ctx, c.sidorova.ID, model.Curator{Name: "Sidorova A."})
	require.NoError(t, err)
	assert.Equal(t, "Sidorova A.", curator.Name)

	group, err := s.UpdateGroup(ctx, c.iu711.ID, model.Group{CuratorID: c.sidorova.ID, NameNumber: "IU7-13"})
	require.NoError(t, err)
	assert.Equal(t, model.Group{ID: c.iu711.ID, CuratorID: c.sidorova.ID, NameNumber: "IU7-13"}, group)

	course, err := s.UpdateCourse(ctx, c.physics.ID, model.Course{Title: "Physics II"})
	require.NoError(t, err)
	assert.Equal(t, "Physics II", course.Title)

	mark, err := s.UpdateMark(ctx, c.marks[0].ID, model.Mark{CourseID: c.physics.ID, StudentID: c.bob.ID, Mark: 2})
	require.NoError(t, err)
	assert.Equal(t, model.Mark{ID: c.marks[0].ID, CourseID: c.physics.ID, StudentID: c.bob.ID, Mark: 2}, mark)

	degree, err := s.UpdateDegree(ctx, c.phd.ID, model.Degree{Title: "Candidate of Science"})
	require.NoError(t, err)
	assert.Equal(t, "Candidate of Science", degree.Title)

	position, err := s.UpdatePosition(ctx, c.assistant.ID, model.Position{Title: "Senior Lecturer"})
	require.NoError(t, err)
	assert.Equal(t, "Senior Lecturer", position.Title)

	teacher, err := s.UpdateTeacher(ctx, c.kuznetsova.ID, model.Teacher{DegreeID: c.dsc.ID, PositionID: c.professor.ID, Name: "Kuznetsova I."})
	require.NoError(t, err)
	assert.Equal(t, model.Teacher{ID: c.kuznetsova.ID, DegreeID: c.dsc.ID, PositionID: c.professor.ID, Name: "Kuznetsova I."}, teacher)

	lesson, err := s.UpdateLesson(ctx, c.lessons[0].ID, model.Lesson{GroupID: c.iu712.ID, TeacherID: c.kuznetsova.ID, CourseID: c.physics.ID, Time: "08:30"})
	require.NoError(t, err)
	assert.Equal(t, model.Lesson{ID: c.lessons[0].ID, GroupID: c.iu712.ID, TeacherID: c.kuznetsova.ID, CourseID: c.physics.ID, Time: "08:30"}, lesson)
}

func TestUpdate_NotFound(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateCurator(ctx, 42, model.Curator{Name: "Nobody"})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, OpUpdate, se.Op)
	assert.Equal(t, model.EntityCurator, se.Entity)
	assert.Equal(t, int64(42), se.ID)
}

func TestDelete_ThenGetIsNotFound(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	require.NoError(t, s.DeleteMark(ctx, c.marks[0].ID))
	_, err := s.GetMark(ctx, c.marks[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteLesson(ctx, c.lessons[0].ID))
	_, err = s.GetLesson(ctx, c.lessons[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteCurator(ctx, c.sidorova.ID))
	_, err = s.GetCurator(ctx, c.sidorova.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	deletes := map[model.Entity]func(context.Context, int64) error{
		model.EntityCurator:  s.DeleteCurator,
		model.EntityGroup:    s.DeleteGroup,
		model.EntityStudent:  s.DeleteStudent,
		model.EntityCourse:   s.DeleteCourse,
		model.EntityMark:     s.DeleteMark,
		model.EntityDegree:   s.DeleteDegree,
		model.EntityPosition: s.DeletePosition,
		model.EntityTeacher:  s.DeleteTeacher,
		model.EntityLesson:   s.DeleteLesson,
	}

	for entity, del := range deletes {
		t.Run(string(entity), func(t *testing.T) {
			err := del(ctx, 7)
			require.Error(t, err)
			assert.True(t, IsNotFound(err))
			assert.Equal(t, "delete "+string(entity)+" 7: not found", err.Error())
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.GetTeacher(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConstraintViolation(err))
}

func TestList_StorageOrderAndStability(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	first, err := s.ListStudents(ctx, Page{})
	require.NoError(t, err)
	assert.Equal(t, []model.Student{c.alice, c.bob, c.carol, c.dave}, first)

	second, err := s.ListStudents(ctx, Page{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestList_Paging(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	page, err := s.ListMarks(ctx, Page{Offset: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, c.marks[2:5], page)

	rest, err := s.ListMarks(ctx, Page{Offset: 6})
	require.NoError(t, err)
	assert.Equal(t, c.marks[6:], rest)

	beyond, err := s.ListMarks(ctx, Page{Offset: 100, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, beyond)
	assert.Empty(t, beyond)
}

func TestList_Empty(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	curators, err := s.ListCurators(ctx, Page{})
	require.NoError(t, err)
	assert.NotNil(t, curators)
	assert.Empty(t, curators)

	groups, err := s.ListGroups(ctx, Page{})
	require.NoError(t, err)
	assert.Empty(t, groups)

	courses, err := s.ListCourses(ctx, Page{})
	require.NoError(t, err)
	assert.Empty(t, courses)

	degrees, err := s.ListDegrees(ctx, Page{})
	require.NoError(t, err)
	assert.Empty(t, degrees)

	positions, err := s.ListPositions(ctx, Page{})
	require.NoError(t, err)
	assert.Empty(t, positions)

	teachers, err := s.ListTeachers(ctx, Page{})
	require.NoError(t, err)
	assert.Empty(t, teachers)

	lessons, err := s.ListLessons(ctx, Page{})
	require.NoError(t, err)
	assert.Empty(t, lessons)
}

func TestList_NegativePageRejected(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ListCurators(context.Background(), Page{Offset: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative offset")
}

func TestFilters(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	students, err := s.ListStudentsByGroup(ctx, c.iu712.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Student{c.carol, c.dave}, students)

	lessons, err := s.ListLessonsByTeacher(ctx, c.smirnov.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Lesson{c.lessons[0], c.lessons[2]}, lessons)

	byStudent, err := s.ListMarksByStudent(ctx, c.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, c.marks[3:5], byStudent)

	byCourse, err := s.ListMarksByCourse(ctx, c.physics.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Mark{c.marks[2], c.marks[5]}, byCourse)

	inCourse, err := s.ListStudentMarksInCourse(ctx, c.alice.ID, c.physics.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Mark{c.marks[2]}, inCourse)

	inCourse, err = s.ListStudentMarksInCourse(ctx, c.bob.ID, c.physics.ID)
	require.NoError(t, err)
	assert.Empty(t, inCourse)

	none, err := s.ListStudentsByGroup(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

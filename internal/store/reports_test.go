package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/model"
)

func TestAverageGrades(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	rows, err := s.AverageGrades(ctx)
	require.NoError(t, err)

	assert.Equal(t, []model.AverageGrade{
		{StudentID: c.alice.ID, Name: "Alice", AverageGrade: 4},
		{StudentID: c.bob.ID, Name: "Bob", AverageGrade: 4.5},
		{StudentID: c.carol.ID, Name: "Carol", AverageGrade: 3.67},
	}, rows, "Dave has no marks and is omitted")

	for _, row := range rows {
		assert.GreaterOrEqual(t, row.AverageGrade, float64(model.MinMark))
		assert.LessOrEqual(t, row.AverageGrade, float64(model.MaxMark))
	}
}

func TestAverageGrades_Empty(t *testing.T) {
	s := createTestStore(t)

	rows, err := s.AverageGrades(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGroupSchedule(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	rows, err := s.GroupSchedule(ctx, c.iu711.ID)
	require.NoError(t, err)

	assert.Equal(t, []model.ScheduleEntry{
		{LessonID: c.lessons[1].ID, Time: "09:00", NameNumber: "IU7-11", CourseTitle: "Algorithms", TeacherName: "Kuznetsova"},
		{LessonID: c.lessons[0].ID, Time: "10:00", NameNumber: "IU7-11", CourseTitle: "Databases", TeacherName: "Smirnov"},
		{LessonID: c.lessons[2].ID, Time: "12:00", NameNumber: "IU7-11", CourseTitle: "Databases", TeacherName: "Smirnov"},
	}, rows)

	other, err := s.GroupSchedule(ctx, c.iu712.ID)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "Physics", other[0].CourseTitle)
}

func TestGroupSchedule_UnknownGroup(t *testing.T) {
	s := createTestStore(t)
	seedCampus(t, s)

	rows, err := s.GroupSchedule(context.Background(), 12345)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGroupSchedule_SameTimeOrderedByID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	extra, err := s.CreateLesson(ctx, model.Lesson{GroupID: c.iu711.ID, TeacherID: c.kuznetsova.ID, CourseID: c.physics.ID, Time: "09:00"})
	require.NoError(t, err)

	rows, err := s.GroupSchedule(ctx, c.iu711.ID)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, c.lessons[1].ID, rows[0].LessonID)
	assert.Equal(t, extra.ID, rows[1].LessonID)
}

func TestTeacherLoad(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	seedCampus(t, s)

	rows, err := s.TeacherLoad(ctx)
	require.NoError(t, err)

	// Smirnov teaches Databases twice; the pair appears once.
	assert.Equal(t, []model.TeacherLoad{
		{TeacherName: "Kuznetsova", CourseTitle: "Algorithms"},
		{TeacherName: "Kuznetsova", CourseTitle: "Physics"},
		{TeacherName: "Smirnov", CourseTitle: "Databases"},
	}, rows)
}

func TestTeacherLoad_TeacherWithoutLessonsOmitted(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	_, err := s.CreateTeacher(ctx, model.Teacher{DegreeID: c.phd.ID, PositionID: c.assistant.ID, Name: "Idle"})
	require.NoError(t, err)

	rows, err := s.TeacherLoad(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		assert.NotEqual(t, "Idle", row.TeacherName)
	}
}

func TestCuratorLoad(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	seedCampus(t, s)

	rows, err := s.CuratorLoad(ctx)
	require.NoError(t, err)

	// Sidorova has no group and is omitted.
	assert.Equal(t, []model.CuratorLoad{
		{CuratorName: "Ivanova Maria", Students: "Alice, Bob", StudCount: 2},
		{CuratorName: "Petrov Oleg", Students: "Carol, Dave", StudCount: 2},
	}, rows)
}

func TestCuratorLoad_SameNameCuratorsMerge(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	seedCampus(t, s)

	twin, err := s.CreateCurator(ctx, model.Curator{Name: "Ivanova Maria"})
	require.NoError(t, err)
	group, err := s.CreateGroup(ctx, model.Group{CuratorID: twin.ID, NameNumber: "IU7-14"})
	require.NoError(t, err)
	_, err = s.CreateStudent(ctx, model.Student{GroupID: group.ID, Name: "Erin", Birthday: "2005-02-02"})
	require.NoError(t, err)

	rows, err := s.CuratorLoad(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ivanova Maria", rows[0].CuratorName)
	assert.Equal(t, "Alice, Bob, Erin", rows[0].Students)
	assert.Equal(t, int64(3), rows[0].StudCount)
}

func TestTeacherInfo(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	rows, err := s.TeacherInfo(ctx)
	require.NoError(t, err)

	assert.Equal(t, []model.TeacherInfo{
		{TeacherID: c.smirnov.ID, Name: "Smirnov", DegreeTitle: "Doctor of Science", PositionTitle: "Professor"},
		{TeacherID: c.kuznetsova.ID, Name: "Kuznetsova", DegreeTitle: "PhD", PositionTitle: "Assistant"},
	}, rows)
}

func TestReports_ReflectWrites(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	_, err := s.CreateMark(ctx, model.Mark{CourseID: c.physics.ID, StudentID: c.dave.ID, Mark: 2})
	require.NoError(t, err)
	require.NoError(t, s.DeleteStudent(ctx, c.alice.ID))

	rows, err := s.AverageGrades(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.AverageGrade{
		{StudentID: c.bob.ID, Name: "Bob", AverageGrade: 4.5},
		{StudentID: c.carol.ID, Name: "Carol", AverageGrade: 3.67},
		{StudentID: c.dave.ID, Name: "Dave", AverageGrade: 2},
	}, rows)
}

// reportSnapshot bundles every report over the seeded campus.
type reportSnapshot struct {
	AverageGrades []model.AverageGrade  `json:"average_grades"`
	Schedule      []model.ScheduleEntry `json:"schedule"`
	TeacherLoad   []model.TeacherLoad   `json:"teacher_load"`
	CuratorLoad   []model.CuratorLoad   `json:"curator_load"`
	TeacherInfo   []model.TeacherInfo   `json:"teacher_info"`
}

func TestReports_Golden(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	c := seedCampus(t, s)

	var snap reportSnapshot
	var err error
	snap.AverageGrades, err = s.AverageGrades(ctx)
	require.NoError(t, err)
	snap.Schedule, err = s.GroupSchedule(ctx, c.iu711.ID)
	require.NoError(t, err)
	snap.TeacherLoad, err = s.TeacherLoad(ctx)
	require.NoError(t, err)
	snap.CuratorLoad, err = s.CuratorLoad(ctx)
	require.NoError(t, err)
	snap.TeacherInfo, err = s.TeacherInfo(ctx)
	require.NoError(t, err)

	data, err := json.MarshalIndent(snap, "", "  ")
	require.NoError(t, err)
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "reports", data)
}

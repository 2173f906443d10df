package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/model"
)

// createTestStore creates a new store backed by a temporary file.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// campus holds the ids assigned by seedCampus.
type campus struct {
	ivanova, petrov, sidorova      model.Curator
	iu711, iu712                   model.Group
	alice, bob, carol, dave        model.Student
	databases, algorithms, physics model.Course
	phd, dsc                       model.Degree
	professor, assistant           model.Position
	smirnov, kuznetsova            model.Teacher
	lessons                        []model.Lesson
	marks                          []model.Mark
}

// seedCampus fills the store with a small, fully connected dataset:
//
//	Ivanova Maria -> IU7-11: Alice, Bob
//	Petrov Oleg   -> IU7-12: Carol, Dave
//	Sidorova Anna -> (no group)
//
// Dave has no marks. Smirnov teaches Databases to IU7-11 twice.
func seedCampus(t *testing.T, s *Store) campus {
	t.Helper()
	ctx := context.Background()
	var c campus
	var err error

	c.ivanova, err = s.CreateCurator(ctx, model.Curator{Name: "Ivanova Maria"})
	require.NoError(t, err)
	c.petrov, err = s.CreateCurator(ctx, model.Curator{Name: "Petrov Oleg"})
	require.NoError(t, err)
	c.sidorova, err = s.CreateCurator(ctx, model.Curator{Name: "Sidorova Anna"})
	require.NoError(t, err)

	c.iu711, err = s.CreateGroup(ctx, model.Group{CuratorID: c.ivanova.ID, NameNumber: "IU7-11"})
	require.NoError(t, err)
	c.iu712, err = s.CreateGroup(ctx, model.Group{CuratorID: c.petrov.ID, NameNumber: "IU7-12"})
	require.NoError(t, err)

	c.alice, err = s.CreateStudent(ctx, model.Student{GroupID: c.iu711.ID, Name: "Alice", Birthday: "2004-03-01"})
	require.NoError(t, err)
	c.bob, err = s.CreateStudent(ctx, model.Student{GroupID: c.iu711.ID, Name: "Bob", Birthday: "2004-07-12"})
	require.NoError(t, err)
	c.carol, err = s.CreateStudent(ctx, model.Student{GroupID: c.iu712.ID, Name: "Carol", Birthday: "2003-11-30"})
	require.NoError(t, err)
	c.dave, err = s.CreateStudent(ctx, model.Student{GroupID: c.iu712.ID, Name: "Dave", Birthday: "2004-01-05"})
	require.NoError(t, err)

	c.databases, err = s.CreateCourse(ctx, model.Course{Title: "Databases"})
	require.NoError(t, err)
	c.algorithms, err = s.CreateCourse(ctx, model.Course{Title: "Algorithms"})
	require.NoError(t, err)
	c.physics, err = s.CreateCourse(ctx, model.Course{Title: "Physics"})
	require.NoError(t, err)

	c.phd, err = s.CreateDegree(ctx, model.Degree{Title: "PhD"})
	require.NoError(t, err)
	c.dsc, err = s.CreateDegree(ctx, model.Degree{Title: "Doctor of Science"})
	require.NoError(t, err)

	c.professor, err = s.CreatePosition(ctx, model.Position{Title: "Professor"})
	require.NoError(t, err)
	c.assistant, err = s.CreatePosition(ctx, model.Position{Title: "Assistant"})
	require.NoError(t, err)

	c.smirnov, err = s.CreateTeacher(ctx, model.Teacher{DegreeID: c.dsc.ID, PositionID: c.professor.ID, Name: "Smirnov"})
	require.NoError(t, err)
	c.kuznetsova, err = s.CreateTeacher(ctx, model.Teacher{DegreeID: c.phd.ID, PositionID: c.assistant.ID, Name: "Kuznetsova"})
	require.NoError(t, err)

	for _, l := range []model.Lesson{
		{GroupID: c.iu711.ID, TeacherID: c.smirnov.ID, CourseID: c.databases.ID, Time: "10:00"},
		{GroupID: c.iu711.ID, TeacherID: c.kuznetsova.ID, CourseID: c.algorithms.ID, Time: "09:00"},
		{GroupID: c.iu711.ID, TeacherID: c.smirnov.ID, CourseID: c.databases.ID, Time: "12:00"},
		{GroupID: c.iu712.ID, TeacherID: c.kuznetsova.ID, CourseID: c.physics.ID, Time: "11:00"},
	} {
		created, err := s.CreateLesson(ctx, l)
		require.NoError(t, err)
		c.lessons = append(c.lessons, created)
	}

	for _, m := range []model.Mark{
		{StudentID: c.alice.ID, CourseID: c.databases.ID, Mark: 4},
		{StudentID: c.alice.ID, CourseID: c.algorithms.ID, Mark: 5},
		{StudentID: c.alice.ID, CourseID: c.physics.ID, Mark: 3},
		{StudentID: c.bob.ID, CourseID: c.databases.ID, Mark: 5},
		{StudentID: c.bob.ID, CourseID: c.algorithms.ID, Mark: 4},
		{StudentID: c.carol.ID, CourseID: c.physics.ID, Mark: 3},
		{StudentID: c.carol.ID, CourseID: c.databases.ID, Mark: 4},
		{StudentID: c.carol.ID, CourseID: c.algorithms.ID, Mark: 4},
	} {
		created, err := s.CreateMark(ctx, m)
		require.NoError(t, err)
		c.marks = append(c.marks, created)
	}

	return c
}

package fixture

import (
	"context"
	"fmt"

	"github.com/roach88/registrar/internal/model"
)

// Writer is the subset of the store a dataset is applied through.
// *store.Store satisfies it.
type Writer interface {
	CreateCurator(ctx context.Context, c model.Curator) (model.Curator, error)
	CreateGroup(ctx context.Context, g model.Group) (model.Group, error)
	CreateStudent(ctx context.Context, st model.Student) (model.Student, error)
	CreateCourse(ctx context.Context, c model.Course) (model.Course, error)
	CreateDegree(ctx context.Context, d model.Degree) (model.Degree, error)
	CreatePosition(ctx context.Context, p model.Position) (model.Position, error)
	CreateTeacher(ctx context.Context, t model.Teacher) (model.Teacher, error)
	CreateLesson(ctx context.Context, l model.Lesson) (model.Lesson, error)
	CreateMark(ctx context.Context, m model.Mark) (model.Mark, error)
}

// Refs maps each entity's refs to the ids the store assigned.
type Refs map[model.Entity]map[string]int64

// ID returns the id assigned to ref, or 0 if the ref is unknown.
func (r Refs) ID(entity model.Entity, ref string) int64 {
	return r[entity][ref]
}

// Count returns the number of refs recorded for entity.
func (r Refs) Count(entity model.Entity) int {
	return len(r[entity])
}

func (r Refs) set(entity model.Entity, ref string, id int64) {
	if ref == "" {
		return
	}
	if r[entity] == nil {
		r[entity] = map[string]int64{}
	}
	r[entity][ref] = id
}

// Apply validates the dataset and then creates its records in dependency
// order: curators, courses, degrees, positions, groups, students, teachers,
// lessons, marks. Within a list, records are created in file order, so ids
// follow the file.
//
// Validation failures write nothing. A constraint violation from the store
// stops the pass; records created before it remain.
func Apply(ctx context.Context, w Writer, ds *Dataset) (Refs, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	refs := Refs{}

	for i, c := range ds.Curators {
		created, err := w.CreateCurator(ctx, model.Curator{Name: c.Name})
		if err != nil {
			return refs, applyErr(model.EntityCurator, i, c.Ref, err)
		}
		refs.set(model.EntityCurator, c.Ref, created.ID)
	}

	for i, c := range ds.Courses {
		created, err := w.CreateCourse(ctx, model.Course{Title: c.Title})
		if err != nil {
			return refs, applyErr(model.EntityCourse, i, c.Ref, err)
		}
		refs.set(model.EntityCourse, c.Ref, created.ID)
	}

	for i, d := range ds.Degrees {
		created, err := w.CreateDegree(ctx, model.Degree{Title: d.Title})
		if err != nil {
			return refs, applyErr(model.EntityDegree, i, d.Ref, err)
		}
		refs.set(model.EntityDegree, d.Ref, created.ID)
	}

	for i, p := range ds.Positions {
		created, err := w.CreatePosition(ctx, model.Position{Title: p.Title})
		if err != nil {
			return refs, applyErr(model.EntityPosition, i, p.Ref, err)
		}
		refs.set(model.EntityPosition, p.Ref, created.ID)
	}

	for i, g := range ds.Groups {
		created, err := w.CreateGroup(ctx, model.Group{
			CuratorID:  refs.ID(model.EntityCurator, g.Curator),
			NameNumber: g.NameNumber,
		})
		if err != nil {
			return refs, applyErr(model.EntityGroup, i, g.Ref, err)
		}
		refs.set(model.EntityGroup, g.Ref, created.ID)
	}

	for i, s := range ds.Students {
		created, err := w.CreateStudent(ctx, model.Student{
			GroupID:  refs.ID(model.EntityGroup, s.Group),
			Name:     s.Name,
			Birthday: s.Birthday,
		})
		if err != nil {
			return refs, applyErr(model.EntityStudent, i, s.Ref, err)
		}
		refs.set(model.EntityStudent, s.Ref, created.ID)
	}

	for i, t := range ds.Teachers {
		created, err := w.CreateTeacher(ctx, model.Teacher{
			DegreeID:   refs.ID(model.EntityDegree, t.Degree),
			PositionID: refs.ID(model.EntityPosition, t.Position),
			Name:       t.Name,
		})
		if err != nil {
			return refs, applyErr(model.EntityTeacher, i, t.Ref, err)
		}
		refs.set(model.EntityTeacher, t.Ref, created.ID)
	}

	for i, l := range ds.Lessons {
		created, err := w.CreateLesson(ctx, model.Lesson{
			GroupID:   refs.ID(model.EntityGroup, l.Group),
			TeacherID: refs.ID(model.EntityTeacher, l.Teacher),
			CourseID:  refs.ID(model.EntityCourse, l.Course),
			Time:      l.Time,
		})
		if err != nil {
			return refs, applyErr(model.EntityLesson, i, l.Ref, err)
		}
		refs.set(model.EntityLesson, l.Ref, created.ID)
	}

	for i, m := range ds.Marks {
		created, err := w.CreateMark(ctx, model.Mark{
			CourseID:  refs.ID(model.EntityCourse, m.Course),
			StudentID: refs.ID(model.EntityStudent, m.Student),
			Mark:      m.Mark,
		})
		if err != nil {
			return refs, applyErr(model.EntityMark, i, m.Ref, err)
		}
		refs.set(model.EntityMark, m.Ref, created.ID)
	}

	return refs, nil
}

func applyErr(entity model.Entity, index int, ref string, err error) error {
	if ref != "" {
		return fmt.Errorf("apply %s %q: %w", entity, ref, err)
	}
	return fmt.Errorf("apply %s #%d: %w", entity, index+1, err)
}

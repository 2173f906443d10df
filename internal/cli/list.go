package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/model"
	"github.com/roach88/registrar/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Skip  int64
	Limit int64
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	valid := make([]string, 0, len(model.Entities))
	for _, e := range model.Entities {
		valid = append(valid, e.Resource())
	}

	cmd := &cobra.Command{
		Use:   "list <entity>",
		Short: "Print the records of one entity",
		Long: `Print the records of one entity in id order.

Entities: curators, groups, students, courses, marks, degrees, positions,
teachers, lessons.

Example:
  registrar list students --skip 20 --limit 10`,
		Args:          cobra.ExactArgs(1),
		ValidArgs:     valid,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, args[0], cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Skip, "skip", 0, "records to skip")
	cmd.Flags().Int64Var(&opts.Limit, "limit", rootOpts.Config.DefaultLimit, "maximum records to print (0 = all)")

	return cmd
}

func runList(opts *ListOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	entity, err := model.ParseEntity(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid entity", err)
	}
	if opts.Skip < 0 || opts.Limit < 0 {
		return NewExitError(ExitCommandError, "--skip and --limit must be non-negative")
	}

	st, err := opts.openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	table, err := listEntity(cmd.Context(), st, entity, store.Page{Offset: opts.Skip, Limit: opts.Limit})
	if err != nil {
		return formatter.Fail(fmt.Sprintf("failed to list %s", entity.Resource()), err)
	}
	return formatter.Table(table.data, table.headers, table.rows)
}

func listEntity(ctx context.Context, st *store.Store, entity model.Entity, page store.Page) (reportTable, error) {
	switch entity {
	case model.EntityCurator:
		rows, err := st.ListCurators(ctx, page)
		return tableOf(rows, []string{"ID", "NAME"}, func(r model.Curator) []string {
			return []string{itoa(r.ID), r.Name}
		}), err

	case model.EntityGroup:
		rows, err := st.ListGroups(ctx, page)
		return tableOf(rows, []string{"ID", "CURATOR_ID", "NAME_NUMBER"}, func(r model.Group) []string {
			return []string{itoa(r.ID), itoa(r.CuratorID), r.NameNumber}
		}), err

	case model.EntityStudent:
		rows, err := st.ListStudents(ctx, page)
		return tableOf(rows, []string{"ID", "GROUP_ID", "NAME", "BIRTHDAY"}, func(r model.Student) []string {
			return []string{itoa(r.ID), itoa(r.GroupID), r.Name, r.Birthday}
		}), err

	case model.EntityCourse:
		rows, err := st.ListCourses(ctx, page)
		return tableOf(rows, []string{"ID", "TITLE"}, func(r model.Course) []string {
			return []string{itoa(r.ID), r.Title}
		}), err

	case model.EntityMark:
		rows, err := st.ListMarks(ctx, page)
		return tableOf(rows, []string{"ID", "COURSE_ID", "STUDENT_ID", "MARK"}, func(r model.Mark) []string {
			return []string{itoa(r.ID), itoa(r.CourseID), itoa(r.StudentID), itoa(r.Mark)}
		}), err

	case model.EntityDegree:
		rows, err := st.ListDegrees(ctx, page)
		return tableOf(rows, []string{"ID", "TITLE"}, func(r model.Degree) []string {
			return []string{itoa(r.ID), r.Title}
		}), err

	case model.EntityPosition:
		rows, err := st.ListPositions(ctx, page)
		return tableOf(rows, []string{"ID", "TITLE"}, func(r model.Position) []string {
			return []string{itoa(r.ID), r.Title}
		}), err

	case model.EntityTeacher:
		rows, err := st.ListTeachers(ctx, page)
		return tableOf(rows, []string{"ID", "DEGREE_ID", "POSITION_ID", "NAME"}, func(r model.Teacher) []string {
			return []string{itoa(r.ID), itoa(r.DegreeID), itoa(r.PositionID), r.Name}
		}), err

	case model.EntityLesson:
		rows, err := st.ListLessons(ctx, page)
		return tableOf(rows, []string{"ID", "GROUP_ID", "TEACHER_ID", "COURSE_ID", "TIME"}, func(r model.Lesson) []string {
			return []string{itoa(r.ID), itoa(r.GroupID), itoa(r.TeacherID), itoa(r.CourseID), r.Time}
		}), err
	}
	return reportTable{}, fmt.Errorf("unknown entity %q", entity)
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/registrar/internal/model"
	"github.com/roach88/registrar/internal/store"
)

// Report names accepted by the report command.
const (
	ReportAverageGrades = "average-grades"
	ReportSchedule      = "schedule"
	ReportTeacherLoad   = "teacher-load"
	ReportCuratorLoad   = "curator-load"
	ReportTeacherInfo   = "teacher-info"
)

// ReportNames lists the reports in help order.
var ReportNames = []string{
	ReportAverageGrades,
	ReportSchedule,
	ReportTeacherLoad,
	ReportCuratorLoad,
	ReportTeacherInfo,
}

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	GroupID int64
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report <" + strings.Join(ReportNames, "|") + ">",
		Short: "Print a report",
		Long: `Print one of the reports:

  average-grades  mean mark per student, rounded to two decimals
  schedule        lessons of one group ordered by time (requires --group)
  teacher-load    distinct teacher and course pairs
  curator-load    students under each curator name
  teacher-info    teachers with degree and position

Example:
  registrar report schedule --group 1
  registrar report curator-load --format json`,
		Args:          cobra.ExactArgs(1),
		ValidArgs:     ReportNames,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, args[0], cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.GroupID, "group", 0, "group id (schedule report)")

	return cmd
}

// reportTable is a report rendered for output.
type reportTable struct {
	data    any
	headers []string
	rows    [][]string
}

func runReport(opts *ReportOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if name == ReportSchedule && opts.GroupID == 0 {
		return NewExitError(ExitCommandError, "schedule report requires --group")
	}
	if !isReportName(name) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown report %q: must be one of %s", name, strings.Join(ReportNames, ", ")))
	}

	st, err := opts.openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	table, err := buildReport(cmd.Context(), st, name, opts.GroupID)
	if err != nil {
		return formatter.Fail("failed to build report", err)
	}
	return formatter.Table(table.data, table.headers, table.rows)
}

func isReportName(name string) bool {
	for _, n := range ReportNames {
		if n == name {
			return true
		}
	}
	return false
}

func buildReport(ctx context.Context, st *store.Store, name string, groupID int64) (reportTable, error) {
	switch name {
	case ReportAverageGrades:
		rows, err := st.AverageGrades(ctx)
		return tableOf(rows, []string{"STUDENT_ID", "NAME", "AVERAGE_GRADE"}, func(r model.AverageGrade) []string {
			return []string{itoa(r.StudentID), r.Name, strconv.FormatFloat(r.AverageGrade, 'f', 2, 64)}
		}), err

	case ReportSchedule:
		rows, err := st.GroupSchedule(ctx, groupID)
		return tableOf(rows, []string{"LESSON_ID", "TIME", "GROUP", "COURSE", "TEACHER"}, func(r model.ScheduleEntry) []string {
			return []string{itoa(r.LessonID), r.Time, r.NameNumber, r.CourseTitle, r.TeacherName}
		}), err

	case ReportTeacherLoad:
		rows, err := st.TeacherLoad(ctx)
		return tableOf(rows, []string{"TEACHER", "COURSE"}, func(r model.TeacherLoad) []string {
			return []string{r.TeacherName, r.CourseTitle}
		}), err

	case ReportCuratorLoad:
		rows, err := st.CuratorLoad(ctx)
		return tableOf(rows, []string{"CURATOR", "STUDENTS", "COUNT"}, func(r model.CuratorLoad) []string {
			return []string{r.CuratorName, r.Students, itoa(r.StudCount)}
		}), err

	case ReportTeacherInfo:
		rows, err := st.TeacherInfo(ctx)
		return tableOf(rows, []string{"TEACHER_ID", "NAME", "DEGREE", "POSITION"}, func(r model.TeacherInfo) []string {
			return []string{itoa(r.TeacherID), r.Name, r.DegreeTitle, r.PositionTitle}
		}), err
	}
	return reportTable{}, fmt.Errorf("unknown report %q", name)
}

// tableOf renders records with one row per record.
func tableOf[T any](records []T, headers []string, row func(T) []string) reportTable {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, row(r))
	}
	return reportTable{data: records, headers: headers, rows: rows}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

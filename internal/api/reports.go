package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Filter routes. An unknown parent id yields an empty list, not a 404.

func (s *Server) groupStudents(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respond(c, s, func() (any, error) { return s.store.ListStudentsByGroup(c.Request.Context(), id) })
}

func (s *Server) teacherLessons(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respond(c, s, func() (any, error) { return s.store.ListLessonsByTeacher(c.Request.Context(), id) })
}

// studentMarks narrows to one course when ?course_id= is given.
func (s *Server) studentMarks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	raw, filtered := c.GetQuery("course_id")
	if !filtered {
		respond(c, s, func() (any, error) { return s.store.ListMarksByStudent(c.Request.Context(), id) })
		return
	}

	courseID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid course_id %q", raw))
		return
	}
	respond(c, s, func() (any, error) {
		return s.store.ListStudentMarksInCourse(c.Request.Context(), id, courseID)
	})
}

func (s *Server) courseMarks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respond(c, s, func() (any, error) { return s.store.ListMarksByCourse(c.Request.Context(), id) })
}

// Reports.

func (s *Server) averageGrades(c *gin.Context) {
	respond(c, s, func() (any, error) { return s.store.AverageGrades(c.Request.Context()) })
}

func (s *Server) groupSchedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respond(c, s, func() (any, error) { return s.store.GroupSchedule(c.Request.Context(), id) })
}

func (s *Server) teacherLoad(c *gin.Context) {
	respond(c, s, func() (any, error) { return s.store.TeacherLoad(c.Request.Context()) })
}

func (s *Server) curatorLoad(c *gin.Context) {
	respond(c, s, func() (any, error) { return s.store.CuratorLoad(c.Request.Context()) })
}

func (s *Server) teacherInfo(c *gin.Context) {
	respond(c, s, func() (any, error) { return s.store.TeacherInfo(c.Request.Context()) })
}

func respond(c *gin.Context, s *Server, query func() (any, error)) {
	rows, err := query()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roach88/registrar/internal/model"
	"github.com/roach88/registrar/internal/store"
)

// resource wires the five CRUD routes of one entity. T is the stored
// record, B the request body accepted by create and replace.
type resource[T any, B any] struct {
	entity model.Entity
	create func(*store.Store, context.Context, T) (T, error)
	get    func(*store.Store, context.Context, int64) (T, error)
	list   func(*store.Store, context.Context, store.Page) ([]T, error)
	update func(*store.Store, context.Context, int64, T) (T, error)
	remove func(*store.Store, context.Context, int64) error
	record func(B) T
}

func (res resource[T, B]) register(r *gin.Engine, s *Server) {
	g := r.Group("/" + res.entity.Resource())
	g.POST("/", func(c *gin.Context) { res.handleCreate(c, s) })
	g.GET("/", func(c *gin.Context) { res.handleList(c, s) })
	g.GET("/:id", func(c *gin.Context) { res.handleGet(c, s) })
	g.PUT("/:id", func(c *gin.Context) { res.handleUpdate(c, s) })
	g.DELETE("/:id", func(c *gin.Context) { res.handleDelete(c, s) })
}

func (res resource[T, B]) handleCreate(c *gin.Context, s *Server) {
	var body B
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}

	created, err := res.create(s.store, c.Request.Context(), res.record(body))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (res resource[T, B]) handleList(c *gin.Context, s *Server) {
	page, ok := s.page(c)
	if !ok {
		return
	}

	records, err := res.list(s.store, c.Request.Context(), page)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (res resource[T, B]) handleGet(c *gin.Context, s *Server) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rec, err := res.get(s.store, c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (res resource[T, B]) handleUpdate(c *gin.Context, s *Server) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body B
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}

	updated, err := res.update(s.store, c.Request.Context(), id, res.record(body))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (res resource[T, B]) handleDelete(c *gin.Context, s *Server) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := res.remove(s.store, c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s deleted successfully", res.entity)})
}

// Request bodies. Ids are assigned by the store and never read from a body.

type curatorBody struct {
	Name string `json:"name" binding:"required"`
}

type groupBody struct {
	CuratorID  int64  `json:"curator_id" binding:"required"`
	NameNumber string `json:"name_number" binding:"required"`
}

type studentBody struct {
	GroupID  int64  `json:"group_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Birthday string `json:"birthday" binding:"required"`
}

type titleBody struct {
	Title string `json:"title" binding:"required"`
}

// markBody leaves Mark unbound so every out-of-range value, 0 and a missing
// mark included, is rejected by mark_range_check.
type markBody struct {
	CourseID  int64 `json:"course_id" binding:"required"`
	StudentID int64 `json:"student_id" binding:"required"`
	Mark      int64 `json:"mark"`
}

type teacherBody struct {
	DegreeID   int64  `json:"degree_id" binding:"required"`
	PositionID int64  `json:"position_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

type lessonBody struct {
	GroupID   int64  `json:"group_id" binding:"required"`
	TeacherID int64  `json:"teacher_id" binding:"required"`
	CourseID  int64  `json:"course_id" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

var curators = resource[model.Curator, curatorBody]{
	entity: model.EntityCurator,
	create: (*store.Store).CreateCurator,
	get:    (*store.Store).GetCurator,
	list:   (*store.Store).ListCurators,
	update: (*store.Store).UpdateCurator,
	remove: (*store.Store).DeleteCurator,
	record: func(b curatorBody) model.Curator {
		return model.Curator{Name: b.Name}
	},
}

var groups = resource[model.Group, groupBody]{
	entity: model.EntityGroup,
	create: (*store.Store).CreateGroup,
	get:    (*store.Store).GetGroup,
	list:   (*store.Store).ListGroups,
	update: (*store.Store).UpdateGroup,
	remove: (*store.Store).DeleteGroup,
	record: func(b groupBody) model.Group {
		return model.Group{CuratorID: b.CuratorID, NameNumber: b.NameNumber}
	},
}

var students = resource[model.Student, studentBody]{
	entity: model.EntityStudent,
	create: (*store.Store).CreateStudent,
	get:    (*store.Store).GetStudent,
	list:   (*store.Store).ListStudents,
	update: (*store.Store).UpdateStudent,
	remove: (*store.Store).DeleteStudent,
	record: func(b studentBody) model.Student {
		return model.Student{GroupID: b.GroupID, Name: b.Name, Birthday: b.Birthday}
	},
}

var courses = resource[model.Course, titleBody]{
	entity: model.EntityCourse,
	create: (*store.Store).CreateCourse,
	get:    (*store.Store).GetCourse,
	list:   (*store.Store).ListCourses,
	update: (*store.Store).UpdateCourse,
	remove: (*store.Store).DeleteCourse,
	record: func(b titleBody) model.Course {
		return model.Course{Title: b.Title}
	},
}

var marks = resource[model.Mark, markBody]{
	entity: model.EntityMark,
	create: (*store.Store).CreateMark,
	get:    (*store.Store).GetMark,
	list:   (*store.Store).ListMarks,
	update: (*store.Store).UpdateMark,
	remove: (*store.Store).DeleteMark,
	record: func(b markBody) model.Mark {
		return model.Mark{CourseID: b.CourseID, StudentID: b.StudentID, Mark: b.Mark}
	},
}

var degrees = resource[model.Degree, titleBody]{
	entity: model.EntityDegree,
	create: (*store.Store).CreateDegree,
	get:    (*store.Store).GetDegree,
	list:   (*store.Store).ListDegrees,
	update: (*store.Store).UpdateDegree,
	remove: (*store.Store).DeleteDegree,
	record: func(b titleBody) model.Degree {
		return model.Degree{Title: b.Title}
	},
}

var positions = resource[model.Position, titleBody]{
	entity: model.EntityPosition,
	create: (*store.Store).CreatePosition,
	get:    (*store.Store).GetPosition,
	list:   (*store.Store).ListPositions,
	update: (*store.Store).UpdatePosition,
	remove: (*store.Store).DeletePosition,
	record: func(b titleBody) model.Position {
		return model.Position{Title: b.Title}
	},
}

var teachers = resource[model.Teacher, teacherBody]{
	entity: model.EntityTeacher,
	create: (*store.Store).CreateTeacher,
	get:    (*store.Store).GetTeacher,
	list:   (*store.Store).ListTeachers,
	update: (*store.Store).UpdateTeacher,
	remove: (*store.Store).DeleteTeacher,
	record: func(b teacherBody) model.Teacher {
		return model.Teacher{DegreeID: b.DegreeID, PositionID: b.PositionID, Name: b.Name}
	},
}

var lessons = resource[model.Lesson, lessonBody]{
	entity: model.EntityLesson,
	create: (*store.Store).CreateLesson,
	get:    (*store.Store).GetLesson,
	list:   (*store.Store).ListLessons,
	update: (*store.Store).UpdateLesson,
	remove: (*store.Store).DeleteLesson,
	record: func(b lessonBody) model.Lesson {
		return model.Lesson{GroupID: b.GroupID, TeacherID: b.TeacherID, CourseID: b.CourseID, Time: b.Time}
	},
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roach88/registrar/internal/model"
	"github.com/roach88/registrar/internal/store"
)

// DefaultLimit is the list page size when a request gives no limit.
const DefaultLimit = 100

// IDGenerator produces request ids.
type IDGenerator interface {
	Generate() string
}

// Options configures the HTTP layer. Zero values select defaults.
type Options struct {
	// Logger receives access and error logs. Defaults to slog.Default().
	Logger *slog.Logger

	// DefaultLimit caps list routes without ?limit=.
	DefaultLimit int64

	// RequestIDs generates X-Request-ID values for requests that carry none.
	// Defaults to UUIDv7.
	RequestIDs IDGenerator
}

// Server binds HTTP routes to a store.
type Server struct {
	store        *store.Store
	log          *slog.Logger
	defaultLimit int64
	ids          IDGenerator
}

// New creates a Server over st.
func New(st *store.Store, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultLimit
	}
	if opts.RequestIDs == nil {
		opts.RequestIDs = uuidGenerator{}
	}
	return &Server{
		store:        st,
		log:          opts.Logger,
		defaultLimit: opts.DefaultLimit,
		ids:          opts.RequestIDs,
	}
}

// Handler builds the gin engine with middleware and every route.
// The gin mode is global; callers set it with gin.SetMode beforehand.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(requestID(s.ids), accessLog(s.log), recovery(s.log))
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method Not Allowed"})
	})

	r.GET("/", s.index)

	curators.register(r, s)
	groups.register(r, s)
	students.register(r, s)
	courses.register(r, s)
	marks.register(r, s)
	degrees.register(r, s)
	positions.register(r, s)
	teachers.register(r, s)
	lessons.register(r, s)

	r.GET("/groups/:id/students", s.groupStudents)
	r.GET("/teachers/:id/lessons", s.teacherLessons)
	r.GET("/students/:id/marks", s.studentMarks)
	r.GET("/courses/:id/marks", s.courseMarks)

	r.GET("/groups/:id/schedule", s.groupSchedule)
	reports := r.Group("/reports")
	{
		reports.GET("/average-grades", s.averageGrades)
		reports.GET("/teacher-load", s.teacherLoad)
		reports.GET("/curator-load", s.curatorLoad)
		reports.GET("/teacher-info", s.teacherInfo)
	}

	return r
}

// reportRoutes is listed by the index route.
var reportRoutes = []string{
	"/reports/average-grades",
	"/groups/{id}/schedule",
	"/reports/teacher-load",
	"/reports/curator-load",
	"/reports/teacher-info",
}

func (s *Server) index(c *gin.Context) {
	resources := make([]string, 0, len(model.Entities))
	for _, e := range model.Entities {
		resources = append(resources, "/"+e.Resource()+"/")
	}
	c.JSON(http.StatusOK, gin.H{
		"name":      "registrar",
		"resources": resources,
		"reports":   reportRoutes,
	})
}

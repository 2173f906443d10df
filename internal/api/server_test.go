package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/testutil"
)

func TestIndex_Golden(t *testing.T) {
	env := newTestEnv(t, Options{})

	rec := env.do(t, http.MethodGet, "/", nil)
	requireStatus(t, rec, http.StatusOK)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "index", append(rec.Body.Bytes(), '\n'))
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t, Options{})

	rec := env.do(t, http.MethodGet, "/enrollments/", nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())

	rec = env.do(t, http.MethodPatch, "/curators/1", map[string]any{"name": "x"})
	requireStatus(t, rec, http.StatusMethodNotAllowed)
}

func TestRequestID_Generated(t *testing.T) {
	ids := testutil.NewSequentialIDGenerator("req")
	env := newTestEnv(t, Options{RequestIDs: ids})

	first := env.do(t, http.MethodGet, "/courses/", nil)
	second := env.do(t, http.MethodGet, "/courses/", nil)

	assert.Equal(t, "req-1", first.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-2", second.Header().Get(RequestIDHeader))
	assert.Contains(t, env.logs.String(), "request_id=req-2")
	assert.Equal(t, int64(2), ids.Count())

	// Replaying after a reset gives the same id and body.
	ids.Reset()
	replay := env.do(t, http.MethodGet, "/courses/", nil)
	assert.Equal(t, "req-1", replay.Header().Get(RequestIDHeader))
	assert.Equal(t, first.Body.String(), replay.Body.String())
}

func TestRequestID_Propagated(t *testing.T) {
	env := newTestEnv(t, Options{})

	req := httptest.NewRequest(http.MethodGet, "/courses/", nil)
	req.Header.Set(RequestIDHeader, "upstream-42")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-42", rec.Header().Get(RequestIDHeader))
}

func TestRequestID_DefaultIsUUIDv7(t *testing.T) {
	id := uuidGenerator{}.Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestAccessLog(t *testing.T) {
	env := newTestEnv(t, Options{})

	env.do(t, http.MethodGet, "/curators/999", nil)
	env.do(t, http.MethodGet, "/curators/", nil)

	lines := strings.Split(strings.TrimSpace(env.logs.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "level=WARN")
	assert.Contains(t, lines[0], "method=GET")
	assert.Contains(t, lines[0], "path=/curators/999")
	assert.Contains(t, lines[0], "status=404")
	assert.Contains(t, lines[0], "request_id=test-request")

	assert.Contains(t, lines[1], "level=INFO")
	assert.Contains(t, lines[1], "status=200")
}

func TestRecovery(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.handler.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := env.do(t, http.MethodGet, "/boom", nil)
	requireStatus(t, rec, http.StatusInternalServerError)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())

	logs := env.logs.String()
	assert.Contains(t, logs, "handler panic")
	assert.Contains(t, logs, "kaboom")
	assert.Contains(t, logs, "status=500")
}

func TestNew_Defaults(t *testing.T) {
	s := New(testutil.OpenStore(t), Options{})

	assert.Equal(t, int64(DefaultLimit), s.defaultLimit)
	assert.NotNil(t, s.log)
	assert.IsType(t, uuidGenerator{}, s.ids)
}

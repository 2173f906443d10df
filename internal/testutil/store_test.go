package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/fixture"
	"github.com/roach88/registrar/internal/model"
	"github.com/roach88/registrar/internal/store"
)

func TestSeedCampus_IDsFollowFileOrder(t *testing.T) {
	s := OpenStore(t)
	refs := SeedCampus(t, s)

	assert.Equal(t, int64(1), refs.ID(model.EntityCurator, "ivanova"))
	assert.Equal(t, int64(3), refs.ID(model.EntityCurator, "sidorova"))
	assert.Equal(t, int64(2), refs.ID(model.EntityGroup, "iu7-12"))
	assert.Equal(t, int64(4), refs.ID(model.EntityStudent, "dave"))
	assert.Equal(t, int64(2), refs.ID(model.EntityTeacher, "kuznetsova"))
	assert.Equal(t, int64(2), refs.ID(model.EntityLesson, "iu7-11-algo"))

	marks, err := s.ListMarks(context.Background(), store.Page{})
	require.NoError(t, err)
	assert.Len(t, marks, 8)
}

func TestWriteCampus(t *testing.T) {
	ds, err := fixture.Load(WriteCampus(t))
	require.NoError(t, err)
	assert.Equal(t, "campus", ds.Name)
	assert.Equal(t, 30, ds.Len())
}

package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImplantacaoMW/datacheckai/importer"
)

func TestSessionStoreLifecycle(t *testing.T) {
	s := newSessionStore(time.Minute)

	b := s.Create("mercadorias")
	require.NotEmpty(t, b.ID)
	assert.Equal(t, "mercadorias", b.LayoutID)

	b.Files["a.csv"] = &batchFile{
		Name:    "a.csv",
		Dataset: &importer.Dataset{Columns: []string{"x", "y"}},
	}

	got := s.Get(b.ID)
	require.NotNil(t, got)
	assert.Same(t, b, got)
	assert.Contains(t, got.Files, "a.csv")

	s.Delete(b.ID)
	assert.Nil(t, s.Get(b.ID))
	assert.Equal(t, 0, s.Len())
}

func TestSessionStoreExpiresBatches(t *testing.T) {
	s := newSessionStore(10 * time.Millisecond)

	b := s.Create("pessoas")
	require.NotNil(t, s.Get(b.ID))

	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, s.Get(b.ID))
	assert.Equal(t, 0, s.Len())
}

func TestSessionStoreUnknownID(t *testing.T) {
	s := newSessionStore(time.Minute)
	assert.Nil(t, s.Get("nunca-criado"))
}

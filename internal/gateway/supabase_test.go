package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	supa "github.com/supabase-community/supabase-go"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Supabase {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := supa.NewClient(srv.URL, "test-key", nil)
	require.NoError(t, err)
	return NewSupabase(client, timeout)
}

type row struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func TestSelectAllDecodesRows(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":2,"title":"second"},{"id":1,"title":"first"}]`))
	}, time.Second)

	var rows []row
	err := g.SelectAll(context.Background(), "posts", &rows,
		Order{Column: "created_at", Ascending: false})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].ID)
}

func TestSelectOneZeroRowsIsNotFound(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}, time.Second)

	var out row
	err := g.SelectOne(context.Background(), "posts", "id", "99", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlowCallHitsTimeout(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[]`))
	}, 50*time.Millisecond)

	var rows []row
	err := g.SelectAll(context.Background(), "posts", &rows)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestPublicURLPointsIntoBucket(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {}, time.Second)

	url, err := g.PublicURL("posts", "thumbnails/abc.png")
	require.NoError(t, err)
	assert.Contains(t, url, "posts")
	assert.Contains(t, url, "thumbnails/abc.png")
}

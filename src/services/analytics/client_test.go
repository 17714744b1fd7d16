package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackPostsAndCloseDrains(t *testing.T) {
	var mu sync.Mutex
	var got []Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ev Event
		_ = json.NewDecoder(r.Body).Decode(&ev)
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.Track(context.Background(), "pdf_export", map[string]interface{}{"page_count": 3})
	c.Track(context.Background(), "pdf_export", map[string]interface{}{"page_count": 4})
	require.NoError(t, c.Close(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, "pdf_export", got[0].Name)
	assert.NotEmpty(t, got[0].ID)

	c.Track(context.Background(), "after_close", nil)
	assert.Len(t, got, 2)
}

func TestLogOnlyClient(t *testing.T) {
	c := New("", nil)
	c.Track(context.Background(), "pdf_export", nil)
	assert.NoError(t, c.Close(context.Background()))
}

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordMutation("posts", "add")
	c.RecordMutation("posts", "add")
	c.RecordLoad("LLN_POSTS", LoadCorrupt)
	c.RecordWrite("LLN_POSTS", nil, time.Millisecond)
	c.RecordWrite("LLN_POSTS", errors.New("disk full"), time.Millisecond)
	c.RecordRPC("/masterbook.v1.PostService/ListPosts", "ok", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.mutations.WithLabelValues("posts", "add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.loads.WithLabelValues("LLN_POSTS", LoadCorrupt)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.writes.WithLabelValues("LLN_POSTS", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.writes.WithLabelValues("LLN_POSTS", "error")))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "masterbook_store_mutations_total"))
	assert.True(t, strings.Contains(body, "masterbook_rpc_requests_total"))
}

func TestNopSatisfiesRecorder(t *testing.T) {
	var r Recorder = Nop{}
	r.RecordMutation("masters", "add")
	r.RecordWrite("LLN_MASTERS", nil, 0)
}

package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Mutaciones(t *testing.T) {
	r := NewRecorder()
	r.MutationApplied("item", "add")
	r.MutationApplied("item", "add")
	r.MutationRejected("purchase", "add", "validation")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.mutations.WithLabelValues("item", "add")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.mutations.WithLabelValues("client", "add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rejected.WithLabelValues("purchase", "add", "validation")))
}

func TestRecorder_Peticiones(t *testing.T) {
	r := NewRecorder()
	r.ObserveRequest("GET", "/api/items", 200, 15*time.Millisecond)
	r.ObserveRequest("GET", "/api/items", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requests.WithLabelValues("GET", "/api/items", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.requestDuration))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.MutationApplied("client", "edit")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `stockboard_mutations_total{entity="client",op="edit"} 1`))
}

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitIsIdempotent(t *testing.T) {
	require.NoError(t, Init())
	require.NoError(t, Init())
}

func TestObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(StoreQueriesTotal.WithLabelValues("villas", "false"))
	ObserveQuery("villas", false)
	after := testutil.ToFloat64(StoreQueriesTotal.WithLabelValues("villas", "false"))
	assert.Equal(t, before+1, after)
}

func TestObserveWrite(t *testing.T) {
	okBefore := testutil.ToFloat64(StoreWritesTotal.WithLabelValues("villas", "insert", "ok"))
	errBefore := testutil.ToFloat64(StoreWritesTotal.WithLabelValues("villas", "insert", "error"))

	ObserveWrite("villas", "insert", nil)
	ObserveWrite("villas", "insert", errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(StoreWritesTotal.WithLabelValues("villas", "insert", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(StoreWritesTotal.WithLabelValues("villas", "insert", "error")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	require.NoError(t, Init())
	ObserveQuery("villa_numbers", true)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(body), "villa_store_queries_total")
}

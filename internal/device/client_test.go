package device

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/telemetry/dataset", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"stats": {"lifetime": {"shotCount": 12}},
			"weekly": [{"day": "Mon", "shots": 3}],
			"hourlyDistribution": [],
			"brewHistory": [],
			"powerHistory": [],
			"dailyHistory": []
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, zap.NewNop())
	ds, err := c.FetchDataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, ds.Stats.Lifetime.ShotCount)
	require.Len(t, ds.Weekly, 1)
	assert.Equal(t, 3, ds.Weekly[0].Shots)
}

func TestFetchDataset_MachineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, zap.NewNop())
	_, err := c.FetchDataset(context.Background())
	assert.Error(t, err)
}

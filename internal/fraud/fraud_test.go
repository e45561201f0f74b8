package fraud

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_IsFraudulent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token secret", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/check/CL001":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"fraudulent":true}`))
		case "/check/CL002":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"fraudulent":false}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret", 5*time.Second)

	fraudulent, err := c.IsFraudulent(context.Background(), "CL001")
	require.NoError(t, err)
	assert.True(t, fraudulent)

	fraudulent, err = c.IsFraudulent(context.Background(), "CL002")
	require.NoError(t, err)
	assert.False(t, fraudulent)

	_, err = c.IsFraudulent(context.Background(), "CL999")
	assert.Error(t, err)
}

func TestClient_IsFraudulent_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "", 20*time.Millisecond)

	_, err := c.IsFraudulent(context.Background(), "CL001")
	assert.Error(t, err)
}

func TestStatic(t *testing.T) {
	gate := NewStatic("CL001")

	fraudulent, err := gate.IsFraudulent(context.Background(), "CL001")
	require.NoError(t, err)
	assert.True(t, fraudulent)

	fraudulent, err = gate.IsFraudulent(context.Background(), "CL002")
	require.NoError(t, err)
	assert.False(t, fraudulent)

	gate.Flag("CL002")

	fraudulent, err = gate.IsFraudulent(context.Background(), "CL002")
	require.NoError(t, err)
	assert.True(t, fraudulent)
}

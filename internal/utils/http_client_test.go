package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(nil)
	client2 := NewHTTPClient(nil)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_StampsRequestID(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(RequestIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(fixedID("req-1"))

	_, err := client.R().Get(srv.URL)
	require.NoError(t, err)

	// an explicit header is left untouched
	_, err = client.R().SetHeader(RequestIDHeader, "mine").Get(srv.URL)
	require.NoError(t, err)

	assert.Equal(t, []string{"req-1", "mine"}, got)
}

func TestHTTPClient_RequestIDFromContext(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
	}))
	defer srv.Close()

	ctx := WithRequestID(context.Background(), "from-ctx")
	_, err := NewHTTPClient(fixedID("generated")).R().SetContext(ctx).Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "from-ctx", got)
}

func TestHTTPClient_NoGenerator(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(nil).R().Get(srv.URL)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}

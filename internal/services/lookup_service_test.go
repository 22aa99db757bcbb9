package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLookupRelaysSuccessBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/product/4006381333931", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"barcode":"4006381333931","description":"Stabilo pen"}`))
	}))
	defer upstream.Close()

	svc := NewLookupService(upstream.URL, 5*time.Second)

	result, err := svc.Lookup("4006381333931")
	require.NoError(t, err)
	require.True(t, result.OK())
	require.Equal(t, http.StatusOK, result.StatusCode)
	require.Equal(t, "application/json", result.ContentType)
	require.JSONEq(t, `{"barcode":"4006381333931","description":"Stabilo pen"}`, string(result.Body))
}

func TestLookupRelaysUpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"product not found"}`))
	}))
	defer upstream.Close()

	svc := NewLookupService(upstream.URL, 5*time.Second)

	result, err := svc.Lookup("0000000000000")
	require.NoError(t, err)
	require.False(t, result.OK())
	require.Equal(t, http.StatusNotFound, result.StatusCode)
	require.JSONEq(t, `{"error":"product not found"}`, string(result.Body))
}

func TestLookupUnreachableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	svc := NewLookupService(upstream.URL, time.Second)

	_, err := svc.Lookup("4006381333931")
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestLookupEscapesBarcode(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	svc := NewLookupService(upstream.URL, 5*time.Second)

	_, err := svc.Lookup("abc/../def")
	require.NoError(t, err)
	require.Equal(t, "/product/abc%2F..%2Fdef", gotPath)
}

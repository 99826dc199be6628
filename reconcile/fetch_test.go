package reconcile_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/codearena/backend/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllPreservesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("body of " + r.URL.Path))
	}))
	defer srv.Close()

	fetcher := reconcile.NewFetcher(2)
	results := fetcher.FetchAll(context.Background(), []string{
		srv.URL + "/a",
		srv.URL + "/b",
		srv.URL + "/c",
	})

	require.Len(t, results, 3)
	require.NotNil(t, results[0])
	assert.Equal(t, "body of /a", *results[0])
	require.NotNil(t, results[1])
	assert.Equal(t, "body of /b", *results[1])
	require.NotNil(t, results[2])
	assert.Equal(t, "body of /c", *results[2])
}

func TestFetchAllToleratesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	fetcher := reconcile.NewFetcher(2)
	results := fetcher.FetchAll(context.Background(), []string{
		srv.URL + "/ok",
		srv.URL + "/fail",
		"", // empty address counts as absent, no request issued
		srv.URL + "/ok",
	})

	require.Len(t, results, 4)
	assert.NotNil(t, results[0])
	assert.Nil(t, results[1])
	assert.Nil(t, results[2])
	assert.NotNil(t, results[3])
}

func TestFetchAllBoundsInFlightRequests(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cur := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			max := maxInFlight.Load()
			if cur <= max || maxInFlight.CompareAndSwap(max, cur) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	limit := 2
	fetcher := reconcile.NewFetcher(limit)
	urls := make([]string, 8)
	for i := range urls {
		urls[i] = srv.URL + "/r"
	}

	results := fetcher.FetchAll(context.Background(), urls)

	for i := range results {
		assert.NotNil(t, results[i])
	}
	assert.LessOrEqual(t, maxInFlight.Load(), int32(limit))
}

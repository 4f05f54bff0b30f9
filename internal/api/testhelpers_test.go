package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/hollowdex/steamgriddb-go/internal/request"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

// newExecutor points an executor at a catalog stub.
func newExecutor(srv *httptest.Server) *request.Executor {
	return request.New(request.Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
}

// okEnvelope wraps data in a success envelope the way the catalog does.
func okEnvelope(data any) []byte {
	raw, _ := json.Marshal(data)
	b, _ := json.Marshal(types.Envelope{Success: true, Data: raw})
	return b
}

// countRT is an http.RoundTripper that records how often it is reached
// (simulates network failure while proving whether a call went out).
type countRT struct{ calls int32 }

func (c *countRT) RoundTrip(*http.Request) (*http.Response, error) {
	atomic.AddInt32(&c.calls, 1)
	return nil, fmt.Errorf("boom")
}

func (c *countRT) count() int32 { return atomic.LoadInt32(&c.calls) }

// newOfflineExecutor returns an executor whose transport fails every call,
// plus the counter proving whether the network was touched at all.
func newOfflineExecutor() (*request.Executor, *countRT) {
	rt := &countRT{}
	exec := request.New(request.Options{
		BaseURL:    "http://catalog.invalid",
		HTTPClient: &http.Client{Transport: rt},
	})
	return exec, rt
}

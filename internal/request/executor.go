// Package request implements the single HTTP execution path shared by all
// catalog operations: one attempt per call, envelope decoding, and failure
// classification.
package request

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

// File is one file part of a multipart upload.
type File struct {
	Field  string
	Name   string
	Reader io.Reader
}

// Spec describes a single catalog request. Specs are transient values:
// built by an operation, executed once, discarded.
type Spec struct {
	Op     string // operation name used in errors and metrics
	Method string
	Path   string // catalog path relative to the base URL, e.g. "/grids/game/42"
	Query  url.Values
	Form   map[string]string
	Files  []File
}

// Options configure an Executor.
type Options struct {
	BaseURL    string
	APIKey     string
	Headers    map[string]string
	UserAgent  string
	HTTPClient *http.Client
}

// Executor performs catalog requests. It is safe for concurrent use and
// issues exactly one HTTP attempt per Spec; callers own any retry policy.
type Executor struct {
	rc *resty.Client
}

// New builds an Executor around the supplied HTTP client. Custom headers
// are applied first; a configured API key then claims the Authorization
// header for itself.
func New(opts Options) *Executor {
	rc := resty.New()
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	}
	rc.SetBaseURL(strings.TrimRight(opts.BaseURL, "/"))
	rc.SetHeaders(opts.Headers)
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.APIKey != "" {
		rc.SetAuthToken(opts.APIKey)
	}
	return &Executor{rc: rc}
}

// Do executes one request and enforces the envelope contract:
//
//   - a body that does not parse as JSON is a malformed response, whatever
//     the HTTP status code was;
//   - a parsed envelope governs over the status code: success=false is an
//     api error, success=true is a success;
//   - with success=true, the envelope's data field is decoded into out
//     when out is non-nil.
func (e *Executor) Do(ctx context.Context, s Spec, out any) error {
	r := e.rc.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if len(s.Query) > 0 {
		r.SetQueryParamsFromValues(s.Query)
	}
	if len(s.Form) > 0 {
		r.SetFormData(s.Form)
	}
	for _, f := range s.Files {
		r.SetFileReader(f.Field, f.Name, f.Reader)
	}

	requestsTotal.WithLabelValues(s.Op).Inc()

	start := time.Now()
	resp, err := r.Execute(s.Method, s.Path)
	requestDuration.WithLabelValues(s.Op).Observe(time.Since(start).Seconds())
	if err != nil {
		return e.fail(apierr.NewTransport(s.Op, err))
	}

	var env types.Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return e.fail(apierr.NewMalformedResponse(s.Op, resp.StatusCode(), err))
	}
	if !env.Success {
		return e.fail(apierr.NewAPIError(s.Op, resp.StatusCode(), env.Errors))
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return e.fail(apierr.NewMalformedResponse(s.Op, resp.StatusCode(), err))
		}
	}
	return nil
}

func (e *Executor) fail(err *apierr.Error) error {
	requestFailuresTotal.WithLabelValues(err.Op, kindLabel(err.Kind)).Inc()
	return err
}

package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
	"github.com/hollowdex/steamgriddb-go/internal/request"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

// SearchGames runs autocomplete search for games matching term. The term
// is path-escaped, so spaces and slashes are safe.
func SearchGames(ctx context.Context, exec *request.Executor, term string) ([]types.SearchResult, error) {
	const op = "search games"
	if err := ctx.Err(); err != nil {
		return nil, apierr.NewTransport(op, err)
	}
	if term == "" {
		return nil, apierr.NewInvalidArgument(op, errors.New("search term is required"))
	}
	var results []types.SearchResult
	err := exec.Do(ctx, request.Spec{
		Op:     op,
		Method: http.MethodGet,
		Path:   "/search/autocomplete/" + url.PathEscape(term),
	}, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
	"github.com/hollowdex/steamgriddb-go/internal/request"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

// GetLogos lists logo artwork for one game.
func GetLogos(ctx context.Context, exec *request.Executor, req types.LogosRequest) ([]types.Logo, error) {
	const op = "get logos"
	if err := ctx.Err(); err != nil {
		return nil, apierr.NewTransport(op, err)
	}
	if err := req.Type.Validate(); err != nil {
		return nil, apierr.NewInvalidArgument(op, err)
	}
	if err := req.Filters.Validate(); err != nil {
		return nil, apierr.NewInvalidArgument(op, err)
	}
	var logos []types.Logo
	err := exec.Do(ctx, request.Spec{
		Op:     op,
		Method: http.MethodGet,
		Path:   "/logos/" + string(req.Type) + "/" + strconv.Itoa(req.ID),
		Query:  req.Filters.Values(),
	}, &logos)
	if err != nil {
		return nil, err
	}
	return logos, nil
}

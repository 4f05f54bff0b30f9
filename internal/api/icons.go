package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
	"github.com/hollowdex/steamgriddb-go/internal/request"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

// GetIcons lists icon artwork for one game.
func GetIcons(ctx context.Context, exec *request.Executor, req types.IconsRequest) ([]types.Icon, error) {
	const op = "get icons"
	if err := ctx.Err(); err != nil {
		return nil, apierr.NewTransport(op, err)
	}
	if err := req.Type.Validate(); err != nil {
		return nil, apierr.NewInvalidArgument(op, err)
	}
	if err := req.Filters.Validate(); err != nil {
		return nil, apierr.NewInvalidArgument(op, err)
	}
	var icons []types.Icon
	err := exec.Do(ctx, request.Spec{
		Op:     op,
		Method: http.MethodGet,
		Path:   "/icons/" + string(req.Type) + "/" + strconv.Itoa(req.ID),
		Query:  req.Filters.Values(),
	}, &icons)
	if err != nil {
		return nil, err
	}
	return icons, nil
}

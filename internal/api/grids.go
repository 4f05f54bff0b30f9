package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
	"github.com/hollowdex/steamgriddb-go/internal/request"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

// GetGrids lists grid artwork for one game, optionally narrowed by filters.
func GetGrids(ctx context.Context, exec *request.Executor, req types.GridsRequest) ([]types.Grid, error) {
	const op = "get grids"
	if err := ctx.Err(); err != nil {
		return nil, apierr.NewTransport(op, err)
	}
	if err := req.Type.Validate(); err != nil {
		return nil, apierr.NewInvalidArgument(op, err)
	}
	if err := req.Filters.Validate(); err != nil {
		return nil, apierr.NewInvalidArgument(op, err)
	}
	var grids []types.Grid
	err := exec.Do(ctx, request.Spec{
		Op:     op,
		Method: http.MethodGet,
		Path:   "/grids/" + string(req.Type) + "/" + strconv.Itoa(req.ID),
		Query:  req.Filters.Values(),
	}, &grids)
	if err != nil {
		return nil, err
	}
	return grids, nil
}

// VoteGrid casts one up or down vote on a grid.
func VoteGrid(ctx context.Context, exec *request.Executor, req types.VoteRequest) error {
	const op = "vote grid"
	if err := ctx.Err(); err != nil {
		return apierr.NewTransport(op, err)
	}
	if err := req.Direction.Validate(); err != nil {
		return apierr.NewInvalidArgument(op, err)
	}
	return exec.Do(ctx, request.Spec{
		Op:     op,
		Method: http.MethodPost,
		Path:   "/grids/vote/" + string(req.Direction) + "/" + strconv.Itoa(req.GridID),
	}, nil)
}

// UploadGrid submits new grid artwork as a multipart form with the
// game id, the style, and the image bytes.
func UploadGrid(ctx context.Context, exec *request.Executor, req types.UploadGridRequest) error {
	const op = "upload grid"
	if err := ctx.Err(); err != nil {
		return apierr.NewTransport(op, err)
	}
	if req.Data == nil {
		return apierr.NewInvalidArgument(op, errors.New("grid image data is required"))
	}
	filename := req.Filename
	if filename == "" {
		filename = "grid"
	}
	return exec.Do(ctx, request.Spec{
		Op:     op,
		Method: http.MethodPost,
		Path:   "/grids",
		Form: map[string]string{
			"game_id": strconv.Itoa(req.GameID),
			"style":   req.Style,
		},
		Files: []request.File{{Field: "grid", Name: filename, Reader: req.Data}},
	}, nil)
}

// DeleteGrids removes grids by id. The ids travel comma-joined in the
// request path, so one call can delete several grids.
func DeleteGrids(ctx context.Context, exec *request.Executor, gridIDs []int) error {
	const op = "delete grids"
	if err := ctx.Err(); err != nil {
		return apierr.NewTransport(op, err)
	}
	if len(gridIDs) == 0 {
		return apierr.NewInvalidArgument(op, errors.New("at least one grid id is required"))
	}
	ids := make([]string, len(gridIDs))
	for i, id := range gridIDs {
		ids[i] = strconv.Itoa(id)
	}
	return exec.Do(ctx, request.Spec{
		Op:     op,
		Method: http.MethodDelete,
		Path:   "/grids/" + strings.Join(ids, ","),
	}, nil)
}

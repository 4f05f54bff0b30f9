package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
	"github.com/hollowdex/steamgriddb-go/internal/request"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

// GetHeroes lists hero banner artwork for one game.
func GetHeroes(ctx context.Context, exec *request.Executor, req types.HeroesRequest) ([]types.Hero, error) {
	const op = "get heroes"
	if err := ctx.Err(); err != nil {
		return nil, apierr.NewTransport(op, err)
	}
	if err := req.Type.Validate(); err != nil {
		return nil, apierr.NewInvalidArgument(op, err)
	}
	if err := req.Filters.Validate(); err != nil {
		return nil, apierr.NewInvalidArgument(op, err)
	}
	var heroes []types.Hero
	err := exec.Do(ctx, request.Spec{
		Op:     op,
		Method: http.MethodGet,
		Path:   "/heroes/" + string(req.Type) + "/" + strconv.Itoa(req.ID),
		Query:  req.Filters.Values(),
	}, &heroes)
	if err != nil {
		return nil, err
	}
	return heroes, nil
}

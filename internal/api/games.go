// Package api implements one function per catalog endpoint. Functions
// validate their arguments, describe the request, and hand it to the
// shared executor; they never retry and never touch the network on
// invalid input.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
	"github.com/hollowdex/steamgriddb-go/internal/request"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

// GetGame looks up one game by catalog id or Steam app id.
func GetGame(ctx context.Context, exec *request.Executor, req types.GameRequest) (*types.Game, error) {
	const op = "get game"
	if err := ctx.Err(); err != nil {
		return nil, apierr.NewTransport(op, err)
	}
	if err := req.Type.Validate(); err != nil {
		return nil, apierr.NewInvalidArgument(op, err)
	}
	var game types.Game
	err := exec.Do(ctx, request.Spec{
		Op:     op,
		Method: http.MethodGet,
		Path:   "/games/" + string(req.Type) + "/" + strconv.Itoa(req.ID),
	}, &game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

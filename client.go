package steamgriddb

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hollowdex/steamgriddb-go/internal/api"
	"github.com/hollowdex/steamgriddb-go/internal/request"
	"github.com/hollowdex/steamgriddb-go/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the catalog API. It is immutable after construction and
// safe for concurrent use; every method is one independent round trip with
// no internal ordering, batching or retries.
type Client struct {
	cfg  Config
	http *http.Client
	exec *request.Executor
	log  zerolog.Logger
}

// New constructs a Client from a bare API key, with defaults for
// everything else. An empty key yields an unauthenticated client.
func New(apiKey string, opts ...Option) (*Client, error) {
	return NewWithConfig(Config{APIKey: apiKey}, opts...)
}

// NewFromEnv constructs a Client from STEAMGRIDDB_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig constructs a Client from a full Config. Options are
// applied after the config, in order, and may override it.
func NewWithConfig(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log.Logger,
	}

	// Auto-enable debug via config or env variable without changing code.
	if cfg.Debug || debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.cfg.APIKey == "" {
		c.log.Warn().Msg("no API key configured; the catalog will reject calls that need auth")
	} else if headerPresent(c.cfg.Headers, "Authorization") {
		c.log.Warn().Msg("both an API key and an Authorization header are configured; the key wins")
	}

	c.exec = request.New(request.Options{
		BaseURL:    c.cfg.BaseURL,
		APIKey:     c.cfg.APIKey,
		Headers:    c.cfg.Headers,
		UserAgent:  c.cfg.UserAgent,
		HTTPClient: c.http,
	})
	return c, nil
}

// headerPresent reports whether the header map carries key, under any
// casing.
func headerPresent(headers map[string]string, key string) bool {
	for k := range headers {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// --------------------------------------------------------------------
// Game operations - delegated to internal/api
// --------------------------------------------------------------------

// GetGame looks up one game by catalog id or Steam app id.
func (c *Client) GetGame(ctx context.Context, req GameRequest) (*Game, error) {
	return api.GetGame(ctx, c.exec, req)
}

// GetGameByID looks up one game by the catalog's own numeric id.
func (c *Client) GetGameByID(ctx context.Context, gameID int) (*Game, error) {
	return api.GetGame(ctx, c.exec, types.GameRequest{Type: types.GameIDTypeID, ID: gameID})
}

// GetGameBySteamAppID looks up one game by its Steam app id.
func (c *Client) GetGameBySteamAppID(ctx context.Context, appID int) (*Game, error) {
	return api.GetGame(ctx, c.exec, types.GameRequest{Type: types.GameIDTypeSteam, ID: appID})
}

// --------------------------------------------------------------------
// Grid operations - delegated to internal/api
// --------------------------------------------------------------------

// GetGrids lists grid artwork for one game, optionally narrowed by
// filters.
func (c *Client) GetGrids(ctx context.Context, req GridsRequest) ([]Grid, error) {
	return api.GetGrids(ctx, c.exec, req)
}

// GetGridsByGameID lists grids for a catalog game id, optionally limited
// to the given styles.
func (c *Client) GetGridsByGameID(ctx context.Context, gameID int, styles ...string) ([]Grid, error) {
	return api.GetGrids(ctx, c.exec, types.GridsRequest{
		Type:    types.ImageIDTypeGame,
		ID:      gameID,
		Filters: types.Filters{Styles: styles},
	})
}

// GetGridsBySteamAppID lists grids for a Steam app id, optionally limited
// to the given styles.
func (c *Client) GetGridsBySteamAppID(ctx context.Context, appID int, styles ...string) ([]Grid, error) {
	return api.GetGrids(ctx, c.exec, types.GridsRequest{
		Type:    types.ImageIDTypeSteam,
		ID:      appID,
		Filters: types.Filters{Styles: styles},
	})
}

// VoteGrid casts one vote on a grid.
func (c *Client) VoteGrid(ctx context.Context, req VoteRequest) error {
	return api.VoteGrid(ctx, c.exec, req)
}

// UpvoteGrid casts an up vote on a grid.
func (c *Client) UpvoteGrid(ctx context.Context, gridID int) error {
	return api.VoteGrid(ctx, c.exec, types.VoteRequest{Direction: types.VoteUp, GridID: gridID})
}

// DownvoteGrid casts a down vote on a grid.
func (c *Client) DownvoteGrid(ctx context.Context, gridID int) error {
	return api.VoteGrid(ctx, c.exec, types.VoteRequest{Direction: types.VoteDown, GridID: gridID})
}

// UploadGrid submits new grid artwork for a game.
func (c *Client) UploadGrid(ctx context.Context, req UploadGridRequest) error {
	return api.UploadGrid(ctx, c.exec, req)
}

// DeleteGrids removes grids by id in a single call.
func (c *Client) DeleteGrids(ctx context.Context, gridIDs ...int) error {
	return api.DeleteGrids(ctx, c.exec, gridIDs)
}

// --------------------------------------------------------------------
// Hero, logo and icon operations - delegated to internal/api
// --------------------------------------------------------------------

// GetHeroes lists hero banner artwork for one game.
func (c *Client) GetHeroes(ctx context.Context, req HeroesRequest) ([]Hero, error) {
	return api.GetHeroes(ctx, c.exec, req)
}

// GetHeroesByGameID lists hero banners for a catalog game id.
func (c *Client) GetHeroesByGameID(ctx context.Context, gameID int) ([]Hero, error) {
	return api.GetHeroes(ctx, c.exec, types.HeroesRequest{Type: types.ImageIDTypeGame, ID: gameID})
}

// GetHeroesBySteamAppID lists hero banners for a Steam app id.
func (c *Client) GetHeroesBySteamAppID(ctx context.Context, appID int) ([]Hero, error) {
	return api.GetHeroes(ctx, c.exec, types.HeroesRequest{Type: types.ImageIDTypeSteam, ID: appID})
}

// GetLogos lists logo artwork for one game.
func (c *Client) GetLogos(ctx context.Context, req LogosRequest) ([]Logo, error) {
	return api.GetLogos(ctx, c.exec, req)
}

// GetLogosByGameID lists logos for a catalog game id.
func (c *Client) GetLogosByGameID(ctx context.Context, gameID int) ([]Logo, error) {
	return api.GetLogos(ctx, c.exec, types.LogosRequest{Type: types.ImageIDTypeGame, ID: gameID})
}

// GetLogosBySteamAppID lists logos for a Steam app id.
func (c *Client) GetLogosBySteamAppID(ctx context.Context, appID int) ([]Logo, error) {
	return api.GetLogos(ctx, c.exec, types.LogosRequest{Type: types.ImageIDTypeSteam, ID: appID})
}

// GetIcons lists icon artwork for one game.
func (c *Client) GetIcons(ctx context.Context, req IconsRequest) ([]Icon, error) {
	return api.GetIcons(ctx, c.exec, req)
}

// GetIconsByGameID lists icons for a catalog game id.
func (c *Client) GetIconsByGameID(ctx context.Context, gameID int) ([]Icon, error) {
	return api.GetIcons(ctx, c.exec, types.IconsRequest{Type: types.ImageIDTypeGame, ID: gameID})
}

// GetIconsBySteamAppID lists icons for a Steam app id.
func (c *Client) GetIconsBySteamAppID(ctx context.Context, appID int) ([]Icon, error) {
	return api.GetIcons(ctx, c.exec, types.IconsRequest{Type: types.ImageIDTypeSteam, ID: appID})
}

// --------------------------------------------------------------------
// Search operations - delegated to internal/api
// --------------------------------------------------------------------

// SearchGames runs autocomplete search for games matching term.
func (c *Client) SearchGames(ctx context.Context, term string) ([]SearchResult, error) {
	return api.SearchGames(ctx, c.exec, term)
}

package steamgriddb

import "github.com/hollowdex/steamgriddb-go/internal/types"

// Public type aliases so SDK consumers can import only this package.
// Requests
type (
	GameRequest       = types.GameRequest
	ImagesRequest     = types.ImagesRequest
	GridsRequest      = types.GridsRequest
	HeroesRequest     = types.HeroesRequest
	LogosRequest      = types.LogosRequest
	IconsRequest      = types.IconsRequest
	VoteRequest       = types.VoteRequest
	UploadGridRequest = types.UploadGridRequest

	// Domain entities
	Game         = types.Game
	SearchResult = types.SearchResult
	Image        = types.Image
	Grid         = types.Grid
	Hero         = types.Hero
	Logo         = types.Logo
	Icon         = types.Icon

	// Listing filters
	Filters  = types.Filters
	Tristate = types.Tristate

	// Identifier namespaces and vote directions
	GameIDType    = types.GameIDType
	ImageIDType   = types.ImageIDType
	VoteDirection = types.VoteDirection
)

// Enumeration values re-exported alongside their types.
const (
	GameIDTypeID    = types.GameIDTypeID
	GameIDTypeSteam = types.GameIDTypeSteam

	ImageIDTypeGame  = types.ImageIDTypeGame
	ImageIDTypeSteam = types.ImageIDTypeSteam

	VoteUp   = types.VoteUp
	VoteDown = types.VoteDown

	TristateUnset = types.TristateUnset
	TristateFalse = types.TristateFalse
	TristateTrue  = types.TristateTrue
	TristateAny   = types.TristateAny
)

// Errors re-exported in errors.go

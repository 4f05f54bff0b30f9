package types

import "io"

// ------------------------------
// Request Types
// ------------------------------

// GameRequest identifies one game to look up.
type GameRequest struct {
	Type GameIDType
	ID   int
}

// ImagesRequest identifies one game's artwork listing.
type ImagesRequest struct {
	Type    ImageIDType
	ID      int
	Filters Filters
}

// Per-asset aliases for the shared listing shape.
type (
	GridsRequest  = ImagesRequest
	HeroesRequest = ImagesRequest
	LogosRequest  = ImagesRequest
	IconsRequest  = ImagesRequest
)

// VoteRequest casts one vote on a grid.
type VoteRequest struct {
	Direction VoteDirection
	GridID    int
}

// UploadGridRequest submits new grid artwork for a game. Data supplies
// the image bytes and is consumed by the upload; Filename is optional
// and only informs the multipart part name shown server-side.
type UploadGridRequest struct {
	GameID   int
	Style    string
	Filename string
	Data     io.Reader
}

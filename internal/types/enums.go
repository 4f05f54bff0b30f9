package types

import "fmt"

// ------------------------------
// Identifier Namespaces
// ------------------------------

// GameIDType selects the identifier namespace for game lookups.
type GameIDType string

const (
	// GameIDTypeID addresses a game by the catalog's own numeric id.
	GameIDTypeID GameIDType = "id"
	// GameIDTypeSteam addresses a game by its Steam app id.
	GameIDTypeSteam GameIDType = "steam"
)

// Validate rejects values outside the two supported namespaces.
func (t GameIDType) Validate() error {
	switch t {
	case GameIDTypeID, GameIDTypeSteam:
		return nil
	}
	return fmt.Errorf("game id type must be %q or %q, got %q", GameIDTypeID, GameIDTypeSteam, t)
}

// ImageIDType selects the identifier namespace for artwork listings.
type ImageIDType string

const (
	// ImageIDTypeGame addresses artwork by the catalog's numeric game id.
	ImageIDTypeGame ImageIDType = "game"
	// ImageIDTypeSteam addresses artwork by Steam app id.
	ImageIDTypeSteam ImageIDType = "steam"
)

// Validate rejects values outside the two supported namespaces.
func (t ImageIDType) Validate() error {
	switch t {
	case ImageIDTypeGame, ImageIDTypeSteam:
		return nil
	}
	return fmt.Errorf("image id type must be %q or %q, got %q", ImageIDTypeGame, ImageIDTypeSteam, t)
}

// VoteDirection is the direction of a grid vote.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Validate rejects directions other than up and down.
func (d VoteDirection) Validate() error {
	switch d {
	case VoteUp, VoteDown:
		return nil
	}
	return fmt.Errorf("vote direction must be %q or %q, got %q", VoteUp, VoteDown, d)
}

package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Game represents a game entry in the catalog.
type Game struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Types    []string `json:"types,omitempty"`
	Verified bool     `json:"verified"`
}

// SearchResult is the shape returned by autocomplete search; it carries
// the same fields as Game.
type SearchResult = Game

// Image represents one piece of artwork. The catalog serves grids,
// heroes, logos and icons through the same schema.
type Image struct {
	ID        int    `json:"id"`
	Score     int    `json:"score"`
	Style     string `json:"style"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	NSFW      bool   `json:"nsfw"`
	Humor     bool   `json:"humor"`
	Epilepsy  bool   `json:"epilepsy"`
	Mime      string `json:"mime"`
	Language  string `json:"language"`
	URL       string `json:"url"`
	Thumb     string `json:"thumb"`
	Lock      bool   `json:"lock"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

// Per-asset aliases for the shared artwork schema.
type (
	Grid = Image
	Hero = Image
	Logo = Image
	Icon = Image
)

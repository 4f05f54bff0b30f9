package types

import (
	"fmt"
	"net/url"
	"strings"
)

// Tristate narrows a boolean attribute server-side. Unlike a plain bool
// it distinguishes "not filtered" from "filtered to false" and supports
// the catalog's "any" wildcard.
type Tristate string

const (
	TristateUnset Tristate = ""
	TristateFalse Tristate = "false"
	TristateTrue  Tristate = "true"
	TristateAny   Tristate = "any"
)

// Validate rejects values the catalog would not understand.
func (t Tristate) Validate() error {
	switch t {
	case TristateUnset, TristateFalse, TristateTrue, TristateAny:
		return nil
	}
	return fmt.Errorf("tristate must be %q, %q or %q, got %q", TristateFalse, TristateTrue, TristateAny, t)
}

// Filters narrows artwork listings. The zero value adds nothing to the
// request; each set field becomes one query parameter, with list fields
// joined by commas.
type Filters struct {
	Styles     []string
	Dimensions []string
	Mimes      []string
	Types      []string
	NSFW       Tristate
	Humor      Tristate
}

// Validate checks the tristate fields.
func (f Filters) Validate() error {
	if err := f.NSFW.Validate(); err != nil {
		return fmt.Errorf("nsfw: %w", err)
	}
	if err := f.Humor.Validate(); err != nil {
		return fmt.Errorf("humor: %w", err)
	}
	return nil
}

// Values serializes the set fields as query parameters. Unset fields are
// omitted entirely so the server applies its defaults.
func (f Filters) Values() url.Values {
	v := url.Values{}
	if len(f.Styles) > 0 {
		v.Set("styles", strings.Join(f.Styles, ","))
	}
	if len(f.Dimensions) > 0 {
		v.Set("dimensions", strings.Join(f.Dimensions, ","))
	}
	if len(f.Mimes) > 0 {
		v.Set("mimes", strings.Join(f.Mimes, ","))
	}
	if len(f.Types) > 0 {
		v.Set("types", strings.Join(f.Types, ","))
	}
	if f.NSFW != TristateUnset {
		v.Set("nsfw", string(f.NSFW))
	}
	if f.Humor != TristateUnset {
		v.Set("humor", string(f.Humor))
	}
	return v
}

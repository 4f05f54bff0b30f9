package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// Envelope is the uniform wrapper around every catalog response. Data is
// kept raw so each operation can decode its own result shape; Errors
// carries the server's explanation when Success is false.
//
// The envelope is authoritative: a response that parses into an envelope
// is judged by its Success flag, whatever the HTTP status code says.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}

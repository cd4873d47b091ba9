package models

import (
	"parley/pkg/categorizer"
)

// ResponseResult is the final payload for one respond request. It is
// created once per request and never mutated afterwards; concurrent
// requests each get their own instance. Err carries the external
// provider's failure reason for diagnostics only — the Response field
// is always populated, template fallback included.
type ResponseResult struct {
	Prompt       string               `json:"prompt"`
	Category     categorizer.Category `json:"category"`
	Response     string               `json:"response"`
	UsedExternal bool                 `json:"used_external"`
	Err          string               `json:"error,omitempty"`
}

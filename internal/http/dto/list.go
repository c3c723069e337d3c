package dto

import (
	"net/url"

	"github.com/go-playground/form/v4"

	"audiobookd/internal/constants"
)

var queryDecoder = form.NewDecoder()

// ListParams are the query parameters shared by every list endpoint.
type ListParams struct {
	Skip  *int `form:"skip"`
	Limit *int `form:"limit"`
}

// ParseListParams decodes skip/limit from a query string, applying the
// defaults (skip 0, limit 10) for absent or unparsable values.
func ParseListParams(query url.Values) ListParams {
	var params ListParams
	// Decode errors fall back to defaults rather than failing the request.
	_ = queryDecoder.Decode(&params, query)
	return params
}

// Range returns the effective skip and limit.
func (p ListParams) Range() (int, int) {
	skip := constants.DefaultListSkip
	limit := constants.DefaultListLimit
	if p.Skip != nil {
		skip = *p.Skip
	}
	if p.Limit != nil {
		limit = *p.Limit
	}
	return skip, limit
}

package jobseq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	apierrors "github.com/go-openapi/errors"
)

// LookupService exposes the API-specific taxonomy tools: the code lists
// every other analytic's parameters are drawn from. Responses are static
// reference data and are cached per client.
type LookupService service

// ListAvailable fetches a taxonomy list ("regions", "occupations",
// "industries", "cips", "demographics", or "analytics"). A non-zero
// typeFilter restricts the list to one code type. The returned columns
// are prefixed with the first three letters of the category, e.g.
// reg_code, reg_type, reg_description.
func (s *LookupService) ListAvailable(ctx context.Context, category string, typeFilter int) (*Table, error) {
	if category == "" {
		return nil, apierrors.Required("category", "query", nil)
	}
	if len(category) < 3 {
		return nil, apierrors.InvalidType("category", "query", "taxonomy category name", category)
	}

	target := category
	if typeFilter != 0 {
		target += fmt.Sprintf("?type=%d", typeFilter)
	}

	raw, err := s.client.getLookup(ctx, target)
	if err != nil {
		return nil, err
	}
	return lookupTable(raw, category[:3])
}

// ListAvailableTypes fetches the type list of a taxonomy category; for
// example "region" yields the regionTypes list. Columns are named
// <category>Types_id and <category>Types_name.
func (s *LookupService) ListAvailableTypes(ctx context.Context, category string) (*Table, error) {
	if category == "" {
		return nil, apierrors.Required("category", "query", nil)
	}

	target := category + "Types"
	raw, err := s.client.getLookup(ctx, target)
	if err != nil {
		return nil, err
	}
	return typeTable(raw, target)
}

// SchoolsForRegion fetches the schools within a region. The vendor's
// response shape for this endpoint is not tabular, so the decoded JSON
// is returned as-is.
func (s *LookupService) SchoolsForRegion(ctx context.Context, regionCode string, regionType int) (any, error) {
	target := fmt.Sprintf("SchoolsForRegion?type=%d&code=%s", regionType, url.QueryEscape(regionCode))

	raw, err := s.client.getLookup(ctx, target)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, decodeError(err)
	}
	return v, nil
}

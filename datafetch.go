package jobseq

import (
	"context"
	"time"

	"github.com/go-openapi/strfmt"
)

// Field selects one data column for a DataFetch query, pinned to a
// point in time. A Field with no Date or Interval fetches the latest
// value. Set Offset to shift the time point when assembling wide
// multi-period tables.
type Field struct {
	Name     string
	Date     strfmt.Date
	Interval string // "Quarterly", "Annual", ...
	Offset   int
}

func (f Field) fragment() map[string]any {
	if time.Time(f.Date).IsZero() || f.Interval == "" {
		return map[string]any{"field": f.Name, "timePoints": []any{}}
	}
	point := map[string]any{"date": f.Date.String(), "interval": f.Interval}
	if f.Offset != 0 {
		point["offset"] = f.Offset
	}
	return map[string]any{"field": f.Name, "timePoints": []any{point}}
}

// DataFetchService exposes the bulk DataFetch endpoints, which return
// raw data rows rather than rendered analytic tables.
// See https://help.eqsuite.com/analytics/data-fetch/
type DataFetchService service

// OccupationDataFetchParams configures [DataFetchService.Occupation].
// SubRegionLevel and SubSOCLevel expand the query one level below the
// parent code, so a 2-digit SOC with SubSOCLevel 3 returns every
// 3-digit SOC under it.
type OccupationDataFetchParams struct {
	Region         string // default "0" (nation)
	RegionType     int    // default 10
	SubRegionLevel int    // defaults to RegionType
	SOCCode        string // default "00-0000"
	SOCType        int
	SubSOCLevel    int     // default 2
	Fields         []Field // default empl_placeOfWork, 2020-01-01, Quarterly
	PageKey        *int    // starting row for paged reads, nil from the top
	PageSize       int     // default 1000
}

// Occupation fetches occupation data rows for every sub-region and
// sub-occupation under the parent codes.
func (s *DataFetchService) Occupation(ctx context.Context, params OccupationDataFetchParams) (*Table, error) {
	fields := params.Fields
	if len(fields) == 0 {
		fields = []Field{{
			Name:     "empl_placeOfWork",
			Date:     strfmt.Date(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			Interval: "Quarterly",
		}}
	}

	body := NewDataFetchPayload().
		Regions(defStr(params.Region, "0"), defInt(params.RegionType, 10), params.SubRegionLevel).
		Occupations(defStr(params.SOCCode, "00-0000"), params.SOCType, defInt(params.SubSOCLevel, 2)).
		Fields(fields...).
		Set("pageKey", params.PageKey).
		Set("pageSize", defInt(params.PageSize, 1000))

	raw, err := s.client.runV2(ctx, "Datafetch/Occupation", body)
	if err != nil {
		return nil, err
	}
	return recordTable(raw)
}

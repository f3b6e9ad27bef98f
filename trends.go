package jobseq

import "context"

// TrendsService exposes the Labor and Wage Trends analytic, a family of
// time-series charts over one region and industry.
// See https://help.eqsuite.com/analytics/labor-wage-trends/
type TrendsService service

const laborWageTrendsID = "be01565c-5935-42a6-b89a-dccc511935d3"

// TrendParams configures the Labor and Wage Trends endpoints. Not every
// endpoint reads every field: SeasonallyAdjusted only applies to total
// wages and unemployment rates, OwnLevel and YoYChange to the rest.
type TrendParams struct {
	Region             string // default "1"
	RegionType         int    // default 4
	NAICSCode          string // default "31"
	NAICSType          int    // default 2
	OwnLevel           string // default "10"
	YoYChange          bool   // display as year-over-year percent change
	SeasonallyAdjusted bool
}

func (p TrendParams) region() (string, int) {
	return defStr(p.Region, "1"), defInt(p.RegionType, 4)
}

func (p TrendParams) industry() (string, int) {
	return defStr(p.NAICSCode, "31"), defInt(p.NAICSType, 2)
}

// trend runs one dataset of the trends analytic. The payload nests the
// per-dataset options under nestKey and names the dataset twice, the way
// the vendor's own web app does.
func (s *TrendsService) trend(ctx context.Context, body *Payload, nestKey, dataset string) ([]byte, error) {
	body.Nest(nestKey).
		Set("dataset", dataset).
		Set("datasetKey", nestKey)
	return s.client.runAnalytic(ctx, laborWageTrendsID, body)
}

// EmploymentTrends charts employment over time.
func (s *TrendsService) EmploymentTrends(ctx context.Context, params TrendParams) (*Table, error) {
	region, regionType := params.region()
	naics, naicsType := params.industry()
	body := NewPayload().
		Regions(region, regionType).
		Industry(naics, naicsType).
		Set("ownLevel", defStr(params.OwnLevel, "10")).
		Set("yoyChange", params.YoYChange)

	raw, err := s.trend(ctx, body, "employment", "Employment")
	if err != nil {
		return nil, err
	}
	return trendTable(raw)
}

// TotalWageTrends charts total wages over time.
func (s *TrendsService) TotalWageTrends(ctx context.Context, params TrendParams) (*Table, error) {
	region, regionType := params.region()
	naics, naicsType := params.industry()
	body := NewPayload().
		Region(region, regionType).
		Industry(naics, naicsType).
		Set("ownLevel", defStr(params.OwnLevel, "10")).
		Set("seasonallyAdjusted", params.SeasonallyAdjusted)

	raw, err := s.trend(ctx, body, "totalWages", "TotalWages")
	if err != nil {
		return nil, err
	}
	return trendTable(raw)
}

// CostOfLivingTrends returns the cost-of-living table. Unlike its
// siblings this endpoint answers with an analytic table, not a chart.
func (s *TrendsService) CostOfLivingTrends(ctx context.Context, params TrendParams) (*Table, error) {
	region, regionType := params.region()
	naics, naicsType := params.industry()
	body := NewPayload().
		Regions(region, regionType).
		Industry(naics, naicsType).
		Set("ownLevel", defStr(params.OwnLevel, "10")).
		Set("yoyChange", params.YoYChange)

	raw, err := s.trend(ctx, body, "averageWages", "AvgWages")
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// AverageWageTrends charts average wages over time.
func (s *TrendsService) AverageWageTrends(ctx context.Context, params TrendParams) (*Table, error) {
	region, regionType := params.region()
	naics, naicsType := params.industry()
	body := NewPayload().
		Regions(region, regionType).
		Industry(naics, naicsType).
		Set("ownLevel", defStr(params.OwnLevel, "10")).
		Set("yoyChange", params.YoYChange)

	raw, err := s.trend(ctx, body, "averageWages", "AvgWages")
	if err != nil {
		return nil, err
	}
	return trendTable(raw)
}

// UnemploymentRateTrends charts the unemployment rate over time.
func (s *TrendsService) UnemploymentRateTrends(ctx context.Context, params TrendParams) (*Table, error) {
	region, regionType := params.region()
	naics, naicsType := params.industry()
	body := NewPayload().
		Regions(region, regionType).
		Industry(naics, naicsType).
		Set("seasonallyAdjusted", params.SeasonallyAdjusted)

	raw, err := s.trend(ctx, body, "unemployment", "Unemployment")
	if err != nil {
		return nil, err
	}
	return trendTable(raw)
}

// EstablishmentTrends charts establishment counts over time.
func (s *TrendsService) EstablishmentTrends(ctx context.Context, params TrendParams) (*Table, error) {
	region, regionType := params.region()
	naics, naicsType := params.industry()
	body := NewPayload().
		Regions(region, regionType).
		Industry(naics, naicsType).
		Set("ownLevel", defStr(params.OwnLevel, "10")).
		Set("yoyChange", params.YoYChange)

	raw, err := s.trend(ctx, body, "establishments", "Establishments")
	if err != nil {
		return nil, err
	}
	return trendTable(raw)
}

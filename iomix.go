package jobseq

import "context"

// IndustryOccupationMixService exposes the Industry/Occupation Mix
// analytic, which decomposes an occupation into the industries employing
// it, or an industry into its staffing pattern.
// See https://help.eqsuite.com/analytics/industry-occupation-mix/
type IndustryOccupationMixService service

const ioMixID = "fa6e2fbe-0f68-498e-80a6-55a6c1b020cd"

// OccupationMixParams configures
// [IndustryOccupationMixService.OccupationMix].
type OccupationMixParams struct {
	Region     string // default "1"
	RegionType int    // default 4
	SOCCode    string // default "11-1011"
	SOCType    int    // default 7
	Years      string // 1-10, default "10"
	Model      int
}

// OccupationMix shows the industry distribution of an occupation.
func (s *IndustryOccupationMixService) OccupationMix(ctx context.Context, params OccupationMixParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "1"), defInt(params.RegionType, 4)).
		Occupation(defStr(params.SOCCode, "11-1011"), defInt(params.SOCType, 7)).
		Set("years", defStr(params.Years, "10")).
		Set("model", params.Model).
		Nest("indDist").
		Set("queryType", "IndDist").
		Set("datasetKey", "OccDist")

	raw, err := s.client.runAnalytic(ctx, ioMixID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// IndustryMixParams configures
// [IndustryOccupationMixService.IndustryMix].
type IndustryMixParams struct {
	Region     string // default "1"
	RegionType int    // default 4
	NAICSCode  string // default "31"
	NAICSType  int    // default 2
	OccLevel   string // default "7"
	Years      string // 1-10, default "10"
	Model      int
}

// IndustryMix shows the occupation distribution of an industry.
func (s *IndustryOccupationMixService) IndustryMix(ctx context.Context, params IndustryMixParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "1"), defInt(params.RegionType, 4)).
		Industry(defStr(params.NAICSCode, "31"), defInt(params.NAICSType, 2)).
		Set("years", defStr(params.Years, "10")).
		Set("model", params.Model).
		Set("occLevel", defStr(params.OccLevel, "7")).
		Nest("occDist").
		Set("queryType", "OccDist").
		Set("datasetKey", "OccDist")

	raw, err := s.client.runAnalytic(ctx, ioMixID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

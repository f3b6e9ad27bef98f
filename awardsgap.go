package jobseq

import "context"

// AwardsGapService exposes the Awards Gap analytic, which compares
// program completions against the occupational demand they feed.
// See https://help.eqsuite.com/analytics/awards-gap/
type AwardsGapService service

const awardsGapID = "ae95e9c6-de90-492c-a7e3-d07e8ea89d2b"

// AwardsGapProgramParams configures [AwardsGapService.Program].
type AwardsGapProgramParams struct {
	Region     string // default "1714"
	RegionType int    // default 2
	CIPCode    string // default "00.0000"
	CIPType    int
}

// Program reports the awards gap for one instructional program.
func (s *AwardsGapService) Program(ctx context.Context, params AwardsGapProgramParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "1714"), defInt(params.RegionType, 2)).
		CIP(defStr(params.CIPCode, "00.0000"), params.CIPType).
		Nest("program").
		Set("dataset", "Program").
		Set("datasetKey", "program")

	raw, err := s.client.runAnalytic(ctx, awardsGapID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// AwardsGapOccupationParams configures [AwardsGapService.Occupation].
type AwardsGapOccupationParams struct {
	Region     string // default "1714"
	RegionType int    // default 2
	SOCCode    string // default "00-0000"
	SOCType    int
	SOCLevel   string // default "7"
}

// Occupation reports the awards gap for one occupation.
func (s *AwardsGapService) Occupation(ctx context.Context, params AwardsGapOccupationParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "1714"), defInt(params.RegionType, 2)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("socLevel", defStr(params.SOCLevel, "7")).
		Nest("occupation").
		Set("dataset", "Occupation").
		Set("datasetKey", "occupation")

	raw, err := s.client.runAnalytic(ctx, awardsGapID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

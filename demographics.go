package jobseq

import "context"

// DemographicsService exposes the Demographic Profile analytic.
// See https://help.eqsuite.com/analytics/demographic-profile/
type DemographicsService service

const demographicProfileID = "98529f7c-deb9-421f-9ab2-9fa910d2dffc"

// DemographicsParams configures [DemographicsService.Current].
type DemographicsParams struct {
	Region     string // default "1"
	RegionType int    // default 4
	TableType  string // "Summary" (default) or "Census"
}

// Current runs the current-demographics endpoint. The vendor groups the
// response into visual sections; the result flattens them into one table
// with Demographic, Value, and Percentage columns.
func (s *DemographicsService) Current(ctx context.Context, params DemographicsParams) (*Table, error) {
	body := NewPayload().
		Regions(defStr(params.Region, "1"), defInt(params.RegionType, 4)).
		Set("tableType", defStr(params.TableType, "Summary")).
		Set("mode", "Current")

	raw, err := s.client.runAnalytic(ctx, demographicProfileID, body)
	if err != nil {
		return nil, err
	}
	return sectionTable(raw)
}

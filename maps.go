package jobseq

import "context"

// MapsService exposes the Maps analytic. Every endpoint returns one
// value per sub-region of the filter region; the first result column is
// always the sub-region FIPS code.
// See https://help.eqsuite.com/analytics/maps/
type MapsService service

const mapsID = "434d0060-62a0-4164-916c-c1a78e44c827"

// mapFrame appends the shared outer-map fragments (region filter, map
// type, sub-region level) after the per-map options have been nested.
func mapFrame(body *Payload, regionFilter string, regionFilterType int, mapType, regionLevel string) *Payload {
	return body.
		RegionFilter(defStr(regionFilter, "0"), defInt(regionFilterType, 10)).
		Set("type", mapType).
		Set("regionLevel", defStr(regionLevel, "1"))
}

// AwardsMapParams configures [MapsService.Awards]. A CIP code maps
// program awards by region; a SOC code maps awards crosswalked to the
// occupation.
type AwardsMapParams struct {
	RegionFilter         string // default "0"
	RegionFilterType     int    // default 10
	CIPSOCCode           string // default "00.0000"
	CIPSOCType           int    // default 150
	AwardLevel           string // default "0" (all levels)
	ExcludeOnlineSchools bool
	NCESYear             string // default "2021"
	RegionLevel          string // sub-region level, default "1" (counties)
}

// Awards maps program completions by sub-region.
func (s *MapsService) Awards(ctx context.Context, params AwardsMapParams) (*Table, error) {
	body := NewPayload().
		CIPSOC(defStr(params.CIPSOCCode, "00.0000"), defInt(params.CIPSOCType, 150)).
		Set("awardLevel", defStr(params.AwardLevel, "0")).
		Set("excludeOnlineSchools", params.ExcludeOnlineSchools).
		Set("ncesYear", defStr(params.NCESYear, "2021")).
		Nest("awardsMap")
	mapFrame(body, params.RegionFilter, params.RegionFilterType, "awards", params.RegionLevel)

	raw, err := s.client.runAnalytic(ctx, mapsID, body)
	if err != nil {
		return nil, err
	}
	return mapTable(raw)
}

// CommuteMapParams configures [MapsService.Commute].
type CommuteMapParams struct {
	Region           string // default "1"
	RegionType       int    // default 4
	RegionFilter     string // default "0"
	RegionFilterType int    // default 10
	SOCCode          string // default "00-0000"
	SOCType          int
	CommuteDirection string // "ToRegion" (default) or "FromRegion"
	RegionLevel      string // default "1"
}

// Commute maps commuting flows to or from a region.
func (s *MapsService) Commute(ctx context.Context, params CommuteMapParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "1"), defInt(params.RegionType, 4)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("commuteDirection", defStr(params.CommuteDirection, "ToRegion")).
		Nest("commuteMap")
	mapFrame(body, params.RegionFilter, params.RegionFilterType, "commute", params.RegionLevel)

	raw, err := s.client.runAnalytic(ctx, mapsID, body)
	if err != nil {
		return nil, err
	}
	return mapTable(raw)
}

// DemographicsMapParams configures [MapsService.Demographics].
type DemographicsMapParams struct {
	RegionFilter     string // default "0"
	RegionFilterType int    // default 10
	DemoVariable     string // vendor demographic variable id, default "3"
	ShowValueAs      string // "Percentages" (default) or "Values"
	RegionLevel      string // default "1"
}

// Demographics maps one demographic variable by sub-region.
func (s *MapsService) Demographics(ctx context.Context, params DemographicsMapParams) (*Table, error) {
	body := NewPayload().
		Set("demoVariable", defStr(params.DemoVariable, "3")).
		Set("showValueAs", defStr(params.ShowValueAs, "Percentages")).
		Nest("demographicsMap")
	mapFrame(body, params.RegionFilter, params.RegionFilterType, "demographic", params.RegionLevel)

	raw, err := s.client.runAnalytic(ctx, mapsID, body)
	if err != nil {
		return nil, err
	}
	return mapTable(raw)
}

// EmploymentMapParams configures [MapsService.Employment].
type EmploymentMapParams struct {
	RegionFilter     string // default "0"
	RegionFilterType int    // default 10
	EmplChangeType   string // "LastYear" (default) or "LastQtr"
	RegionLevel      string // default "1"
}

// Employment maps employment change by sub-region.
func (s *MapsService) Employment(ctx context.Context, params EmploymentMapParams) (*Table, error) {
	body := NewPayload().
		Set("emplChangeType", defStr(params.EmplChangeType, "LastYear")).
		Nest("employmentMap")
	mapFrame(body, params.RegionFilter, params.RegionFilterType, "empl", params.RegionLevel)

	raw, err := s.client.runAnalytic(ctx, mapsID, body)
	if err != nil {
		return nil, err
	}
	return mapTable(raw)
}

// GDPMapParams configures [MapsService.GDP].
type GDPMapParams struct {
	RegionFilter     string // default "0"
	RegionFilterType int    // default 10
	GDPYear          string // default "2021"
	RegionLevel      string // default "1"
}

// GDP maps gross domestic product by sub-region.
func (s *MapsService) GDP(ctx context.Context, params GDPMapParams) (*Table, error) {
	body := NewPayload().
		Set("gdpYear", defStr(params.GDPYear, "2021")).
		Nest("gdpMap")
	mapFrame(body, params.RegionFilter, params.RegionFilterType, "gdp", params.RegionLevel)

	raw, err := s.client.runAnalytic(ctx, mapsID, body)
	if err != nil {
		return nil, err
	}
	return mapTable(raw)
}

// IndustryMapParams configures [MapsService.Industry].
type IndustryMapParams struct {
	RegionFilter     string // default "0"
	RegionFilterType int    // default 10
	NAICSCode        string // default "31"
	NAICSType        int    // default 2
	ValueType        string // "Empl" (default), "LQ", or "Establishment"
	RegionLevel      string // default "1"
}

// Industry maps one industry measure by sub-region.
func (s *MapsService) Industry(ctx context.Context, params IndustryMapParams) (*Table, error) {
	body := NewPayload().
		Industry(defStr(params.NAICSCode, "31"), defInt(params.NAICSType, 2)).
		Set("type", defStr(params.ValueType, "Empl")).
		Nest("industryMap")
	mapFrame(body, params.RegionFilter, params.RegionFilterType, "industry", params.RegionLevel)

	raw, err := s.client.runAnalytic(ctx, mapsID, body)
	if err != nil {
		return nil, err
	}
	return mapTable(raw)
}

// OccupationMapParams configures [MapsService.Occupation].
type OccupationMapParams struct {
	RegionFilter         string // default "0"
	RegionFilterType     int    // default 10
	SOCCode              string // default "00-0000"
	SOCType              int
	OccConcentrationType string // "EmployedWork" (default), "UnemployedResidence", "LQ", or "Commute"
	RegionLevel          string // default "1"
}

// Occupation maps occupation concentration by sub-region.
func (s *MapsService) Occupation(ctx context.Context, params OccupationMapParams) (*Table, error) {
	body := NewPayload().
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("occConcentrationType", defStr(params.OccConcentrationType, "EmployedWork")).
		Nest("occMap")
	mapFrame(body, params.RegionFilter, params.RegionFilterType, "occ", params.RegionLevel)

	raw, err := s.client.runAnalytic(ctx, mapsID, body)
	if err != nil {
		return nil, err
	}
	return mapTable(raw)
}

// RTIMapParams configures [MapsService.RTI].
type RTIMapParams struct {
	RegionFilter     string // default "0"
	RegionFilterType int    // default 10
	SOCCode          string // default "00-0000"
	SOCType          int
	RegionLevel      string // default "1"
}

// RTI maps job-posting intensity by sub-region.
func (s *MapsService) RTI(ctx context.Context, params RTIMapParams) (*Table, error) {
	body := NewPayload().
		RTIOccupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Nest("rtiMap")
	mapFrame(body, params.RegionFilter, params.RegionFilterType, "rti", params.RegionLevel)

	raw, err := s.client.runAnalytic(ctx, mapsID, body)
	if err != nil {
		return nil, err
	}
	return mapTable(raw)
}

// SimpleMapParams configures the map endpoints that take no options
// beyond the region filter: [MapsService.Rural],
// [MapsService.Underemployment], and [MapsService.Unemployment].
type SimpleMapParams struct {
	RegionFilter     string // default "0"
	RegionFilterType int    // default 10
	RegionLevel      string // default "1"
}

func (s *MapsService) simple(ctx context.Context, params SimpleMapParams, mapType string) (*Table, error) {
	body := mapFrame(NewPayload(), params.RegionFilter, params.RegionFilterType, mapType, params.RegionLevel)

	raw, err := s.client.runAnalytic(ctx, mapsID, body)
	if err != nil {
		return nil, err
	}
	return mapTable(raw)
}

// Rural maps rurality by sub-region.
func (s *MapsService) Rural(ctx context.Context, params SimpleMapParams) (*Table, error) {
	return s.simple(ctx, params, "rural")
}

// Underemployment maps underemployment by sub-region.
func (s *MapsService) Underemployment(ctx context.Context, params SimpleMapParams) (*Table, error) {
	return s.simple(ctx, params, "underempl")
}

// Unemployment maps the unemployment rate by sub-region.
func (s *MapsService) Unemployment(ctx context.Context, params SimpleMapParams) (*Table, error) {
	return s.simple(ctx, params, "unempl")
}

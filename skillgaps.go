package jobseq

import "context"

// SkillGapsService exposes the Skill Gaps analytic: the mismatch between
// skills employers post for and skills the regional workforce holds.
// See https://help.eqsuite.com/analytics/skill-gaps/
type SkillGapsService service

const skillGapsID = "148c7d96-36e5-446d-a9b8-f4078bd19d74"

// SkillGapsBySkillParams configures [SkillGapsService.BySkill].
type SkillGapsBySkillParams struct {
	Region     string // default "1"
	RegionType int    // default 4
	SOCCode    string // default "00-0000"
	SOCType    int
	Filter     string // "Hard" (default) or "Soft" skills
}

// BySkill ranks the gaps of an occupation by skill.
func (s *SkillGapsService) BySkill(ctx context.Context, params SkillGapsBySkillParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "1"), defInt(params.RegionType, 4)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("filter", defStr(params.Filter, "Hard")).
		Set("displayType", "Table").
		Nest("bySkill").
		Set("gapType", "BySkill").
		Set("datasetKey", "BySkill")

	raw, err := s.client.runAnalytic(ctx, skillGapsID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// SkillGapsByOccupationParams configures [SkillGapsService.ByOccupation].
// Skill codes are internal vendor identifiers; capture them from a
// JobsEQ response or the skill taxonomy lookup.
type SkillGapsByOccupationParams struct {
	Region     string // default "1"
	RegionType int    // default 4
	SOCCode    string // default "00-0000"
	SOCType    int
	SkillCode  string // default "4242"
	SkillType  int    // default 67
	OccLevel   string // default "7"
}

// ByOccupation ranks the gaps of a skill by occupation.
func (s *SkillGapsService) ByOccupation(ctx context.Context, params SkillGapsByOccupationParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "1"), defInt(params.RegionType, 4)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Skill(defStr(params.SkillCode, "4242"), defInt(params.SkillType, 67)).
		Set("occLevel", defStr(params.OccLevel, "7")).
		Set("displayType", "Table").
		Nest("byOccupation").
		Set("gapType", "ByOccupation").
		Set("datasetKey", "BySkill")

	raw, err := s.client.runAnalytic(ctx, skillGapsID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// SkillGapsByRegionParams configures [SkillGapsService.ByRegion].
type SkillGapsByRegionParams struct {
	Region      string // default "1"
	RegionType  int    // default 4
	SOCCode     string // default "00-0000"
	SOCType     int
	SkillCode   string // default "4242"
	SkillType   int    // default 67
	DisplayType string // default "Table"
}

// ByRegion ranks the supply of a skill across regions.
func (s *SkillGapsService) ByRegion(ctx context.Context, params SkillGapsByRegionParams) (*Table, error) {
	body := NewPayload().
		Regions(defStr(params.Region, "1"), defInt(params.RegionType, 4)).
		Skill(defStr(params.SkillCode, "4242"), defInt(params.SkillType, 67)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("displayType", defStr(params.DisplayType, "Table")).
		Nest("supply").
		Set("gapType", "Supply").
		Set("datasetKey", "BySkill")

	raw, err := s.client.runAnalytic(ctx, skillGapsID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

package jobseq

import (
	"context"

	apierrors "github.com/go-openapi/errors"
)

// CoreService holds the simple JobsEQ analytics: snapshots, gaps,
// diversity, awards, and the other single-table tools.
type CoreService service

// Analytic runner UUIDs, as published by the vendor.
const (
	occupationSnapshotID  = "346c9b58-4636-4b92-9521-be86a0868f76"
	occupationWagesID     = "070d4e17-cf3a-4d52-8071-48be8bea4325"
	occupationGapsID      = "f0b719b4-308b-4c5c-b689-baa6b909d5f3"
	industrySnapshotID    = "9d7913e1-8395-48ec-98b6-a5476cc9c2f3"
	whatIfID              = "8d554e48-8940-4d0f-958b-067c462340ca"
	shiftShareID          = "9dfd4380-fe28-458f-9dcf-d2f1c4750358"
	industryDiversityID   = "4c03b549-365e-487f-941f-ccde3df884a3"
	occupationDiversityID = "7993e1f6-b66f-4a15-a876-3d93731affa8"
	awardsID              = "feea06ae-4562-470b-afee-acc328f991ec"
	willingAndAbleID      = "b71bc7d7-18c4-4c03-b4a0-fccbe9c5cd64"
	jobTalentLocatorID    = "a3c057c9-49e2-4876-84c2-a198b3f84198"
	militaryExitsID       = "960cf539-83f8-42a5-b640-886806c90e08"
)

// OccupationSnapshotParams configures [CoreService.OccupationSnapshot].
// Zero values map to the vendor defaults noted per field.
type OccupationSnapshotParams struct {
	Region        string // FIPS code, default "0" (USA)
	RegionType    int    // default 10 (nation)
	SOCCode       string // default "00-0000" (all occupations)
	SOCType       int
	OccLevel      string // drill-down SOC level, default "2"
	HistYears     string // default "5"
	ProjYears     string // default "1"
	Model         int
	OwnLevel      string // ownership level, default "10" (private)
	ExcludePrelim bool
}

// OccupationSnapshot runs the Occupation Snapshot analytic.
// See https://help.eqsuite.com/analytics/occupation-snapshot/
func (s *CoreService) OccupationSnapshot(ctx context.Context, params OccupationSnapshotParams) (*Table, error) {
	body := NewPayload().
		Regions(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("histYears", defStr(params.HistYears, "5")).
		Set("projYears", defStr(params.ProjYears, "1")).
		Set("occLevel", defStr(params.OccLevel, "2")).
		Set("model", params.Model).
		Set("ownLevel", defStr(params.OwnLevel, "10")).
		Set("excludePrelim", params.ExcludePrelim)

	raw, err := s.client.runAnalytic(ctx, occupationSnapshotID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// OccupationWagesParams configures [CoreService.OccupationWages].
type OccupationWagesParams struct {
	Region     string // default "0"
	RegionType int    // default 10
	SOCCode    string // default "00-0000"
	SOCType    int
	OccLevel   string // default "2"
	Hourly     bool   // hourly instead of annual figures
}

// OccupationWages runs the Occupation Wages analytic.
// See https://help.eqsuite.com/analytics/occupation-wages/
func (s *CoreService) OccupationWages(ctx context.Context, params OccupationWagesParams) (*Table, error) {
	body := NewPayload().
		Regions(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("occLevel", defStr(params.OccLevel, "2")).
		Set("hourly", params.Hourly)

	raw, err := s.client.runAnalytic(ctx, occupationWagesID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// OccupationGapsParams configures [CoreService.OccupationGaps].
// KnowledgeOnly and TableShowMore default to true; use swag.Bool(false)
// to turn them off.
type OccupationGapsParams struct {
	Region        string // default "0"
	RegionType    int    // default 10
	SOCCode       string // default "00-0000"
	SOCType       int
	SOCLevel      string // default "2"
	Years         string // default "10"
	KnowledgeOnly *bool  // default true: only degree-requiring occupations
	TableShowMore *bool  // default true: include the expanded columns
}

// OccupationGaps runs the Occupation Gaps analytic.
// See https://help.eqsuite.com/analytics/occupation-gaps/
func (s *CoreService) OccupationGaps(ctx context.Context, params OccupationGapsParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("socLevel", defStr(params.SOCLevel, "2")).
		Set("years", defStr(params.Years, "10")).
		Set("knowledgeOnly", defBool(params.KnowledgeOnly, true)).
		Set("tableShowMore", defBool(params.TableShowMore, true)).
		Set("displayType", "Table")

	raw, err := s.client.runAnalytic(ctx, occupationGapsID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// IndustrySnapshotParams configures [CoreService.IndustrySnapshot].
type IndustrySnapshotParams struct {
	Region     string // default "0"
	RegionType int    // default 10
	NAICSCode  string // default "0" (all industries)
	NAICSType  int
	HistYears  int    // default 5
	ProjYears  int    // default 1
	IndLevel   string // default "2"
	Model      int
}

// IndustrySnapshot runs the Industry Snapshot analytic.
// See https://help.eqsuite.com/analytics/industry-snapshot/
func (s *CoreService) IndustrySnapshot(ctx context.Context, params IndustrySnapshotParams) (*Table, error) {
	body := NewPayload().
		Regions(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Industry(defStr(params.NAICSCode, "0"), params.NAICSType).
		Set("histYears", defInt(params.HistYears, 5)).
		Set("projYears", defInt(params.ProjYears, 1)).
		Set("indLevel", defStr(params.IndLevel, "2")).
		Set("model", params.Model)

	raw, err := s.client.runAnalytic(ctx, industrySnapshotID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// WhatIf event modes.
const (
	WhatIfExpansion   = "Expansion"
	WhatIfContraction = "Contraction"
)

// WhatIfParams configures [CoreService.WhatIf].
type WhatIfParams struct {
	Region     string // default "0"
	RegionType int    // default 10
	NAICSCode  string // default "31"
	NAICSType  int    // default 2
	FirmSize   int    // hypothetical firm headcount, default 100
	Mode       string // WhatIfExpansion (default) or WhatIfContraction
}

// WhatIf runs the What If analytic, modelling the effect of a firm
// expansion or contraction on a region.
// See https://help.eqsuite.com/analytics/what-if/
func (s *CoreService) WhatIf(ctx context.Context, params WhatIfParams) (*Table, error) {
	mode := defStr(params.Mode, WhatIfExpansion)
	if mode != WhatIfExpansion && mode != WhatIfContraction {
		return nil, apierrors.InvalidType("mode", "params", "Expansion or Contraction", mode)
	}

	body := NewPayload().
		Regions(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Industry(defStr(params.NAICSCode, "31"), defInt(params.NAICSType, 2)).
		Set("firmSize", defInt(params.FirmSize, 100)).
		Set("type", mode).
		Nest("whatIf").
		Set("mode", "WhatIf")

	raw, err := s.client.runAnalytic(ctx, whatIfID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// ShiftShareParams configures [CoreService.ShiftShare].
type ShiftShareParams struct {
	Region     string // default "0"
	RegionType int    // default 10
	NAICSCode  string // default "31"
	NAICSType  int    // default 2
	Years      string // 1-10, default "10"
	OwnLevel   string // default "10"
}

// ShiftShare runs the Shift Share analytic.
// See https://help.eqsuite.com/analytics/shift-share/
func (s *CoreService) ShiftShare(ctx context.Context, params ShiftShareParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Industry(defStr(params.NAICSCode, "31"), defInt(params.NAICSType, 2)).
		Set("years", defStr(params.Years, "10")).
		Set("ownLevel", defStr(params.OwnLevel, "10"))

	raw, err := s.client.runAnalytic(ctx, shiftShareID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// IndustryDiversityParams configures [CoreService.IndustryDiversity].
type IndustryDiversityParams struct {
	Region         string // default "0"
	RegionType     int    // default 10
	NAICSCode      string // default "0"
	NAICSType      int
	NAICSLevel     string // default "0"
	Demographic    string // Age, Education, Gender, Race, Ethnicity, or All; default "L"
	SubDemographic string // depends on Demographic; default "L"
}

// IndustryDiversity runs the Industry Diversity analytic.
// See https://help.eqsuite.com/analytics/industry-diversity/
func (s *CoreService) IndustryDiversity(ctx context.Context, params IndustryDiversityParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Industry(defStr(params.NAICSCode, "0"), params.NAICSType).
		Set("naicsLevel", defStr(params.NAICSLevel, "0")).
		Set("demo1", defStr(params.Demographic, "L")).
		Set("demo2", defStr(params.SubDemographic, "L"))

	raw, err := s.client.runAnalytic(ctx, industryDiversityID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// OccupationDiversityParams configures [CoreService.OccupationDiversity].
type OccupationDiversityParams struct {
	Region     string // default "0"
	RegionType int    // default 10
	SOCCode    string // default "00-0000"
	SOCType    int
	Category   string // demographic category, default "A"
	OccLevel   string // default "6"
}

// OccupationDiversity runs the Occupation Diversity analytic.
// See https://help.eqsuite.com/analytics/occupation-diversity/
func (s *CoreService) OccupationDiversity(ctx context.Context, params OccupationDiversityParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("category", defStr(params.Category, "A")).
		Set("displayMode", "Table").
		Set("occLevel", defStr(params.OccLevel, "6"))

	raw, err := s.client.runAnalytic(ctx, occupationDiversityID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// AwardsParams configures [CoreService.Awards]. School is the optional
// IPEDS code of a single institution; build it with swag.String.
type AwardsParams struct {
	Region       string  // default "0"
	RegionType   int     // default 10
	SOCCode      string  // default "00-0000"
	SOCType      int
	School       *string // IPEDS code, default all schools
	Model        int
	ShowDetailed *bool // default true: extra descriptive columns
}

// Awards runs the Awards analytic.
// See https://help.eqsuite.com/analytics/Awards/
func (s *CoreService) Awards(ctx context.Context, params AwardsParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Occupation(defStr(params.SOCCode, "00-0000"), params.SOCType).
		Set("school", params.School).
		Set("model", params.Model).
		Set("showDetailed", defBool(params.ShowDetailed, true))

	raw, err := s.client.runAnalytic(ctx, awardsID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// WillingAndAbleParams configures [CoreService.WillingAndAble].
type WillingAndAbleParams struct {
	Region       string // default "1714"
	RegionType   int    // default 2
	SOCCode      string // default "11-1011"
	SOCType      int    // default 7
	EmployerMode bool   // look at inbound career changers instead of outbound
}

// WillingAndAble runs the Willing and Able analytic.
// See https://help.eqsuite.com/analytics/willing-able/
func (s *CoreService) WillingAndAble(ctx context.Context, params WillingAndAbleParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "1714"), defInt(params.RegionType, 2)).
		Occupation(defStr(params.SOCCode, "11-1011"), defInt(params.SOCType, 7)).
		Set("employermode", params.EmployerMode).
		Set("mode", "Table").
		Nest("WillingAndAble").
		Set("type", "WillingAndAble")

	raw, err := s.client.runAnalytic(ctx, willingAndAbleID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// JobAndTalentLocator runs the Job and Talent Locator analytic for an
// occupation. See https://help.eqsuite.com/analytics/job-talent-locator/
func (s *CoreService) JobAndTalentLocator(ctx context.Context, socCode string, socType int) (*Table, error) {
	body := NewPayload().
		Occupation(defStr(socCode, "00-0000"), socType)

	raw, err := s.client.runAnalytic(ctx, jobTalentLocatorID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// MilitaryExits runs the Military Exits analytic for a region.
// See https://help.eqsuite.com/analytics/military-exits/
func (s *CoreService) MilitaryExits(ctx context.Context, region string, regionType int) (*Table, error) {
	body := NewPayload().
		Region(defStr(region, "0"), defInt(regionType, 10))

	raw, err := s.client.runAnalytic(ctx, militaryExitsID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

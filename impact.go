package jobseq

import (
	"context"

	apierrors "github.com/go-openapi/errors"
)

// EconomicImpactService exposes the Economic Impact analytic, which
// estimates the regional ripple effect of an employment or sales change
// in one industry.
// See https://help.eqsuite.com/analytics/economic-impact/
type EconomicImpactService service

const economicImpactID = "58a2d8fc-bb40-4e4d-b78e-f719fa1a361e"

// EconomicImpactParams configures [EconomicImpactService.Employment]
// and [EconomicImpactService.SalesOutput]. EventRegion narrows the
// event to a sub-region of the impact region; set EventRegionType with
// it or leave both zero.
type EconomicImpactParams struct {
	ImpactRegion     string // default "1"
	ImpactRegionType int    // default 4
	EventRegion      string
	EventRegionType  int
	NAICSCode        string // default "31"
	NAICSType        int    // default 2
	EventSize        string // employment headcount or sales dollars
}

func (s *EconomicImpactService) run(ctx context.Context, params EconomicImpactParams, defaultSize, sizeType string) (*Table, error) {
	if (params.EventRegion == "") != (params.EventRegionType == 0) {
		return nil, apierrors.Required("eventRegion and eventRegionType", "body", nil)
	}

	body := NewPayload().
		ImpactRegion(defStr(params.ImpactRegion, "1"), defInt(params.ImpactRegionType, 4)).
		Industry(defStr(params.NAICSCode, "31"), defInt(params.NAICSType, 2)).
		Set("eventSize", defStr(params.EventSize, defaultSize)).
		Set("eventSizeType", sizeType)
	if params.EventRegion != "" {
		body.EventRegion(params.EventRegion, params.EventRegionType)
	}

	raw, err := s.client.runAnalytic(ctx, economicImpactID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// Employment estimates the impact of an employment change of EventSize
// jobs in the selected industry.
func (s *EconomicImpactService) Employment(ctx context.Context, params EconomicImpactParams) (*Table, error) {
	return s.run(ctx, params, "140", "Employment")
}

// SalesOutput estimates the impact of a sales change of EventSize
// million dollars in the selected industry.
func (s *EconomicImpactService) SalesOutput(ctx context.Context, params EconomicImpactParams) (*Table, error) {
	return s.run(ctx, params, "20", "SaleOutput")
}

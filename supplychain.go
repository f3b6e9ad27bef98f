package jobseq

import "context"

// SupplyChainService exposes the Supply Chain analytic: the industries a
// given industry buys from, sells to, and the regional gaps between them.
// See https://help.eqsuite.com/analytics/supply-chain/
type SupplyChainService service

const supplyChainID = "d2adef1d-7f93-48dc-8b33-7084c117db7b"

// SupplyChainParams configures [SupplyChainService.Suppliers] and
// [SupplyChainService.Buyers].
type SupplyChainParams struct {
	Region     string // default "0"
	RegionType int    // default 10
	NAICSCode  string // default "31"
	NAICSType  int    // default 2
	IndLevel   string // drill-down NAICS level, default "6"
}

// Suppliers lists the supplying industries of an industry in a region.
func (s *SupplyChainService) Suppliers(ctx context.Context, params SupplyChainParams) (*Table, error) {
	return s.run(ctx, params, "supplier", "Suppliers")
}

// Buyers lists the buying industries of an industry in a region.
func (s *SupplyChainService) Buyers(ctx context.Context, params SupplyChainParams) (*Table, error) {
	return s.run(ctx, params, "buyer", "Buyers")
}

func (s *SupplyChainService) run(ctx context.Context, params SupplyChainParams, nestKey, dataset string) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Industry(defStr(params.NAICSCode, "31"), defInt(params.NAICSType, 2)).
		Set("indLevel", defStr(params.IndLevel, "6")).
		Nest(nestKey).
		Set("dataset", dataset).
		Set("datasetKey", nestKey)

	raw, err := s.client.runAnalytic(ctx, supplyChainID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

// SupplyChainGapsParams configures [SupplyChainService.Gaps].
type SupplyChainGapsParams struct {
	Region     string // default "1"
	RegionType int    // default 4
	IndLevel   string // default "6"
	DispType   string // "Refined" or "All" (default)
}

// Gaps lists the supply-chain gaps of a region.
func (s *SupplyChainService) Gaps(ctx context.Context, params SupplyChainGapsParams) (*Table, error) {
	body := NewPayload().
		Region(defStr(params.Region, "1"), defInt(params.RegionType, 4)).
		Set("indLevel", defStr(params.IndLevel, "6")).
		Set("dispType", defStr(params.DispType, "All")).
		Nest("gap").
		Set("dataset", "Gaps").
		Set("datasetKey", "gap")

	raw, err := s.client.runAnalytic(ctx, supplyChainID, body)
	if err != nil {
		return nil, err
	}
	return analyticTable(raw)
}

package jobseq

import "encoding/json"

// codeRef is the {code, type} pair JobsEQ uses to identify every taxonomy
// entity: FIPS regions, SOC occupations, NAICS industries, CIP programs,
// and skills.
type codeRef struct {
	Code string `json:"code"`
	Type int    `json:"type"`
}

// Payload accumulates key/value fragments into a nested JobsEQ request
// body. Fragments merge at the top level; a later fragment overwrites an
// earlier one under the same key. [Payload.Nest] pushes everything
// accumulated so far under a single key, after which accumulation
// continues at the new top level.
//
// The zero value is not usable; create payloads with [NewPayload].
// Methods return the receiver so fragments can be chained:
//
//	body := jobseq.NewPayload().
//	    Regions("51760", 1).
//	    Occupation("11-1011", 7).
//	    Set("histYears", "5")
type Payload struct {
	body map[string]any
}

// NewPayload returns an empty request-body accumulator.
func NewPayload() *Payload {
	return &Payload{body: map[string]any{}}
}

// Region sets the singular "region" fragment.
func (p *Payload) Region(code string, typ int) *Payload {
	return p.Set("region", codeRef{code, typ})
}

// Regions sets the "regions" list fragment. The vendor accepts multiple
// regions here; the analytics in this SDK only ever send one.
func (p *Payload) Regions(code string, typ int) *Payload {
	return p.Set("regions", []codeRef{{code, typ}})
}

// RegionFilter sets the "regionFilter" fragment used by map analytics.
func (p *Payload) RegionFilter(code string, typ int) *Payload {
	return p.Set("regionFilter", codeRef{code, typ})
}

// Occupation sets the singular "occupation" fragment.
func (p *Payload) Occupation(code string, typ int) *Payload {
	return p.Set("occupation", codeRef{code, typ})
}

// Occupations sets the "occupations" list fragment.
func (p *Payload) Occupations(code string, typ int) *Payload {
	return p.Set("occupations", []codeRef{{code, typ}})
}

// RTIOccupation sets the "rtiOccupation" fragment used by the RTI map.
func (p *Payload) RTIOccupation(code string, typ int) *Payload {
	return p.Set("rtiOccupation", codeRef{code, typ})
}

// Industry sets the "industry" fragment.
func (p *Payload) Industry(code string, typ int) *Payload {
	return p.Set("industry", codeRef{code, typ})
}

// CIP sets the "cip" fragment.
func (p *Payload) CIP(code string, typ int) *Payload {
	return p.Set("cip", codeRef{code, typ})
}

// CIPSOC sets the "cipSoc" fragment. The awards map accepts either a CIP
// or a SOC code here, distinguished by the type.
func (p *Payload) CIPSOC(code string, typ int) *Payload {
	return p.Set("cipSoc", codeRef{code, typ})
}

// Skill sets the "skill" fragment.
func (p *Payload) Skill(code string, typ int) *Payload {
	return p.Set("skill", codeRef{code, typ})
}

// ImpactRegion sets the "impactRegion" fragment of economic-impact runs.
func (p *Payload) ImpactRegion(code string, typ int) *Payload {
	return p.Set("impactRegion", codeRef{code, typ})
}

// EventRegion sets the "eventRegion" fragment of economic-impact runs.
func (p *Payload) EventRegion(code string, typ int) *Payload {
	return p.Set("eventRegion", codeRef{code, typ})
}

// Filters sets the RTI "filters" list fragment. Calling it with no
// filters still sets the key to an empty list, which the RTI endpoints
// require.
func (p *Payload) Filters(filters ...RTIFilter) *Payload {
	list := make([]RTIFilter, 0, len(filters))
	list = append(list, filters...)
	return p.Set("filters", list)
}

// Set merges an arbitrary keyword fragment at the top level.
func (p *Payload) Set(key string, value any) *Payload {
	p.body[key] = value
	return p
}

// SetAll merges every fragment of m at the top level.
func (p *Payload) SetAll(m map[string]any) *Payload {
	for k, v := range m {
		p.body[k] = v
	}
	return p
}

// Nest wraps the entire accumulated payload under key. Subsequent
// fragments land beside the nested object, not inside it.
func (p *Payload) Nest(key string) *Payload {
	p.body = map[string]any{key: p.body}
	return p
}

// Body exposes the accumulated request body.
func (p *Payload) Body() map[string]any {
	return p.body
}

// MarshalJSON serializes the accumulated body.
func (p *Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.body)
}

// DataFetchPayload accumulates the request body of the DataFetch
// endpoints, whose region and occupation fragments nest a parent code
// under a sub-level instead of the flat {code, type} pair.
type DataFetchPayload struct {
	body map[string]any
}

// NewDataFetchPayload returns an empty DataFetch request-body accumulator.
func NewDataFetchPayload() *DataFetchPayload {
	return &DataFetchPayload{body: map[string]any{}}
}

type dfParentRef struct {
	Parent codeRef `json:"parent"`
	Level  int     `json:"level"`
}

// Regions sets the "regions" fragment. A zero level defaults to the
// parent's type, meaning "no drill-down".
func (p *DataFetchPayload) Regions(code string, typ, level int) *DataFetchPayload {
	if level == 0 {
		level = typ
	}
	return p.Set("regions", []dfParentRef{{codeRef{code, typ}, level}})
}

// Occupations sets the "occupations" fragment, with the same level
// defaulting as Regions.
func (p *DataFetchPayload) Occupations(code string, typ, level int) *DataFetchPayload {
	if level == 0 {
		level = typ
	}
	return p.Set("occupations", []dfParentRef{{codeRef{code, typ}, level}})
}

// Fields sets the "fields" fragment from the given field specs.
func (p *DataFetchPayload) Fields(fields ...Field) *DataFetchPayload {
	list := make([]map[string]any, 0, len(fields))
	for _, f := range fields {
		list = append(list, f.fragment())
	}
	return p.Set("fields", list)
}

// Set merges an arbitrary keyword fragment at the top level.
func (p *DataFetchPayload) Set(key string, value any) *DataFetchPayload {
	p.body[key] = value
	return p
}

// Body exposes the accumulated request body.
func (p *DataFetchPayload) Body() map[string]any {
	return p.body
}

// MarshalJSON serializes the accumulated body.
func (p *DataFetchPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.body)
}

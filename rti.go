package jobseq

import (
	"context"
	"time"

	"github.com/go-openapi/strfmt"
)

// RTIFilter narrows a real-time intelligence query to postings or
// resumes matching one field. Combine several filters to build up the
// same queries the JobsEQ web application produces.
type RTIFilter struct {
	Field      string `json:"field"`
	Key        string `json:"key"`
	FilterType string `json:"filterType"`
}

// RTIService exposes the real-time intelligence endpoints: job
// postings, posting aggregates, posting wages, and resume forensics.
// These run against the v2 API and take [RTIFilter] lists rather than
// the code/type pairs the classic analytics use.
// See https://help.eqsuite.com/analytics/rti/
type RTIService service

// JobPostingsParams configures [RTIService.JobPostings].
type JobPostingsParams struct {
	Region          string // default "0" (nation)
	RegionType      int    // default 10
	Filters         []RTIFilter
	ExcludeStaffing bool
	Freetext        *string // full-text keyword filter, nil for none
	Timeframe       string  // "Last30Days" (default), "Last90Days", ...; overrides Start/End
	PostState       string  // default "New"
	Start           *string
	End             *string
	StartRecord     int
	EndRecord       int // default 20
}

// JobPostings returns individual job postings matching the filters, one
// row per posting.
func (s *RTIService) JobPostings(ctx context.Context, params JobPostingsParams) (*Table, error) {
	body := NewPayload().
		Regions(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Filters(params.Filters...).
		Set("excludeStaffing", params.ExcludeStaffing).
		Set("freetext", params.Freetext).
		Set("timeframe", defStr(params.Timeframe, "Last30Days")).
		Set("postState", defStr(params.PostState, "New")).
		Set("start", params.Start).
		Set("end", params.End).
		Set("startRecord", params.StartRecord).
		Set("endRecord", defInt(params.EndRecord, 20))

	raw, err := s.client.runV2(ctx, "JobPosts", body)
	if err != nil {
		return nil, err
	}
	return recordTable(raw)
}

// JobPostingsOverTimeParams configures [RTIService.JobPostingsOverTime].
type JobPostingsOverTimeParams struct {
	Region     string // default "0"
	RegionType int    // default 10
	Filters    []RTIFilter
	Freetext   *string
	Timeframe  string // default "Last30Days"; overrides Start/End
	PostState  string // default "New"
	Start      *string
	End        *string
	Interval   string // "Daily" (default), "Weekly", "Monthly", or "Yearly"
	AdType     string // default "All"
}

// JobPostingsOverTime returns posting counts aggregated per interval.
func (s *RTIService) JobPostingsOverTime(ctx context.Context, params JobPostingsOverTimeParams) (*Table, error) {
	body := NewPayload().
		Regions(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Filters(params.Filters...).
		Set("freetext", params.Freetext).
		Set("timeframe", defStr(params.Timeframe, "Last30Days")).
		Set("postState", defStr(params.PostState, "New")).
		Set("start", params.Start).
		Set("end", params.End).
		Set("interval", defStr(params.Interval, "Daily")).
		Set("adType", defStr(params.AdType, "All"))

	raw, err := s.client.runV2(ctx, "RealTimeIntelligenceOverTime", body)
	if err != nil {
		return nil, err
	}
	return seriesTable(raw)
}

// JobPostingWagesParams configures [RTIService.JobPostingWages]. The
// wages endpoint requires concrete start and end dates; there is no
// relative timeframe.
type JobPostingWagesParams struct {
	Region     string // default "0"
	RegionType int    // default 10
	Filters    []RTIFilter
	PostState  string      // default "New"
	Start      strfmt.Date // default 2023-01-01
	End        strfmt.Date // default 2023-02-01
}

// JobPostingWages returns advertised wage distributions for postings in
// the date window.
func (s *RTIService) JobPostingWages(ctx context.Context, params JobPostingWagesParams) (*Table, error) {
	start, end := params.Start, params.End
	if time.Time(start).IsZero() {
		start = strfmt.Date(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	}
	if time.Time(end).IsZero() {
		end = strfmt.Date(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC))
	}

	body := NewPayload().
		Regions(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Filters(params.Filters...).
		Set("postState", defStr(params.PostState, "New")).
		Set("start", start.String()).
		Set("end", end.String())

	raw, err := s.client.runV2(ctx, "RealTimeIntelligenceWages", body)
	if err != nil {
		return nil, err
	}
	return recordTable(raw)
}

// ResumesParams configures [RTIService.Resumes].
type ResumesParams struct {
	Region           string // default "0"
	RegionType       int    // default 10
	Filters          []RTIFilter
	IncludeSummary   *bool   // default true; adds region overview tables
	Freetext         *string // full-text filter over resume content
	LocationMode     int     // 1 = live, 2 = work, 4 = school; 0 accepts any
	EntryWages       *bool   // default true
	ExperiencedWages bool
	WageType         string // "Annual" (default) or "Hourly"
}

// Resumes runs resume forensics over the filtered resume pool.
func (s *RTIService) Resumes(ctx context.Context, params ResumesParams) (*Table, error) {
	body := NewPayload().
		Set("entryWages", defBool(params.EntryWages, true)).
		Set("experiencedWages", params.ExperiencedWages).
		Set("wageType", defStr(params.WageType, "Annual")).
		Nest("options").
		Regions(defStr(params.Region, "0"), defInt(params.RegionType, 10)).
		Filters(params.Filters...).
		Set("includeSummary", defBool(params.IncludeSummary, true)).
		Set("freetext", params.Freetext).
		Set("locationMode", params.LocationMode)

	raw, err := s.client.runV2(ctx, "Resumes", body)
	if err != nil {
		return nil, err
	}
	return resumeTable(raw)
}

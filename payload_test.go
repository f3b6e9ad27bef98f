package jobseq_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobseq "github.com/eqdata/jobseq-go"
)

// marshalBody round-trips a payload through JSON so assertions see
// exactly what the server would receive.
func marshalBody(t *testing.T, v json.Marshaler) map[string]any {
	t.Helper()
	raw, err := v.MarshalJSON()
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestPayload_Fragments(t *testing.T) {
	// Act
	body := marshalBody(t, jobseq.NewPayload().
		Regions("51760", 1).
		Occupation("11-1011", 7).
		Set("histYears", "5"))

	// Assert
	assert.Equal(t, []any{map[string]any{"code": "51760", "type": float64(1)}}, body["regions"])
	assert.Equal(t, map[string]any{"code": "11-1011", "type": float64(7)}, body["occupation"])
	assert.Equal(t, "5", body["histYears"])
}

// TestPayload_MergeOverwrite verifies that a later fragment wins over an
// earlier one under the same key.
func TestPayload_MergeOverwrite(t *testing.T) {
	body := marshalBody(t, jobseq.NewPayload().
		Set("years", "5").
		SetAll(map[string]any{"years": "10", "model": 0}))

	assert.Equal(t, "10", body["years"])
	assert.Equal(t, float64(0), body["model"])
}

// TestPayload_Nest verifies that Nest wraps everything accumulated so
// far and later fragments land beside the nested object.
func TestPayload_Nest(t *testing.T) {
	body := marshalBody(t, jobseq.NewPayload().
		Region("37", 3).
		Set("firmSize", 100).
		Nest("whatIf").
		Set("mode", "WhatIf"))

	require.Contains(t, body, "whatIf")
	inner := body["whatIf"].(map[string]any)
	assert.Equal(t, map[string]any{"code": "37", "type": float64(3)}, inner["region"])
	assert.Equal(t, float64(100), inner["firmSize"])
	assert.Equal(t, "WhatIf", body["mode"])
	assert.NotContains(t, inner, "mode")
}

// TestPayload_EmptyFilters verifies that Filters with no arguments still
// sends an empty list, which the RTI endpoints require.
func TestPayload_EmptyFilters(t *testing.T) {
	body := marshalBody(t, jobseq.NewPayload().Filters())

	assert.Equal(t, []any{}, body["filters"])
}

func TestPayload_Filters(t *testing.T) {
	body := marshalBody(t, jobseq.NewPayload().Filters(
		jobseq.RTIFilter{Field: "soc", Key: "11-1011", FilterType: "Include"},
	))

	assert.Equal(t, []any{map[string]any{
		"field": "soc", "key": "11-1011", "filterType": "Include",
	}}, body["filters"])
}

// TestDataFetchPayload_LevelDefaults verifies that a zero drill-down
// level falls back to the parent code's type.
func TestDataFetchPayload_LevelDefaults(t *testing.T) {
	body := marshalBody(t, jobseq.NewDataFetchPayload().
		Regions("0", 10, 0).
		Occupations("11-0000", 2, 3))

	regions := body["regions"].([]any)
	require.Len(t, regions, 1)
	assert.Equal(t, map[string]any{
		"parent": map[string]any{"code": "0", "type": float64(10)},
		"level":  float64(10),
	}, regions[0])

	occupations := body["occupations"].([]any)
	require.Len(t, occupations, 1)
	assert.Equal(t, float64(3), occupations[0].(map[string]any)["level"])
}

func TestDataFetchPayload_Fields(t *testing.T) {
	pinned := jobseq.Field{
		Name:     "empl_placeOfWork",
		Date:     strfmt.Date(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		Interval: "Quarterly",
	}
	offset := pinned
	offset.Offset = -4
	latest := jobseq.Field{Name: "avgAnnWages_placeOfWork"}

	body := marshalBody(t, jobseq.NewDataFetchPayload().Fields(pinned, offset, latest))

	fields := body["fields"].([]any)
	require.Len(t, fields, 3)

	assert.Equal(t, map[string]any{
		"field":      "empl_placeOfWork",
		"timePoints": []any{map[string]any{"date": "2020-01-01", "interval": "Quarterly"}},
	}, fields[0])

	assert.Equal(t, []any{map[string]any{
		"date": "2020-01-01", "interval": "Quarterly", "offset": float64(-4),
	}}, fields[1].(map[string]any)["timePoints"])

	// A field with no time point fetches the latest value.
	assert.Equal(t, map[string]any{
		"field":      "avgAnnWages_placeOfWork",
		"timePoints": []any{},
	}, fields[2])
}

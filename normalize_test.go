package jobseq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticTable(t *testing.T) {
	raw := []byte(`{
		"table": {
			"columns": [{"name": "Occupation"}, {"name": "Employment"}, {"name": "Wages"}],
			"rows": [
				[{"displayText": "Management", "code": "11-0000"}, {"displayValue": 1204}, 52000],
				[{"code": "13-0000"}, {"displayValue": 887}, 48100]
			]
		}
	}`)

	table, err := analyticTable(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Occupation", "Employment", "Wages"}, table.Headers())
	// displayText wins over code; bare scalars pass through.
	assert.Equal(t, []any{"Management", "13-0000"}, table.Column("Occupation"))
	assert.Equal(t, []any{float64(1204), float64(887)}, table.Column("Employment"))
	assert.Equal(t, []any{float64(52000), float64(48100)}, table.Column("Wages"))
}

// TestAnalyticTable_UnnamedColumn verifies that a column with a null
// name is dropped while its cells still consume a row position.
func TestAnalyticTable_UnnamedColumn(t *testing.T) {
	raw := []byte(`{
		"table": {
			"columns": [{"name": null}, {"name": "Employment"}],
			"rows": [["ignored", 1204]]
		}
	}`)

	table, err := analyticTable(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Employment"}, table.Headers())
	assert.Equal(t, []any{float64(1204)}, table.Column("Employment"))
}

func TestAnalyticTable_UnknownCellShape(t *testing.T) {
	raw := []byte(`{
		"table": {
			"columns": [{"name": "Occupation"}],
			"rows": [[{"mystery": true}]]
		}
	}`)

	_, err := analyticTable(raw)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NORMALIZE", apiErr.Code)
}

// TestAnalyticTable_RaggedRow verifies that a row with the wrong cell
// count surfaces as a normalization error rather than a panic.
func TestAnalyticTable_RaggedRow(t *testing.T) {
	short := []byte(`{
		"table": {
			"columns": [{"name": "A"}, {"name": "B"}],
			"rows": [["x", 1], ["y"]]
		}
	}`)

	_, err := analyticTable(short)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NORMALIZE", apiErr.Code)

	long := []byte(`{
		"table": {
			"columns": [{"name": "A"}],
			"rows": [["x", "extra"]]
		}
	}`)

	_, err = analyticTable(long)
	require.Error(t, err)
}

// TestAnalyticTable_DuplicateColumn verifies that a repeated column name
// keeps the first occurrence only.
func TestAnalyticTable_DuplicateColumn(t *testing.T) {
	raw := []byte(`{
		"table": {
			"columns": [{"name": "Wages"}, {"name": "Wages"}],
			"rows": [[52000, 48100]]
		}
	}`)

	table, err := analyticTable(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Wages"}, table.Headers())
	assert.Equal(t, []any{float64(52000)}, table.Column("Wages"))
}

func TestAnalyticTable_NoTable(t *testing.T) {
	_, err := analyticTable([]byte(`{"chart": {}}`))
	require.Error(t, err)
}

func TestAnalyticTable_Empty(t *testing.T) {
	raw := []byte(`{"table": {"columns": [{"name": "Occupation"}], "rows": []}}`)

	table, err := analyticTable(raw)
	require.NoError(t, err)
	assert.Zero(t, table.Len())
}

func TestMapTable(t *testing.T) {
	raw := []byte(`{
		"map": {
			"map": {
				"titleCaption": "Employment Change",
				"columns": [{"name": null}, {"name": null}, {"name": "Extra"}],
				"rows": [
					["37119", {"displayText": "1.2%"}, {"nested": {"code": "x"}}],
					["37183", {"code": "0.8%"}, 5]
				]
			}
		}
	}`)

	table, err := mapTable(raw)
	require.NoError(t, err)

	// The FIPS column is always renamed; the unnamed value column takes
	// the title caption.
	assert.Equal(t, []string{"RegionFIPS", "Employment Change", "Extra"}, table.Headers())
	assert.Equal(t, []any{"37119", "37183"}, table.Column("RegionFIPS"))
	assert.Equal(t, []any{"1.2%", "0.8%"}, table.Column("Employment Change"))
	assert.Equal(t, []any{map[string]any{"nested": "x"}, float64(5)}, table.Column("Extra"))
}

func TestMapTable_TooFewColumns(t *testing.T) {
	raw := []byte(`{"map": {"map": {"columns": [{"name": null}], "rows": []}}}`)

	_, err := mapTable(raw)
	require.Error(t, err)
}

func TestMapTable_RaggedRow(t *testing.T) {
	raw := []byte(`{
		"map": {
			"map": {
				"titleCaption": "Value",
				"columns": [{"name": null}, {"name": null}],
				"rows": [["37119"]]
			}
		}
	}`)

	_, err := mapTable(raw)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NORMALIZE", apiErr.Code)
}

func TestSectionTable(t *testing.T) {
	raw := []byte(`{
		"table": {
			"sections": [
				{"rows": [
					[{"displayText": "Population"}, "100%", {"value": 150934}]
				]},
				{"rows": [
					[{"displayText": "Male"}, "49.1%", {"value": 74109}],
					[{"displayText": "Female"}, "50.9%", {"value": 76825}]
				]}
			]
		}
	}`)

	table, err := sectionTable(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Demographic", "Value", "Percentage"}, table.Headers())
	assert.Equal(t, []any{"Population", "Male", "Female"}, table.Column("Demographic"))
	assert.Equal(t, []any{float64(150934), float64(74109), float64(76825)}, table.Column("Value"))
	assert.Equal(t, []any{"100%", "49.1%", "50.9%"}, table.Column("Percentage"))
}

func TestSectionTable_ShortRow(t *testing.T) {
	raw := []byte(`{"table": {"sections": [{"rows": [[{"displayText": "x"}]]}]}}`)

	_, err := sectionTable(raw)
	require.Error(t, err)
}

func TestTrendTable(t *testing.T) {
	raw := []byte(`{
		"chart": {
			"title": "Employment Trends",
			"subTitle": ["Charlotte MSA "],
			"yAxis": {"title": "Employment"},
			"series": [
				{"data": [[1577836800000, 1204.5], [1580515200000, 1190.2]]},
				{"data": [[1577836800000, 999]]}
			]
		}
	}`)

	table, err := trendTable(raw)
	require.NoError(t, err)

	// Metric name is subtitle + y-axis title; only the first series is
	// tabulated.
	assert.Equal(t, []string{"Date", "Charlotte MSA Employment"}, table.Headers())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []any{1204.5, 1190.2}, table.Column("Charlotte MSA Employment"))

	when, ok := EpochMillis(table.Column("Date")[0])
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), when)
}

// TestTrendTable_TitleFallback verifies that charts without a subtitle
// fall back to the chart title for the metric column.
func TestTrendTable_TitleFallback(t *testing.T) {
	raw := []byte(`{
		"chart": {
			"title": "Unemployment Rate",
			"subTitle": [],
			"series": [{"data": [[1577836800000, 3.6]]}]
		}
	}`)

	table, err := trendTable(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Unemployment Rate"}, table.Headers())
}

func TestTrendTable_NoSeries(t *testing.T) {
	_, err := trendTable([]byte(`{"chart": {"title": "x", "series": []}}`))
	require.Error(t, err)
}

// TestRecordTable verifies the v2 record pivot, including that column
// order follows the key order of the first record on the wire rather
// than any alphabetical order.
func TestRecordTable(t *testing.T) {
	raw := []byte(`{
		"data": [
			{"title": "Nurse", "employer": "Atrium", "wage": 71000},
			{"title": "Teacher", "employer": "WCPSS", "wage": 54000}
		]
	}`)

	table, err := recordTable(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "employer", "wage"}, table.Headers())
	assert.Equal(t, []any{"Nurse", "Teacher"}, table.Column("title"))
	assert.Equal(t, []any{float64(71000), float64(54000)}, table.Column("wage"))
}

func TestRecordTable_Empty(t *testing.T) {
	table, err := recordTable([]byte(`{"data": []}`))
	require.NoError(t, err)
	assert.Zero(t, table.Len())
}

// TestRecordTable_NoDataNode verifies that a body without a data node,
// such as a vendor error document, errors instead of flattening to an
// empty table.
func TestRecordTable_NoDataNode(t *testing.T) {
	_, err := recordTable([]byte(`{"error": "quota exceeded"}`))
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NORMALIZE", apiErr.Code)
}

func TestSeriesTable(t *testing.T) {
	raw := []byte(`{
		"data": [
			{"series": [
				{"date": "2024-01-01", "count": 41},
				{"date": "2024-01-02", "count": 44}
			]}
		]
	}`)

	table, err := seriesTable(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "count"}, table.Headers())
	assert.Equal(t, []any{float64(41), float64(44)}, table.Column("count"))
}

func TestSeriesTable_Empty(t *testing.T) {
	table, err := seriesTable([]byte(`{"data": []}`))
	require.NoError(t, err)
	assert.Zero(t, table.Len())
}

func TestSeriesTable_NoDataNode(t *testing.T) {
	_, err := seriesTable([]byte(`{"error": "quota exceeded"}`))
	require.Error(t, err)
}

// TestResumeTable verifies the resume-forensics flattening, including
// that unclassified rows are skipped.
func TestResumeTable(t *testing.T) {
	raw := []byte(`{
		"tables": [
			{
				"category": "Education",
				"rows": [
					{"label": "Bachelor's", "count": 1520, "entryWages": 48000},
					{"label": "Unclassified", "count": 77, "entryWages": null}
				]
			},
			{
				"category": "Experience",
				"rows": [
					{"label": "0-2 years", "count": 910, "entryWages": 39000}
				]
			}
		]
	}`)

	table, err := resumeTable(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Category", "Label", "Counts", "Entry Wages"}, table.Headers())
	assert.Equal(t, []any{"Education", "Experience"}, table.Column("Category"))
	assert.Equal(t, []any{"Bachelor's", "0-2 years"}, table.Column("Label"))
	assert.Equal(t, []any{float64(1520), float64(910)}, table.Column("Counts"))
}

func TestLookupTable(t *testing.T) {
	t.Run("coded categories", func(t *testing.T) {
		raw := []byte(`[
			{"c": "37", "t": 3, "d": "North Carolina"},
			{"c": "51", "t": 3, "d": "Virginia"}
		]`)

		table, err := lookupTable(raw, "reg")
		require.NoError(t, err)

		assert.Equal(t, []string{"reg_code", "reg_type", "reg_description"}, table.Headers())
		assert.Equal(t, []any{"North Carolina", "Virginia"}, table.Column("reg_description"))
	})

	t.Run("code and description only", func(t *testing.T) {
		raw := []byte(`[{"c": "11.0101", "d": "Computer Science"}]`)

		table, err := lookupTable(raw, "cip")
		require.NoError(t, err)

		assert.Equal(t, []string{"cip_code", "cip_description"}, table.Headers())
	})

	t.Run("analytics", func(t *testing.T) {
		raw := []byte(`[{"id": "346c9b58", "name": "Occupation Snapshot"}]`)

		table, err := lookupTable(raw, "ana")
		require.NoError(t, err)

		assert.Equal(t, []string{"ana_id", "ana_name"}, table.Headers())
		assert.Equal(t, []any{"Occupation Snapshot"}, table.Column("ana_name"))
	})

	t.Run("unknown prefix", func(t *testing.T) {
		_, err := lookupTable([]byte(`[]`), "xyz")
		require.Error(t, err)
	})
}

func TestTypeTable(t *testing.T) {
	raw := []byte(`[{"id": 3, "name": "State"}, {"id": 1, "name": "County"}]`)

	table, err := typeTable(raw, "regionTypes")
	require.NoError(t, err)

	assert.Equal(t, []string{"regionTypes_id", "regionTypes_name"}, table.Headers())
	assert.Equal(t, []any{"State", "County"}, table.Column("regionTypes_name"))
}

func TestObjectKeys_WireOrder(t *testing.T) {
	keys, err := objectKeys([]byte(`{"z": 1, "a": {"nested": [1, 2]}, "m": [true]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestObjectKeys_NotObject(t *testing.T) {
	_, err := objectKeys([]byte(`[1, 2]`))
	require.Error(t, err)
}

func TestEpochMillis(t *testing.T) {
	when, ok := EpochMillis(float64(1577836800000))
	require.True(t, ok)
	assert.Equal(t, 2020, when.Year())

	_, ok = EpochMillis("2020-01-01")
	assert.False(t, ok)
}

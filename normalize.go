package jobseq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// The JobsEQ API has no single response contract. Each analytic family
// returns its own nesting of tables, charts, sections, or record lists,
// and individual cells are sometimes scalars and sometimes objects
// carrying display variants. The functions in this file each flatten one
// known family into a [Table].

// unwrapCell flattens an analytic-table cell. Scalars pass through;
// objects unwrap their displayText, displayValue, or code variant, in
// that order of preference.
func unwrapCell(v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	for _, key := range []string{"displayText", "displayValue", "code"} {
		if val, ok := obj[key]; ok {
			return val, nil
		}
	}
	return nil, fmt.Errorf("cell object has none of displayText, displayValue, code")
}

// unwrapMapCell flattens a map-table cell. Objects without a displayText
// or code variant are unwrapped recursively, field by field.
func unwrapMapCell(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return v
	}
	if val, ok := obj["displayText"]; ok {
		return val
	}
	if val, ok := obj["code"]; ok {
		return val
	}
	out := make(map[string]any, len(obj))
	for k, val := range obj {
		out[k] = unwrapMapCell(val)
	}
	return out
}

// analyticTable flattens the standard analytic response family:
// table.columns[].name headers over table.rows row arrays. Columns with
// empty names are dropped.
func analyticTable(raw []byte) (*Table, error) {
	var env struct {
		Table *struct {
			Columns []struct {
				Name *string `json:"name"`
			} `json:"columns"`
			Rows [][]any `json:"rows"`
		} `json:"table"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeError(err)
	}
	if env.Table == nil {
		return nil, normalizeError("response has no table node")
	}

	headers := make([]string, len(env.Table.Columns))
	for i, col := range env.Table.Columns {
		if col.Name != nil {
			headers[i] = *col.Name
		}
	}

	b := newTableBuilder(headers)
	for i, row := range env.Table.Rows {
		if len(row) != len(headers) {
			return nil, normalizeError("row %d has %d cells, want %d", i, len(row), len(headers))
		}
		values := make([]any, len(row))
		for j, cell := range row {
			v, err := unwrapCell(cell)
			if err != nil {
				return nil, normalizeError("row %d, column %q: %v", i, headers[j], err)
			}
			values[j] = v
		}
		b.append(values)
	}
	return b.table(), nil
}

// mapTable flattens the map analytic family (map.map.columns/rows). The
// first column is always the region FIPS code; the vendor leaves its name
// null, and sometimes leaves the value column's name null too, in which
// case the map's title caption stands in.
func mapTable(raw []byte) (*Table, error) {
	var env struct {
		Map *struct {
			Map *struct {
				Columns []struct {
					Name *string `json:"name"`
				} `json:"columns"`
				Rows         [][]any `json:"rows"`
				TitleCaption string  `json:"titleCaption"`
			} `json:"map"`
		} `json:"map"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeError(err)
	}
	if env.Map == nil || env.Map.Map == nil {
		return nil, normalizeError("response has no map node")
	}
	inner := env.Map.Map
	if len(inner.Columns) < 2 {
		return nil, normalizeError("map table has %d columns, want at least 2", len(inner.Columns))
	}

	headers := make([]string, len(inner.Columns))
	for i, col := range inner.Columns {
		if col.Name != nil {
			headers[i] = *col.Name
		}
	}
	headers[0] = "RegionFIPS"
	if inner.Columns[1].Name == nil {
		headers[1] = inner.TitleCaption
	}

	b := newTableBuilder(headers)
	for i, row := range inner.Rows {
		if len(row) != len(headers) {
			return nil, normalizeError("row %d has %d cells, want %d", i, len(row), len(headers))
		}
		values := make([]any, len(row))
		for j, cell := range row {
			values[j] = unwrapMapCell(cell)
		}
		b.append(values)
	}
	return b.table(), nil
}

// sectionTable flattens the sectioned demographics family into the three
// fixed columns Demographic, Value, and Percentage. Section boundaries
// are not preserved; the vendor only uses them for visual grouping.
func sectionTable(raw []byte) (*Table, error) {
	var env struct {
		Table *struct {
			Sections []struct {
				Rows [][]any `json:"rows"`
			} `json:"sections"`
		} `json:"table"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeError(err)
	}
	if env.Table == nil {
		return nil, normalizeError("response has no table node")
	}

	var names, values, percents []any
	for si, section := range env.Table.Sections {
		for ri, row := range section.Rows {
			if len(row) < 3 {
				return nil, normalizeError("section %d, row %d: %d cells, want 3", si, ri, len(row))
			}
			name, ok := row[0].(map[string]any)
			if !ok {
				return nil, normalizeError("section %d, row %d: first cell is not an object", si, ri)
			}
			value, ok := row[2].(map[string]any)
			if !ok {
				return nil, normalizeError("section %d, row %d: third cell is not an object", si, ri)
			}
			names = append(names, name["displayText"])
			values = append(values, value["value"])
			percents = append(percents, row[1])
		}
	}

	return NewTable(
		[]string{"Demographic", "Value", "Percentage"},
		map[string][]any{"Demographic": names, "Value": values, "Percentage": percents},
	), nil
}

// trendTable flattens the chart family into a Date column (epoch
// milliseconds, as sent by the vendor) and one metric column. The metric
// column takes its name from the chart subtitle joined with the y-axis
// title; charts without those fall back to the chart title.
func trendTable(raw []byte) (*Table, error) {
	var env struct {
		Chart *struct {
			Title    string   `json:"title"`
			SubTitle []string `json:"subTitle"`
			YAxis    *struct {
				Title string `json:"title"`
			} `json:"yAxis"`
			Series []struct {
				Data [][]any `json:"data"`
			} `json:"series"`
		} `json:"chart"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeError(err)
	}
	if env.Chart == nil {
		return nil, normalizeError("response has no chart node")
	}
	if len(env.Chart.Series) == 0 {
		return nil, normalizeError("chart has no series")
	}

	metric := env.Chart.Title
	if len(env.Chart.SubTitle) > 0 && env.Chart.YAxis != nil {
		metric = env.Chart.SubTitle[0] + env.Chart.YAxis.Title
	}

	var dates, values []any
	for i, point := range env.Chart.Series[0].Data {
		if len(point) < 2 {
			return nil, normalizeError("series point %d has %d values, want 2", i, len(point))
		}
		dates = append(dates, point[0])
		values = append(values, point[1])
	}

	return NewTable(
		[]string{"Date", metric},
		map[string][]any{"Date": dates, metric: values},
	), nil
}

// recordTable flattens the v2 record-list family: a data array of flat
// objects pivoted into columns. Column order follows the key order of
// the first record.
func recordTable(raw []byte) (*Table, error) {
	var env struct {
		Data *[]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeError(err)
	}
	if env.Data == nil {
		return nil, normalizeError("response has no data node")
	}
	return pivotRecords(*env.Data)
}

// seriesTable flattens the v2 over-time family, where the records to
// pivot sit under data[0].series.
func seriesTable(raw []byte) (*Table, error) {
	var env struct {
		Data *[]struct {
			Series []json.RawMessage `json:"series"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeError(err)
	}
	if env.Data == nil {
		return nil, normalizeError("response has no data node")
	}
	if len(*env.Data) == 0 {
		return NewTable(nil, nil), nil
	}
	return pivotRecords((*env.Data)[0].Series)
}

// pivotRecords pivots a list of flat JSON objects into columns keyed by
// the first record's keys, in their wire order.
func pivotRecords(records []json.RawMessage) (*Table, error) {
	if len(records) == 0 {
		return NewTable(nil, nil), nil
	}

	headers, err := objectKeys(records[0])
	if err != nil {
		return nil, normalizeError("first record: %v", err)
	}

	columns := make(map[string][]any, len(headers))
	for _, rec := range records {
		var obj map[string]any
		if err := json.Unmarshal(rec, &obj); err != nil {
			return nil, decodeError(err)
		}
		for _, h := range headers {
			columns[h] = append(columns[h], obj[h])
		}
	}
	return NewTable(headers, columns), nil
}

// resumeTable flattens the resume-forensics family into the four fixed
// columns Category, Label, Counts, and Entry Wages. Rows the vendor
// could not classify are skipped.
func resumeTable(raw []byte) (*Table, error) {
	var env struct {
		Tables []struct {
			Category string `json:"category"`
			Rows     []struct {
				Label      string `json:"label"`
				Count      any    `json:"count"`
				EntryWages any    `json:"entryWages"`
			} `json:"rows"`
		} `json:"tables"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeError(err)
	}

	var categories, labels, counts, wages []any
	for _, sub := range env.Tables {
		for _, row := range sub.Rows {
			if row.Label == "Unclassified" {
				continue
			}
			categories = append(categories, sub.Category)
			labels = append(labels, row.Label)
			counts = append(counts, row.Count)
			wages = append(wages, row.EntryWages)
		}
	}

	headers := []string{"Category", "Label", "Counts", "Entry Wages"}
	return NewTable(headers, map[string][]any{
		"Category": categories, "Label": labels, "Counts": counts, "Entry Wages": wages,
	}), nil
}

// lookupTable flattens a taxonomy lookup array. The category prefix
// decides the item shape: region, occupation, and industry lists carry
// code, type, and description; CIP and demographic lists carry code and
// description; the analytic list carries id and name.
func lookupTable(raw []byte, prefix string) (*Table, error) {
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, decodeError(err)
	}

	pick := func(fields ...string) (*Table, error) {
		headers := make([]string, len(fields))
		columns := make(map[string][]any, len(fields))
		rename := map[string]string{
			"c": "code", "t": "type", "d": "description", "id": "id", "name": "name",
		}
		for i, f := range fields {
			headers[i] = prefix + "_" + rename[f]
		}
		for _, item := range items {
			for i, f := range fields {
				columns[headers[i]] = append(columns[headers[i]], item[f])
			}
		}
		return NewTable(headers, columns), nil
	}

	switch prefix {
	case "reg", "occ", "ind":
		return pick("c", "t", "d")
	case "cip", "dem":
		return pick("c", "d")
	case "ana":
		return pick("id", "name")
	default:
		return nil, normalizeError("unknown lookup category prefix %q", prefix)
	}
}

// typeTable flattens a taxonomy type list ([{id, name}]) under the given
// column name prefix.
func typeTable(raw []byte, name string) (*Table, error) {
	var items []struct {
		ID   any    `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, decodeError(err)
	}

	idCol, nameCol := name+"_id", name+"_name"
	ids := make([]any, len(items))
	names := make([]any, len(items))
	for i, item := range items {
		ids[i] = item.ID
		names[i] = item.Name
	}
	return NewTable(
		[]string{idCol, nameCol},
		map[string][]any{idCol: ids, nameCol: names},
	), nil
}

// objectKeys returns the keys of a JSON object in wire order.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		keys = append(keys, tok.(string))
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// skipValue consumes one JSON value, including nested containers.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		depth := 1
		for depth > 0 {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			if d, ok := tok.(json.Delim); ok {
				switch d {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
				}
			}
		}
	}
	return nil
}

// EpochMillis converts an epoch-millisecond cell, as found in the Date
// columns produced by trend and over-time analytics, to a time.Time.
func EpochMillis(v any) (time.Time, bool) {
	switch ms := v.(type) {
	case float64:
		return time.UnixMilli(int64(ms)).UTC(), true
	case int64:
		return time.UnixMilli(ms).UTC(), true
	case json.Number:
		n, err := ms.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(n).UTC(), true
	default:
		return time.Time{}, false
	}
}

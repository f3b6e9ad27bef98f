package jobseq

import (
	"fmt"

	"github.com/itchyny/gojq"
)

// Extract runs a jq program over a decoded JSON document and returns the
// produced values. It is the escape hatch for vendor responses whose
// shape none of the built-in normalizers covers: run the analytic through
// [Client.RunAnalyticByID] or [Client.RunAnalyticByURI] and carve out the
// values you need.
//
//	doc, _ := client.RunAnalyticByID(ctx, analyticID, body)
//	names, err := jobseq.Extract(".table.rows[][0].displayText", doc)
//
// doc must be built from encoding/json decoding (maps, slices, float64,
// string, bool, nil), which is what the raw-run methods return.
func Extract(program string, doc any) ([]any, error) {
	query, err := gojq.Parse(program)
	if err != nil {
		return nil, &Error{Code: "QUERY", Message: fmt.Sprintf("parsing jq program %q", program), Cause: err}
	}

	var out []any
	iter := query.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, &Error{Code: "QUERY", Message: "running jq program", Cause: err}
		}
		out = append(out, v)
	}
	return out, nil
}

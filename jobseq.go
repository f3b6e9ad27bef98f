// Package jobseq provides a Go SDK for the JobsEQ labor-market-analytics API.
//
// JobsEQ is Chmura's labor-market data platform. Its API exposes a few
// dozen "analytics" (occupation snapshots, wage trends, supply-chain gaps,
// job-posting intelligence, and so on) behind a small set of authenticated
// JSON endpoints. This SDK builds the per-analytic request payloads,
// submits them, and flattens the vendor's inconsistently shaped responses
// into one uniform tabular type, [Table].
//
// # Quick Start
//
// Create a client and run an analytic:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/eqdata/jobseq-go"
//	)
//
//	func main() {
//	    ctx := context.Background()
//
//	    client, err := jobseq.NewClient(ctx, "user@example.com", "secret")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    table, err := client.Core.OccupationSnapshot(ctx, jobseq.OccupationSnapshotParams{
//	        Region:     "51760", // Richmond city, VA
//	        RegionType: 1,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(table.Headers())
//	}
//
// # Client Configuration
//
// The client can be configured using functional options:
//
//	client, err := jobseq.NewClient(ctx, user, pass,
//	    jobseq.WithTimeout(2*time.Minute),
//	    jobseq.WithHTTPClient(customHTTPClient),
//	    jobseq.WithLogger(slog.Default()),
//	)
//
// A pre-acquired bearer token skips the password grant entirely:
//
//	client, err := jobseq.NewClient(ctx, "", "", jobseq.WithToken(token))
//
// # Analytics
//
// Endpoint methods are grouped into services mirroring the JobsEQ
// analytic families: [Client.Core], [Client.Lookup], [Client.IOMix],
// [Client.Trends], [Client.SupplyChain], [Client.Demographics],
// [Client.SkillGaps], [Client.Maps], [Client.Impact], [Client.AwardsGap],
// [Client.RTI], and [Client.DataFetch]. Every analytic method accepts a
// params struct whose zero value maps to the vendor's documented defaults,
// and returns a [Table].
//
// Analytics not covered by a typed method can be run through
// [Client.RunAnalyticByID] or [Client.RunAnalyticByURI], which return the
// decoded response as-is. [Extract] runs a jq program over such a raw
// response when none of the built-in normalizers fit.
//
// # Error Handling
//
// The SDK provides typed errors for common failure cases:
//
//	table, err := client.Core.OccupationWages(ctx, params)
//	if err != nil {
//	    var apiErr *jobseq.Error
//	    if errors.As(err, &apiErr) {
//	        switch apiErr.Code {
//	        case "UNAUTHORIZED":
//	            // Token expired or credentials rejected.
//	        case "BAD_REQUEST":
//	            // The vendor rejected the payload.
//	        }
//	    }
//	}
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines. Each
// method call is independent and does not share state beyond the bearer
// token and the taxonomy-lookup cache, both of which are read-only after
// construction.
package jobseq

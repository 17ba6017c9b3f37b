package abcnews

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tallyroom-backend/lib/timezone"

	"go.opentelemetry.io/otel/attribute"
)

type Request struct {
	// lowercase jurisdiction code, "federal" or a state/territory
	Region string
	// election year, e.g. "2022"
	Year string
}

// Result is the uniform envelope handed back to callers. Scrape never
// returns an error: every failure mode ends up in Errors with Success
// false.
type Result struct {
	Success    bool
	Records    []MemberRecord
	Errors     []string
	TotalFound int

	// which strategy tier produced the records, for provenance
	WinningTier string
	StartedAt   time.Time
	FinishedAt  time.Time
}

func failed(started time.Time, errs ...string) Result {
	return Result{
		Errors:     errs,
		StartedAt:  started,
		FinishedAt: timezone.Now(),
	}
}

// Scrape walks the strategy chain for one election, stopping at the
// first attempt that yields any records. Attempts run strictly in order,
// each makes exactly one request, and every failed attempt is noted in
// the result rather than aborting the chain. The caller owns the overall
// deadline through ctx; once it expires the chain is abandoned and any
// partial progress discarded.
func (c *Client) Scrape(ctx context.Context, req Request) Result {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	started := timezone.Now()

	region := strings.ToLower(strings.TrimSpace(req.Region))
	year := strings.TrimSpace(req.Year)
	if region == "" || year == "" {
		return failed(started, "both a region code and an election year are required")
	}

	span.SetAttributes(
		attribute.String("region", region),
		attribute.String("year", year),
	)

	result := Result{StartedAt: started}
	for _, att := range c.attempts(region, year) {
		if ctx.Err() != nil {
			return failed(started, fmt.Sprintf("scrape abandoned: %s", ctx.Err()))
		}

		slog.DebugContext(ctx, "attempting source", "tier", att.tier, "url", att.url)
		records, err := att.run(ctx, att.url)
		if err != nil {
			// a mid-request deadline surfaces as a fetch error; report
			// the timeout alone, not the attempts before it
			if ctx.Err() != nil {
				return failed(started, fmt.Sprintf("scrape abandoned: %s", ctx.Err()))
			}
			result.Errors = append(result.Errors, fmt.Sprintf("tier %s (%s): %s", att.tier, att.url, err))
			continue
		}
		if len(records) == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("tier %s (%s): no records extracted", att.tier, att.url))
			continue
		}

		result.Records = Dedupe(records)
		result.TotalFound = len(result.Records)
		result.Success = true
		result.WinningTier = att.tier
		slog.InfoContext(ctx, "scrape succeeded",
			"tier", att.tier,
			"region", region,
			"year", year,
			"records", result.TotalFound,
		)
		break
	}

	result.FinishedAt = timezone.Now()
	return result
}

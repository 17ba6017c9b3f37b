// Package abcnews extracts per-electorate results from the ABC's election
// coverage. The feeds behind the coverage are undocumented and reshaped
// between elections without notice, so nothing here binds to one schema:
// retrieval walks a chain of strategies from clean JSON endpoints down to
// reading rendered markup, and parsing probes several possible field names
// for every value it needs.
//
// each retrieval strategy generally has this structure:
// 1. build the url for a region and year.
// 2. make the request, accepting only a 200.
// 3. locate the list of electorate records somewhere in the body.
// 4. normalize each record, skipping ones missing mandatory fields.
package abcnews

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"tallyroom-backend/lib/parties"
	"tallyroom-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://www.abc.net.au"

// the WAEC publishes its own results feed, the one region with an
// alternate authoritative source when every ABC strategy fails
const defaultWAFallbackURL = "https://api.elections.wa.gov.au"

type ClientOptions struct {
	// BaseUrl overrides the news site root, used by tests
	BaseUrl string
	// WAFallbackUrl overrides the WA electoral commission root
	WAFallbackUrl string
}

type Client struct {
	http       *resty.Client
	baseUrl    string
	waFallback string
	parties    *parties.Canonicalizer
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseURL
	}
	waFallback := opts.WAFallbackUrl
	if waFallback == "" {
		waFallback = defaultWAFallbackURL
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetHeader("accept", "application/json, text/html;q=0.9, */*;q=0.8")
	client.SetHeader("accept-language", "en-AU,en;q=0.9")

	telemetry.InstrumentResty(client, "scrapers/abcnews/http")

	return &Client{
		http:       client,
		baseUrl:    baseUrl,
		waFallback: waFallback,
		parties:    parties.NewCanonicalizer(parties.Default()),
	}, nil
}

// fetch makes the single request an attempt is allowed. Anything but a
// 200 fails the attempt, there are no retries at this layer.
func (c *Client) fetch(ctx context.Context, link string) ([]byte, error) {
	res, err := c.http.R().SetContext(ctx).Get(link)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode())
	}
	return res.Body(), nil
}

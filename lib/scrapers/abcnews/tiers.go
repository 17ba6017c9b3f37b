package abcnews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"tallyroom-backend/lib/fieldutil"
	"tallyroom-backend/lib/htmlutil"
	"tallyroom-backend/lib/timezone"

	"github.com/PuerkitoBio/goquery"
)

// publish dates the ABC's loader api expects for elections we have
// scraped before. unknown elections synthesize a generic date instead of
// failing the whole tier.
var publishDates = map[string]string{
	"federal/2019": "2019-05-18",
	"federal/2022": "2022-05-21",
	"federal/2025": "2025-05-03",
	"nsw/2023":     "2023-03-25",
	"vic/2022":     "2022-11-26",
	"qld/2024":     "2024-10-26",
	"sa/2022":      "2022-03-19",
	"tas/2024":     "2024-03-23",
	"wa/2021":      "2021-03-13",
	"wa/2025":      "2025-03-08",
	"act/2024":     "2024-10-19",
	"nt/2024":      "2024-08-24",
}

func publishDateFor(region, year string) string {
	if date, ok := publishDates[region+"/"+year]; ok {
		return date
	}
	return fmt.Sprintf("%s-05-01", year)
}

type attempt struct {
	tier string
	url  string
	run  func(ctx context.Context, link string) ([]MemberRecord, error)
}

// attempts lists every endpoint in strict priority order: structured
// results feeds, the internal loader api, the results page with its
// embedded state object, the same page read as plain markup, and for WA
// only, the electoral commission's own feed.
func (c *Client) attempts(region, year string) []attempt {
	pageUrl := fmt.Sprintf(
		"%s/news/elections/%s-election-%s/results",
		c.baseUrl, region, year,
	)

	loaderQuery := url.Values{}
	loaderQuery.Set("name", "ElectionElectorateResults")
	loaderQuery.Set("state", region)
	loaderQuery.Set("year", year)
	loaderQuery.Set("publishDate", publishDateFor(region, year))

	out := []attempt{
		{
			tier: "A",
			url:  fmt.Sprintf("%s/dat/news/elections/%s/%s/results.json", c.baseUrl, year, region),
			run:  c.scrapeJSON,
		},
		{
			tier: "A",
			url:  fmt.Sprintf("%s/dat/news/elections/%s/%s/electorates.json", c.baseUrl, year, region),
			run:  c.scrapeJSON,
		},
		{
			tier: "B",
			url:  fmt.Sprintf("%s/news-web/api/loader/channelrefetch?%s", c.baseUrl, loaderQuery.Encode()),
			run:  c.scrapeJSON,
		},
		{
			tier: "C",
			url:  pageUrl,
			run:  c.scrapeEmbedded,
		},
		{
			tier: "D",
			url:  pageUrl,
			run:  c.scrapeMarkup,
		},
	}

	if region == "wa" {
		out = append(out, attempt{
			tier: "E",
			url:  fmt.Sprintf("%s/elections/%s/results.json", c.waFallback, year),
			run:  c.scrapeJSON,
		})
	}
	return out
}

// scrapeJSON handles endpoints that return the payload directly.
func (c *Client) scrapeJSON(ctx context.Context, link string) ([]MemberRecord, error) {
	ctx, span := tracer.Start(ctx, "scrapeJSON")
	defer span.End()

	body, err := c.fetch(ctx, link)
	if err != nil {
		return nil, err
	}

	var payload any
	err = json.Unmarshal(body, &payload)
	if err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}
	return c.extractAll(payload, link), nil
}

func (c *Client) extractAll(payload any, link string) []MemberRecord {
	var records []MemberRecord
	for _, item := range findRecordList(payload) {
		record := extractRecord(item, link, c.parties)
		if record == nil {
			continue
		}
		records = append(records, *record)
	}
	return records
}

// results pages assign their data to a global before hydration, e.g.
// `window.__INITIAL_STATE__ = {...};`, and next.js builds ship it in a
// json script tag instead
var embeddedStateRegex = regexp.MustCompile(`(?s)window\.__[A-Z_]+__\s*=\s*(\{.*\})`)

// scrapeEmbedded pulls the state object out of the page's script tags
// and treats it like any other json payload.
func (c *Client) scrapeEmbedded(ctx context.Context, link string) ([]MemberRecord, error) {
	ctx, span := tracer.Start(ctx, "scrapeEmbedded")
	defer span.End()

	body, err := c.fetch(ctx, link)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var records []MemberRecord
	doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		text := script.Text()

		var blob string
		if script.AttrOr("type", "") == "application/json" {
			blob = text
		} else if groups := embeddedStateRegex.FindStringSubmatch(text); len(groups) > 1 {
			blob = strings.TrimSuffix(strings.TrimSpace(groups[1]), ";")
		} else {
			return true
		}

		var payload any
		if json.Unmarshal([]byte(blob), &payload) != nil {
			return true
		}
		records = c.extractAll(payload, link)
		return len(records) == 0
	})

	if len(records) == 0 {
		return nil, fmt.Errorf("no embedded data object found")
	}
	return records, nil
}

var (
	resultBlockRegex = regexp.MustCompile(`(?is)<(article|li|div)[^>]*class="[^"]*(?:electorate|seat|result|card)[^"]*"[^>]*>(.*?)</\s*(?:article|li|div)\s*>`)
	seatLineRegex    = regexp.MustCompile(`(?i)^(?:electorate|seat)\s*[:\-]\s*(.+)$`)
	marginLineRegex  = regexp.MustCompile(`(?i)^margin\s*[:\-]?\s*(.+)$`)
	swingLineRegex   = regexp.MustCompile(`(?i)^swing\s*[:\-]?\s*(.+)$`)
	personLineRegex  = regexp.MustCompile(`^[A-Z][\w'.-]*(?: [A-Z][\w'.-]*)+$`)
)

// scrapeMarkup reads candidate cards straight out of rendered html, the
// last generic resort when every data feed is gone or reshaped beyond
// recognition. blocks are captured by pattern, tag-stripped, then mined
// line by line.
func (c *Client) scrapeMarkup(ctx context.Context, link string) ([]MemberRecord, error) {
	ctx, span := tracer.Start(ctx, "scrapeMarkup")
	defer span.End()

	body, err := c.fetch(ctx, link)
	if err != nil {
		return nil, err
	}

	var records []MemberRecord
	for _, block := range resultBlockRegex.FindAllStringSubmatch(string(body), -1) {
		record := c.recordFromLines(htmlutil.StripTags(block[2]), link)
		if record == nil {
			continue
		}
		records = append(records, *record)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no result blocks matched")
	}
	return records, nil
}

func (c *Client) recordFromLines(lines []string, link string) *MemberRecord {
	var name, party, seat string
	var margin, swing float64

	for _, line := range lines {
		if groups := seatLineRegex.FindStringSubmatch(line); len(groups) > 1 {
			if seat == "" {
				seat = strings.TrimSpace(groups[1])
			}
			continue
		}
		if groups := marginLineRegex.FindStringSubmatch(line); len(groups) > 1 {
			if margin == 0 {
				margin = fieldutil.Percent(groups[1])
			}
			continue
		}
		if groups := swingLineRegex.FindStringSubmatch(line); len(groups) > 1 {
			if swing == 0 {
				swing = fieldutil.Swing(groups[1])
			}
			continue
		}
		if party == "" && c.parties.Known(line) {
			party = line
			continue
		}
		if name == "" && personLineRegex.MatchString(line) {
			name = line
		}
	}

	if seat == "" || name == "" {
		return nil
	}
	first, last := splitName(name)
	if first == "" || last == "" {
		return nil
	}

	var rawParty any
	if party != "" {
		rawParty = party
	}
	partyName := c.parties.Canonical(rawParty)
	return &MemberRecord{
		FirstName:     first,
		LastName:      last,
		PartyName:     partyName,
		PartyCode:     c.parties.ShortCode(partyName),
		Electorate:    seat,
		MarginPercent: margin,
		SwingPercent:  swing,
		SourceUrl:     link,
		ScrapedAt:     timezone.Now(),
	}
}

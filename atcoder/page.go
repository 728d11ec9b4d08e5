package atcoder

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fixed lookup paths into the remote pages. Each selector is a contract with
// the site's markup; when AtCoder changes its pages, this is the one place
// to touch.
const (
	loginTokenSelector = `#main-container > div.row > div > form > input[type="hidden"]`
	taskTokenSelector  = `input[type="hidden"][name="csrf_token"]`

	submissionLinkSelector = `#main-container > div.row > div:nth-child(3) > div.panel.panel-default.panel-submission > ` +
		`div.table-responsive > table > tbody > tr:nth-child(1) > td:nth-child(8) > a`

	detailTablePrefix = `#main-container > div.row > div:nth-child(2) > div:nth-child(6) > table > tbody > `

	detailSubmitTimeSelector = detailTablePrefix + `tr:nth-child(1) > td > time`
	detailProblemSelector    = detailTablePrefix + `tr:nth-child(2) > td > a`
	detailUserSelector       = detailTablePrefix + `tr:nth-child(3) > td > a:nth-child(1)`
	detailStatusSelector     = detailTablePrefix + `tr:nth-child(7) > td > span`
	detailTimeSelector       = detailTablePrefix + `tr:nth-child(8) > td`
	detailMemorySelector     = detailTablePrefix + `tr:nth-child(9) > td`
)

// submissionIDPattern extracts the numeric submission ID from the link of
// the newest submissions table row.
var submissionIDPattern = regexp.MustCompile(`submissions/([0-9]+)`)

// page wraps one fetched remote page for fixed-path lookups.
type page struct {
	doc *goquery.Document
}

func parsePage(body []byte) (*page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return &page{doc: doc}, nil
}

// attr returns an attribute of the first node matching the selector.
func (p *page) attr(selector string, name string) (string, bool) {
	return p.doc.Find(selector).First().Attr(name)
}

// text returns the trimmed text of the first node matching the selector.
// A missing node becomes "/": that both tolerates partially rendered detail
// pages and is classified as "still judging" by ParseStatus.
func (p *page) text(selector string) string {
	sel := p.doc.Find(selector)
	if sel.Length() == 0 {
		return "/"
	}
	return strings.TrimSpace(sel.First().Text())
}

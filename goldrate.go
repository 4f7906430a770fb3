package goldbook

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Fetches the latest gold quote to suggest a rate when entering fixing
// vouchers. The quote service prices per troy ounce; the book prices per
// gram.

const goldQuoteURL = "https://data-asg.goldprice.org/dbXRates/" + BookCurrency

// gramsPerTroyOunce converts the quote to the book's per-gram convention.
var gramsPerTroyOunce = decimal.NewFromFloat(31.1034768)

// LatestGoldRate returns the most recent gold price per gram in the book
// currency. Responses are cached on disk with a daily expiry, so repeated
// voucher entry does not hammer the quote service.
func LatestGoldRate() (decimal.Decimal, error) {
	var jobj any
	if err := getJSON(quoteClient(), goldQuoteURL, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("could not fetch gold quote: %w", err)
	}

	path := "$.items[0].xauPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing gold quote: %q %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	perOunce, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("error parsing gold quote: %q not a number: %v", path, jval)
	}
	if perOunce <= 0 {
		return decimal.Zero, fmt.Errorf("gold quote is not positive: %v", perOunce)
	}
	return decimal.NewFromFloat(perOunce).Div(gramsPerTroyOunce), nil
}

// quoteCache caches HTTP responses on disk, one file per request per day.
// The cache key embeds today's date, so yesterday's quote is never hit again
// and no explicit expiry is needed.
type quoteCache struct {
	base http.RoundTripper
}

func (c *quoteCache) RoundTrip(req *http.Request) (*http.Response, error) {
	sum := sha1.Sum([]byte(Today().String() + " " + req.Method + " " + req.URL.String()))
	file := filepath.Join(os.TempDir(), fmt.Sprintf("gbk-quote-%x", sum))

	if content, err := os.ReadFile(file); err == nil {
		return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	// DumpResponse leaves resp.Body readable, so the live response can still
	// be served when the cache write fails.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return resp, nil
	}
	if err := os.WriteFile(file, content, 0o600); err != nil {
		log.Printf("quote cache write skipped: %v", err)
	}
	return resp, nil
}

// quoteClient returns an http client whose responses are cached for the day.
func quoteClient() *http.Client {
	return &http.Client{Transport: &quoteCache{http.DefaultTransport}}
}

// getJSON fetches addr and decodes the JSON response body into v.
func getJSON(client *http.Client, addr string, v any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v: %v", addr, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

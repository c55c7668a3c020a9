// Package myp fetches local-market card listings from the hosted MyP
// backend, a PostgREST API over the scraped price table. The rows keep
// the scraper's Portuguese vocabulary; this package normalizes them into
// canonical listings.
package myp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/date"
)

// Client queries one MyP backend. All requests carry the project API key,
// both as the PostgREST apikey header and as a bearer token.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New returns a client for the backend at baseURL. The HTTP responses are
// cached on disk for the day: the scraper publishes one snapshot a day,
// there is no point in asking twice.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  cardfolio.NewDailyCachingClient(),
	}
}

// get performs an authenticated GET and unmarshals the JSON response.
func (c *Client) get(ctx context.Context, path string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", path, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http GET %q: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", c.baseURL, path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("cannot read response for %q: %w", path, err)
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// row is one scraped price observation as the backend stores it.
//
//	{
//	    "carta": "Charizard VMAX",
//	    "idioma": "ING",
//	    "estado": "Quase Nova",
//	    "valor": 50.00,
//	    "data_coleta": "2025-06-10T03:12:44+00:00",
//	    "vendedor": "lojinha"
//	}
type row struct {
	Carta      string          `json:"carta"`
	Idioma     string          `json:"idioma"`
	Estado     string          `json:"estado"`
	Valor      decimal.Decimal `json:"valor"`
	DataColeta string          `json:"data_coleta"`
	Vendedor   string          `json:"vendedor"`
}

// listing normalizes the row's vocabulary into a canonical listing.
func (r row) listing() (cardfolio.Listing, error) {
	day, err := date.Parse(r.DataColeta)
	if err != nil {
		return cardfolio.Listing{}, fmt.Errorf("bad collection date %q for %q: %w", r.DataColeta, r.Carta, err)
	}
	return cardfolio.Listing{
		CardName:    strings.TrimSpace(r.Carta),
		Language:    cardfolio.NormalizeLanguage(r.Idioma),
		Condition:   cardfolio.NormalizeCondition(r.Estado),
		Price:       cardfolio.BRL(r.Valor),
		CollectedAt: day,
		Seller:      r.Vendedor,
	}, nil
}

// Listings fetches the listings collected since the given day into a
// catalog. Rows with an unparseable date are logged and skipped, so one
// bad scrape never sinks a whole snapshot.
func (c *Client) Listings(ctx context.Context, since date.Date) (*cardfolio.Catalog, error) {
	path := "/rest/v1/precos?select=*&order=data_coleta.desc"
	if !since.IsZero() {
		path += "&data_coleta=gte." + since.String()
	}

	rows := make([]row, 0)
	if err := c.get(ctx, path, &rows); err != nil {
		return nil, fmt.Errorf("error fetching myp listings: %w", err)
	}

	catalog := cardfolio.NewCatalog()
	for _, r := range rows {
		l, err := r.listing()
		if err != nil {
			log.Printf("skipping row: %v", err)
			continue
		}
		catalog.Add(l)
	}
	return catalog, nil
}

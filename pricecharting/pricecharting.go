// Package pricecharting fetches reference-market card prices. The feed
// publishes one USD snapshot per card per day: the ungraded (raw) price is
// what the arbitrage scan compares against, so every row is materialized
// as a canonical EN/NM listing.
package pricecharting

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/date"
)

// DefaultBaseURL is the hosted mirror of the daily price snapshot.
const DefaultBaseURL = "https://api.pricecharting.example.com"

// Client queries the reference price feed.
type Client struct {
	baseURL string
	token   string
	client  *resty.Client
}

// New returns a client for the feed at baseURL, authenticated by token.
func New(baseURL, token string) *Client {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  client,
	}
}

// row is one card in the daily snapshot.
//
//	{
//	    "card_name": "Charizard VMAX",
//	    "ungraded_price": 12.00,
//	    "psa10_price": 310.00,
//	    "data_coleta": "2025-06-09"
//	}
type row struct {
	CardName      string          `json:"card_name"`
	UngradedPrice decimal.Decimal `json:"ungraded_price"`
	PSA10Price    decimal.Decimal `json:"psa10_price"`
	DataColeta    string          `json:"data_coleta"`
}

// Snapshot fetches the daily snapshot matching the query (empty fetches
// everything) into a catalog of EN/NM listings priced in USD. Graded
// prices are a different asset class and are not materialized.
func (c *Client) Snapshot(ctx context.Context, query string) (*cardfolio.Catalog, error) {
	addr := fmt.Sprintf("%s/prices?t=%s", c.baseURL, url.QueryEscape(c.token))
	if query != "" {
		addr += "&q=" + url.QueryEscape(query)
	}

	resp, err := c.client.R().SetContext(ctx).Get(addr)
	if err != nil {
		return nil, fmt.Errorf("error fetching reference prices: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("cannot http GET reference prices: %v", resp.Status())
	}

	rows := make([]row, 0)
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("error decoding reference prices: %w", err)
	}

	catalog := cardfolio.NewCatalog()
	for _, r := range rows {
		day, err := date.Parse(r.DataColeta)
		if err != nil {
			log.Printf("skipping reference row %q: %v", r.CardName, err)
			continue
		}
		catalog.Add(cardfolio.Listing{
			CardName:    r.CardName,
			Language:    cardfolio.LangEN,
			Condition:   cardfolio.CondNM,
			Price:       cardfolio.USD(r.UngradedPrice),
			CollectedAt: day,
		})
	}
	return catalog, nil
}

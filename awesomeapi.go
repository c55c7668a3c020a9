package cardfolio

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"github.com/tcgdx/cardfolio/date"
)

/*
	{
	    "USDBRL": {
	        "code": "USD",
	        "codein": "BRL",
	        "name": "Dólar Americano/Real Brasileiro",
	        "high": "5.43",
	        "low": "5.38",
	        "bid": "5.4123",
	        "ask": "5.4129",
	        "timestamp": "1724941980",
	        "create_date": "2024-08-29 11:33:00"
	    }
	}
*/

// awesomeAPIAddr is the open AwesomeAPI endpoint for the latest USD/BRL quote.
const awesomeAPIAddr = "https://economia.awesomeapi.com.br/json/last/USD-BRL"

// rates memoizes the day's quote in-process, so a REPL session asking for
// several scans fetches at most once.
var rates = NewCache[date.Date, Quantity]()

// LatestBRLPerUSD fetches the latest USD to BRL exchange rate.
//
// The scanner itself still takes the rate as a caller-supplied constant;
// this is a convenience for callers that do not want to type it in. The
// quote is cached on disk for the day.
func LatestBRLPerUSD() (Quantity, error) {
	return rates.GetOrFetch(date.Today(), fetchBRLPerUSD)
}

func fetchBRLPerUSD() (Quantity, error) {
	var jobj any
	if err := jwget(NewDailyCachingClient(), awesomeAPIAddr, &jobj); err != nil {
		return Quantity{}, fmt.Errorf("error fetching %q: %w", "USD/BRL", err)
	}
	path := "$.USDBRL.bid"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Quantity{}, fmt.Errorf("error parsing %q: %q %w", "USD/BRL", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	s, ok := jval.(string)
	if !ok {
		return Quantity{}, fmt.Errorf("error parsing %q: %q not a string: %v", "USD/BRL", path, jval)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("error parsing %q bid %q: %w", "USD/BRL", s, err)
	}
	if !d.IsPositive() {
		return Quantity{}, fmt.Errorf("invalid %q rate: %s", "USD/BRL", d)
	}
	return Q(d), nil
}

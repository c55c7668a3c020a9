package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tcgdx/cardfolio"
	"github.com/tcgdx/cardfolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a trading-card collector. He is here primarily to learn what his cards are
			worth, whether his collection gained value, and whether there is a good deal to make today.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. The Appraiser knows the user's catalogs and portfolio; check with him first
			before speculating about prices.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScout returns the expert grounding answers in current card-market news.
func NewScout() *Expert {
	return &Expert{
		Name: "Scout",
		Description: `This is an expert scout of the trading-card market,
		very well aware of sets, reprints, tournament results and the latest
		news that move card prices.
		Ask the Scout whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in the trading-card market. You can search and find anything related
			to card sets, reprint announcements, tournament metagame shifts and marketplace trends.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAppraiser returns the expert in charge of the user's catalogs and portfolio.
func NewAppraiser() *Expert {
	lib := []Function{Price, Opportunities, Valuation}

	return &Expert{
		Name: "Appraiser",
		Description: `This is the Appraiser. He is in charge of reading the user's price catalogs
		and portfolio. He can resolve the current price of any card, value the whole collection,
		and scan for arbitrage opportunities between the local and reference markets.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an appraiser in charge of the user's card collection.
				You know how to use the Tools to extract relevant information about the user's
				catalogs and portfolio. You are part of a team of experts; yours is everything
				priced in the user's data. Pardon their approximative card names and figure out
				what they meant.

				Use the available tools to get information about
				  - the current price of a card in a given language and condition
				  - the value of the whole portfolio
				  - today's arbitrage opportunities
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var Price = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Price",
		Description: `Price resolves the best current price of a card in a given language and
		condition from the user's local catalog. The price is adjusted across variants when the
		exact one is not listed.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"card": {
					Type:        genai.TypeString,
					Description: "The card name to price.",
				},
				"language": {
					Type:        genai.TypeString,
					Description: "The language of the variant, e.g. PT-BR, EN, JPN. Defaults to PT-BR.",
				},
				"condition": {
					Type:        genai.TypeString,
					Description: "The condition grade, e.g. NM, SP, MP, HP, D. Defaults to NM.",
				},
			},
			Required: []string{"card"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted price report, including the source listing and the match quality.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		card, ok := args["card"].(string)
		if !ok {
			return failure(id, "Price", fmt.Errorf("argument 'card' is not a string but %T", args["card"]))
		}
		lang, _ := args["language"].(string)
		if lang == "" {
			lang = "PT-BR"
		}
		cond, _ := args["condition"].(string)
		if cond == "" {
			cond = "NM"
		}

		catalog, err := decodeCatalog(localFile)
		if err != nil {
			return failure(id, "Price", err)
		}
		l := cardfolio.NormalizeLanguage(lang)
		c := cardfolio.NormalizeCondition(cond)
		resolved := catalog.Resolve(card, l, c, cardfolio.DefaultFactors())
		return success(id, "Price", renderer.PriceMarkdown(card, l, c, resolved))
	},
}

var Opportunities = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Opportunities",
		Description: `Opportunities scans today's local and reference catalogs for cards that can
		be bought locally and sold on the reference market at a profit, ranked by ROI.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"rate": {
					Type:        genai.TypeNumber,
					Description: "The USD/BRL conversion rate. The day's quote is fetched when omitted.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of opportunities with buy, sell, profit and ROI columns.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		rate := cardfolio.Q(0)
		if v, ok := args["rate"].(float64); ok {
			rate = cardfolio.Q(v)
		}
		if !rate.IsPositive() {
			var err error
			rate, err = cardfolio.LatestBRLPerUSD()
			if err != nil {
				return failure(id, "Opportunities", fmt.Errorf("could not fetch USD/BRL rate: %w", err))
			}
		}

		local, err := decodeCatalog(localFile)
		if err != nil {
			return failure(id, "Opportunities", err)
		}
		reference, err := decodeCatalog(referenceFile)
		if err != nil {
			return failure(id, "Opportunities", err)
		}

		opportunities := cardfolio.Scan(local, reference, rate)
		return success(id, "Opportunities", renderer.OpportunitiesMarkdown(opportunities, rate))
	},
}

var Valuation = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Valuation",
		Description: `Valuation computes the current worth of the user's whole portfolio: total
		value, acquisition cost, gain, and the detail per position. Positions whose price cannot
		be resolved are listed separately.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted valuation report.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		positions, err := decodePositions(portfolioFile)
		if err != nil {
			return failure(id, "Valuation", err)
		}
		catalog, err := decodeCatalog(localFile)
		if err != nil {
			return failure(id, "Valuation", err)
		}

		v := cardfolio.Value(positions, catalog, cardfolio.DefaultFactors())
		return success(id, "Valuation", renderer.ValuationMarkdown(&v))
	},
}

// The experts read the app's default files directly; wiring the cmd
// package's flags through here would create an import cycle.
const (
	localFile     = "local.jsonl"
	referenceFile = "reference.jsonl"
	portfolioFile = "portfolio.jsonl"
)

func decodeCatalog(filename string) (*cardfolio.Catalog, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return cardfolio.NewCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open catalog file %q: %w", filename, err)
	}
	defer f.Close()
	return cardfolio.DecodeListings(f)
}

func decodePositions(filename string) ([]cardfolio.Position, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", filename, err)
	}
	defer f.Close()
	return cardfolio.DecodePositions(f)
}

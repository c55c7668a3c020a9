// Package cardfolio provides the pricing core of a portfolio-tracking and
// market-analytics application for trading-card collectors.
//
// Source catalogs are scraped daily from heterogeneous marketplaces whose
// listings are imperfectly matched: free-text card names, per-source
// language and condition vocabularies, different currencies. This package
// owns the logic that makes those catalogs comparable:
//
//   - Price Resolver: finds the best-matching price record for a card and
//     desired variant using a cascading match strategy (exact, then
//     case-insensitive, then prefix), and adjusts the found price to the
//     requested variant with multiplicative conversion factors.
//   - Normalizer: maps localized or free-text condition and language
//     strings to canonical codes, totally and idempotently.
//   - Arbitrage Scanner: joins the local marketplace snapshot against the
//     international reference market by normalized card name, computes
//     profit and ROI per card, and ranks the opportunities.
//   - Valuation: prices a portfolio of positions through the one shared
//     resolver, and builds consolidated per-day value series.
//
// Everything here is pure computation over rows materialized in memory by
// the source adapters (see the myp and pricecharting packages). Degraded
// outcomes (no match, missing conversion factor) are absorbed and returned
// as zero values with an explicit match quality, never as errors: callers
// must inspect the match quality before trusting a zero.
//
// This package serves as the foundational logic for the `cfo` command-line
// tool.
package cardfolio

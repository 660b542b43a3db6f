// Package scoring implements the deterministic scoring and aggregation
// engine: lexical sentiment classification, mood/wellness/nutrition/waste
// score calculators, recommendation generation, and per-domain progress
// summaries. All functions are pure and stateless; behavior is controlled
// entirely by an injectable Params value.
package scoring

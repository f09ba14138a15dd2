// Package match resolves noisy free-text labels against the reference tables
// and scores how close the resolution is.
package match

import (
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Tier-1 approximate search accepts any candidate within this normalized
// distance of the query.
const approxThreshold = 0.6

var (
	levMetric  = metrics.NewLevenshtein()
	diceMetric = metrics.NewSorensenDice()
)

// Result is one scored match. Confidence is always in [0,100]; absence of a
// real match shows up as low confidence, never as an error.
type Result[T any] struct {
	Item       T
	Confidence int
}

// Options tunes the fallback ladder per table.
type Options[T any] struct {
	// Floor is the minimum tier-2 similarity rating to accept (0.3 for
	// industries, 0.2 for job roles — role names vary more inside one
	// industry, so they get the looser floor).
	Floor float64
	// StubConfidence is returned with the first candidate when every tier
	// comes up empty.
	StubConfidence int
	// Fallback supplies a synthetic record when the candidate table itself
	// is empty. Optional.
	Fallback func() (T, bool)
}

// Best returns the closest candidate to query plus a 0-100 confidence. The
// strategies run in order and the first hit wins; Best never fails to produce
// an answer and never panics.
func Best[T any](query string, candidates []T, keys func(T) []string, opts Options[T]) Result[T] {
	query = strings.TrimSpace(query)

	if len(candidates) == 0 {
		if opts.Fallback != nil {
			if item, ok := opts.Fallback(); ok {
				return Result[T]{Item: item, Confidence: 0}
			}
		}
		var zero T
		return Result[T]{Item: zero, Confidence: 0}
	}
	if query == "" {
		return Result[T]{Item: candidates[0], Confidence: 0}
	}

	strategies := []func() (Result[T], bool){
		func() (Result[T], bool) { return approximateSearch(query, candidates, keys) },
		func() (Result[T], bool) { return pairwiseSimilarity(query, candidates, keys, opts.Floor) },
	}
	for _, strategy := range strategies {
		if res, ok := runStrategy(strategy); ok {
			return res
		}
	}

	return Result[T]{Item: candidates[0], Confidence: opts.StubConfidence}
}

// runStrategy treats a panicking strategy as "no match" so the ladder can
// keep going.
func runStrategy[T any](strategy func() (Result[T], bool)) (res Result[T], ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return strategy()
}

// ── Tier 1: approximate multi-field search ─────────────

// approximateSearch scores every candidate by its minimum textual distance
// across the key fields and accepts the lowest-distance hit under the
// threshold. Confidence = round((1-distance)*100).
func approximateSearch[T any](query string, candidates []T, keys func(T) []string) (Result[T], bool) {
	bestDist := math.Inf(1)
	bestIdx := -1

	for i, c := range candidates {
		for _, field := range keys(c) {
			if d := fieldDistance(query, field); d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}
	}

	if bestIdx < 0 || bestDist > approxThreshold {
		return Result[T]{}, false
	}
	return Result[T]{
		Item:       candidates[bestIdx],
		Confidence: int(math.Round((1 - bestDist) * 100)),
	}, true
}

// fieldDistance computes a normalized 0-1 distance between a query and one
// key field. Case-insensitive; tolerates substring containment and partial or
// reordered token matches.
func fieldDistance(query, field string) float64 {
	q := cleanText(query)
	f := cleanText(field)
	if q == "" || f == "" {
		return 1
	}
	if q == f {
		return 0
	}

	if strings.Contains(f, q) || strings.Contains(q, f) {
		shorter, longer := len(q), len(f)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return 0.5 * (1 - float64(shorter)/float64(longer))
	}

	dist := 1 - strutil.Similarity(q, f, levMetric)
	if overlap := tokenOverlap(q, f); overlap > 0 {
		// A half-token hit must still land inside the acceptance
		// threshold, hence the 0.8 weight.
		if d := 1 - 0.8*overlap; d < dist {
			dist = d
		}
	}

	if dist < 0 {
		dist = 0
	}
	if dist > 1 {
		dist = 1
	}
	return dist
}

// tokenOverlap returns the fraction of query tokens that show up in the
// field, counting substring hits so "dev" still lands on "developer".
func tokenOverlap(query, field string) float64 {
	qTokens := strings.Fields(query)
	fTokens := strings.Fields(field)
	if len(qTokens) == 0 || len(fTokens) == 0 {
		return 0
	}

	hits := 0
	for _, qt := range qTokens {
		for _, ft := range fTokens {
			if strings.Contains(ft, qt) || strings.Contains(qt, ft) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(qTokens))
}

// ── Tier 2: pairwise string similarity ─────────────────

// pairwiseSimilarity rates the query against the single most salient key
// field (the first one — the name) of every candidate and accepts the maximum
// rating if it clears the floor.
func pairwiseSimilarity[T any](query string, candidates []T, keys func(T) []string, floor float64) (Result[T], bool) {
	q := cleanText(query)

	bestRating := 0.0
	bestIdx := -1
	for i, c := range candidates {
		fields := keys(c)
		if len(fields) == 0 {
			continue
		}
		name := cleanText(fields[0])
		if name == "" {
			continue
		}
		if rating := strutil.Similarity(q, name, diceMetric); rating > bestRating {
			bestRating = rating
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestRating <= floor {
		return Result[T]{}, false
	}
	return Result[T]{
		Item:       candidates[bestIdx],
		Confidence: int(math.Round(bestRating * 100)),
	}, true
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

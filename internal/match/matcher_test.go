package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/roleradar-api/internal/model"
)

func industryFixture() []model.Industry {
	return []model.Industry{
		{ID: "ind-tech", Name: "Technology", Description: "Software development and technology services"},
		{ID: "ind-health", Name: "Healthcare", Description: "Hospitals clinics and medical providers"},
		{ID: "ind-media", Name: "Media", Description: "Film, television, gaming and interactive entertainment"},
	}
}

func TestBestExactNameWins(t *testing.T) {
	res := Best("Healthcare", industryFixture(), industryKeys, Options[model.Industry]{
		Floor:          industryFloor,
		StubConfidence: industryStubConfidence,
	})

	assert.Equal(t, "Healthcare", res.Item.Name)
	assert.Equal(t, 100, res.Confidence)
}

func TestBestConfidenceBoundsAndMembership(t *testing.T) {
	candidates := industryFixture()
	queries := []string{
		"Technology", "tech", "software", "hospitals and clinics",
		"gaming studio", "zzzqqq", "!@#$%", "héllo wörld",
		"a very long query that matches nothing in the reference data at all",
	}

	for _, q := range queries {
		res := Best(q, candidates, industryKeys, Options[model.Industry]{
			Floor:          industryFloor,
			StubConfidence: industryStubConfidence,
		})

		assert.GreaterOrEqual(t, res.Confidence, 0, "query %q", q)
		assert.LessOrEqual(t, res.Confidence, 100, "query %q", q)

		found := false
		for _, c := range candidates {
			if c.ID == res.Item.ID {
				found = true
			}
		}
		assert.True(t, found, "query %q must resolve to a table member", q)
	}
}

func TestBestEmptyQueryReturnsFirstCandidate(t *testing.T) {
	for _, q := range []string{"", "   "} {
		res := Best(q, industryFixture(), industryKeys, Options[model.Industry]{
			Floor:          industryFloor,
			StubConfidence: industryStubConfidence,
		})
		assert.Equal(t, "ind-tech", res.Item.ID)
		assert.Equal(t, 0, res.Confidence)
	}
}

func TestBestEmptyCandidates(t *testing.T) {
	// Without a fallback: zero value, confidence 0, no panic.
	res := Best("anything", nil, industryKeys, Options[model.Industry]{})
	assert.Equal(t, model.Industry{}, res.Item)
	assert.Equal(t, 0, res.Confidence)

	// With a synthetic fallback record.
	res = Best("anything", nil, industryKeys, Options[model.Industry]{
		Fallback: func() (model.Industry, bool) {
			return model.Industry{Name: "Technology"}, true
		},
	})
	assert.Equal(t, "Technology", res.Item.Name)
	assert.Equal(t, 0, res.Confidence)
}

func TestBestPartialTokenMatch(t *testing.T) {
	res := Best("gaming studio", industryFixture(), industryKeys, Options[model.Industry]{
		Floor:          industryFloor,
		StubConfidence: industryStubConfidence,
	})

	assert.Equal(t, "Media", res.Item.Name)
	assert.Greater(t, res.Confidence, 0)
}

func TestBestSubstringQuery(t *testing.T) {
	roles := []model.JobRole{
		{ID: "role-gd", RoleName: "Game Developer", Department: "Production"},
		{ID: "role-cp", RoleName: "Content Producer", Department: "Production"},
	}

	res := Best("dev", roles, jobRoleKeys, Options[model.JobRole]{
		Floor:          jobRoleFloor,
		StubConfidence: jobRoleStubConfidence,
	})

	assert.Equal(t, "Game Developer", res.Item.RoleName)
	assert.Greater(t, res.Confidence, 50)
}

func TestBestStubFallback(t *testing.T) {
	// Matches neither tier: falls through to the first candidate at the
	// configured stub confidence.
	res := Best("zzz qqq", industryFixture(), industryKeys, Options[model.Industry]{
		Floor:          industryFloor,
		StubConfidence: industryStubConfidence,
	})

	assert.Equal(t, "ind-tech", res.Item.ID)
	assert.Equal(t, industryStubConfidence, res.Confidence)
}

func TestBestNeverPanics(t *testing.T) {
	panicKeys := func(model.Industry) []string {
		panic("bad key extraction")
	}

	var res Result[model.Industry]
	require.NotPanics(t, func() {
		res = Best("technology", industryFixture(), panicKeys, Options[model.Industry]{
			Floor:          industryFloor,
			StubConfidence: industryStubConfidence,
		})
	})

	// Both scoring tiers blow up, so the ladder lands on the stub.
	assert.Equal(t, "ind-tech", res.Item.ID)
	assert.Equal(t, industryStubConfidence, res.Confidence)
}

func TestFieldDistance(t *testing.T) {
	assert.Equal(t, 0.0, fieldDistance("Healthcare", "healthcare"))
	assert.Equal(t, 1.0, fieldDistance("", "healthcare"))
	assert.Equal(t, 1.0, fieldDistance("healthcare", ""))

	// Containment stays comfortably inside the acceptance threshold.
	assert.Less(t, fieldDistance("dev", "Game Developer"), 0.5)

	// Reordered tokens still land.
	assert.LessOrEqual(t, fieldDistance("developer game", "Game Developer"), 0.2)
}

package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisory_faq/models"
)

func questions(entries []models.FAQEntry) []string {
	qs := make([]string, len(entries))
	for i, e := range entries {
		qs[i] = e.Question
	}
	return qs
}

func sampleCatalog() []models.FAQEntry {
	return []models.FAQEntry{
		{Question: "Q1", Answer: "A1", Categories: []string{"retirement"}, Keywords: []string{"pension"}},
		{Question: "Q2", Answer: "A2", Categories: []string{"tax"}, Keywords: []string{"pension", "isa"}},
	}
}

func TestRank_ConcreteScenario(t *testing.T) {
	item := models.ContentItem{
		CategoryID:     "retirement",
		Tags:           []string{"pension transfer"},
		SearchableText: "how pensions and isa work",
	}

	scored, err := NewRanker(DefaultWeights()).RankScored(item, sampleCatalog(), 2)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	assert.Equal(t, "Q1", scored[0].Question)
	assert.Equal(t, 17, scored[0].Score)
	assert.Equal(t, "Q2", scored[1].Question)
	assert.Equal(t, 9, scored[1].Score)

	ranked, err := Rank(item, sampleCatalog(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2"}, questions(ranked))
}

func TestRank_LengthBound(t *testing.T) {
	catalog := []models.FAQEntry{
		{Question: "a"}, {Question: "b"}, {Question: "c"},
	}
	item := models.ContentItem{CategoryID: "tax"}

	tests := []struct {
		name       string
		catalog    []models.FAQEntry
		maxResults int
		wantLen    int
	}{
		{name: "empty catalog", catalog: nil, maxResults: 5, wantLen: 0},
		{name: "zero max results", catalog: catalog, maxResults: 0, wantLen: 0},
		{name: "fewer than catalog", catalog: catalog, maxResults: 2, wantLen: 2},
		{name: "equal to catalog", catalog: catalog, maxResults: 3, wantLen: 3},
		{name: "more than catalog", catalog: catalog, maxResults: 10, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rank(item, tt.catalog, tt.maxResults)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestRank_NegativeMaxResults(t *testing.T) {
	got, err := Rank(models.ContentItem{}, sampleCatalog(), -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, got)
}

func TestRank_CategoryDominance(t *testing.T) {
	catalog := []models.FAQEntry{
		{Question: "B", Categories: []string{"tax"}, Keywords: []string{"annuity", "drawdown"}},
		{Question: "A", Categories: []string{"retirement"}, Keywords: []string{"inheritance"}},
	}
	item := models.ContentItem{
		CategoryID:     "retirement",
		SearchableText: "choosing between an annuity and drawdown",
	}

	scored, err := NewRanker(DefaultWeights()).RankScored(item, catalog, 2)
	require.NoError(t, err)

	assert.Equal(t, "A", scored[0].Question)
	assert.Equal(t, 10, scored[0].Score)
	assert.Equal(t, "B", scored[1].Question)
	assert.Equal(t, 4, scored[1].Score)
}

func TestRank_TieStability(t *testing.T) {
	catalog := []models.FAQEntry{
		{Question: "X", Categories: []string{"tax"}},
		{Question: "Y", Categories: []string{"tax"}},
		{Question: "Z", Categories: []string{"mortgages"}},
	}
	item := models.ContentItem{CategoryID: "tax"}

	got, err := Rank(item, catalog, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, questions(got))

	// lower-scoring entry first in the catalog must not disturb the X/Y order
	reordered := []models.FAQEntry{catalog[2], catalog[0], catalog[1]}
	got, err = Rank(item, reordered, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, questions(got))
}

func TestRank_AllZeroScoresKeepCatalogOrder(t *testing.T) {
	catalog := []models.FAQEntry{
		{Question: "first", Categories: []string{"tax"}, Keywords: []string{"isa"}},
		{Question: "second", Categories: []string{"mortgages"}, Keywords: []string{"remortgage"}},
		{Question: "third", Categories: []string{"protection"}, Keywords: []string{"life cover"}},
	}

	got, err := Rank(models.ContentItem{CategoryID: "retirement"}, catalog, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, questions(got))
}

func TestRank_Deterministic(t *testing.T) {
	item := models.ContentItem{
		CategoryID:     "tax",
		Tags:           []string{"isa", "pension"},
		SearchableText: "isa allowance and pension relief",
	}
	catalog := append(sampleCatalog(),
		models.FAQEntry{Question: "Q3", Categories: []string{"tax"}, Keywords: []string{"relief"}},
		models.FAQEntry{Question: "Q4", Categories: []string{"tax"}, Keywords: []string{"allowance"}},
	)

	first, err := Rank(item, catalog, 4)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Rank(item, catalog, 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRank_DoesNotMutateCatalog(t *testing.T) {
	catalog := []models.FAQEntry{
		{Question: "low", Categories: []string{"tax"}},
		{Question: "high", Categories: []string{"retirement"}, Keywords: []string{"Pension"}},
	}
	before := questions(catalog)

	_, err := Rank(models.ContentItem{CategoryID: "retirement", Tags: []string{"pension"}}, catalog, 2)
	require.NoError(t, err)

	assert.Equal(t, before, questions(catalog))
	assert.Equal(t, "Pension", catalog[1].Keywords[0])
}

func TestScore(t *testing.T) {
	r := NewRanker(DefaultWeights())

	tests := []struct {
		name  string
		item  models.ContentItem
		entry models.FAQEntry
		want  int
	}{
		{
			name:  "keyword matches tag case-insensitively",
			item:  models.ContentItem{Tags: []string{"isa allowance"}},
			entry: models.FAQEntry{Keywords: []string{"ISA"}},
			want:  5,
		},
		{
			name:  "tag contained in keyword",
			item:  models.ContentItem{Tags: []string{"Pension"}},
			entry: models.FAQEntry{Keywords: []string{"pension transfer"}},
			want:  5,
		},
		{
			name:  "keyword counted once across several tags",
			item:  models.ContentItem{Tags: []string{"isa", "stocks and shares isa", "lifetime isa"}},
			entry: models.FAQEntry{Keywords: []string{"isa"}},
			want:  5,
		},
		{
			name:  "tag and text contributions add up",
			item:  models.ContentItem{Tags: []string{"isa"}, SearchableText: "Your ISA explained"},
			entry: models.FAQEntry{Keywords: []string{"isa"}},
			want:  7,
		},
		{
			name:  "each keyword found in text adds",
			item:  models.ContentItem{SearchableText: "Annuity or drawdown?"},
			entry: models.FAQEntry{Keywords: []string{"annuity", "drawdown", "isa"}},
			want:  4,
		},
		{
			name:  "category match with several categories",
			item:  models.ContentItem{CategoryID: "tax"},
			entry: models.FAQEntry{Categories: []string{"retirement", "tax"}},
			want:  10,
		},
		{
			name:  "category comparison is exact",
			item:  models.ContentItem{CategoryID: "Tax"},
			entry: models.FAQEntry{Categories: []string{"tax"}},
			want:  0,
		},
		{
			name:  "empty item matches nothing",
			item:  models.ContentItem{},
			entry: models.FAQEntry{Categories: []string{"tax"}, Keywords: []string{"isa"}},
			want:  0,
		},
		{
			name:  "empty tag does not match every keyword",
			item:  models.ContentItem{Tags: []string{""}},
			entry: models.FAQEntry{Keywords: []string{"isa", "pension"}},
			want:  0,
		},
		{
			name:  "empty keyword is ignored",
			item:  models.ContentItem{Tags: []string{"isa"}, SearchableText: "isa"},
			entry: models.FAQEntry{Keywords: []string{""}},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Score(tt.item, tt.entry))
		})
	}
}

func TestRanker_CustomWeights(t *testing.T) {
	r := NewRanker(Weights{Category: 1, Tag: 20, Text: 0})
	catalog := []models.FAQEntry{
		{Question: "category", Categories: []string{"tax"}},
		{Question: "tag", Keywords: []string{"isa"}},
	}

	got, err := r.Rank(models.ContentItem{CategoryID: "tax", Tags: []string{"isa"}}, catalog, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"tag", "category"}, questions(got))
	assert.Equal(t, Weights{Category: 1, Tag: 20, Text: 0}, r.Weights())
}

package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisory_faq/catalog"
	"advisory_faq/metrics"
	"advisory_faq/models"
	"advisory_faq/ranking"
)

func testCatalog() *catalog.Catalog {
	faqs := []models.FAQEntry{
		{Question: "Q1", Answer: "A1", Categories: []string{"retirement"}, Keywords: []string{"pension"}},
		{Question: "Q2", Answer: "A2", Categories: []string{"tax"}, Keywords: []string{"pension", "isa"}},
		{Question: "Q3", Answer: "A3", Categories: []string{"mortgages"}, Keywords: []string{"remortgage"}},
	}
	posts := []models.Post{
		{
			Slug:        "pensions-and-isas",
			Title:       "How pensions",
			Excerpt:     "and isa",
			Body:        "work",
			Category:    "retirement",
			Tags:        []string{"pension transfer"},
			PublishedAt: time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC),
		},
	}
	return catalog.New(faqs, posts, "test")
}

func newTestService(m *metrics.Metrics) *FAQService {
	return NewFAQService(testCatalog(), ranking.NewRanker(ranking.DefaultWeights()), m)
}

func TestRelatedFAQsForPost(t *testing.T) {
	svc := newTestService(nil)

	faqs, err := svc.RelatedFAQsForPost("pensions-and-isas", 2)
	require.NoError(t, err)
	require.Len(t, faqs, 2)
	assert.Equal(t, "Q1", faqs[0].Question)
	assert.Equal(t, "Q2", faqs[1].Question)
}

func TestScoredFAQsForPost(t *testing.T) {
	svc := newTestService(nil)

	scored, err := svc.ScoredFAQsForPost("pensions-and-isas", 3)
	require.NoError(t, err)
	require.Len(t, scored, 3)
	assert.Equal(t, []int{17, 9, 0}, []int{scored[0].Score, scored[1].Score, scored[2].Score})
}

func TestRelatedFAQsForPost_Errors(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.RelatedFAQsForPost("missing", 3)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.RelatedFAQsForPost("pensions-and-isas", -1)
	assert.ErrorIs(t, err, ranking.ErrInvalidArgument)
}

func TestRankForContent(t *testing.T) {
	m := metrics.NewMetrics()
	svc := newTestService(m)

	faqs, err := svc.RankForContent(models.ContentItem{CategoryID: "mortgages"}, 1)
	require.NoError(t, err)
	require.Len(t, faqs, 1)
	assert.Equal(t, "Q3", faqs[0].Question)

	_, err = svc.RankForContent(models.ContentItem{}, -5)
	assert.ErrorIs(t, err, ranking.ErrInvalidArgument)

	families, err := testutil.GatherAndCount(prometheusRegistry(t, m), metrics.MetricRankRequestsTotal)
	require.NoError(t, err)
	assert.Equal(t, 2, families)
}

func TestListFAQsAndPosts(t *testing.T) {
	svc := newTestService(nil)

	assert.Len(t, svc.ListFAQs(""), 3)
	tax := svc.ListFAQs("tax")
	require.Len(t, tax, 1)
	assert.Equal(t, "Q2", tax[0].Question)
	assert.Empty(t, svc.ListFAQs("protection"))

	posts := svc.ListPosts()
	require.Len(t, posts, 1)
	assert.Equal(t, "pensions-and-isas", posts[0].Slug)

	stats := svc.CatalogStats()
	assert.Equal(t, 3, stats.FAQCount)
	assert.Equal(t, 1, stats.PostCount)
	assert.Equal(t, "test", stats.Version)
	assert.Equal(t, []string{"mortgages", "retirement", "tax"}, stats.Categories)
}

func TestFAQPageSchemaForPost(t *testing.T) {
	svc := newTestService(nil)

	schema, err := svc.FAQPageSchemaForPost("pensions-and-isas", 2)
	require.NoError(t, err)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"@context": "https://schema.org",
		"@type": "FAQPage",
		"mainEntity": [
			{"@type": "Question", "name": "Q1", "acceptedAnswer": {"@type": "Answer", "text": "A1"}},
			{"@type": "Question", "name": "Q2", "acceptedAnswer": {"@type": "Answer", "text": "A2"}}
		]
	}`, string(data))

	_, err = svc.FAQPageSchemaForPost("missing", 2)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestBuildFAQPageSchema_Empty(t *testing.T) {
	schema := BuildFAQPageSchema(nil)
	assert.NotNil(t, schema.MainEntity)
	assert.Empty(t, schema.MainEntity)
}

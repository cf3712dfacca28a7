package ranking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"advisory_faq/models"
)

// ErrInvalidArgument maxResults 为负数时返回，不会截断为0
var ErrInvalidArgument = errors.New("invalid argument")

// Ranker 使用固定权重为FAQ条目打分并排序
// 零值不可用，请使用 NewRanker 创建
type Ranker struct {
	weights Weights
}

// NewRanker 使用指定权重创建排序器
func NewRanker(weights Weights) *Ranker {
	return &Ranker{weights: weights}
}

// Weights 返回排序器使用的权重
func (r *Ranker) Weights() Weights {
	return r.weights
}

var defaultRanker = NewRanker(DefaultWeights())

// Rank 使用默认权重，按与 item 的相关性返回最多 maxResults 条FAQ
func Rank(item models.ContentItem, catalog []models.FAQEntry, maxResults int) ([]models.FAQEntry, error) {
	return defaultRanker.Rank(item, catalog, maxResults)
}

// Rank 按与 item 的相关性返回最多 maxResults 条FAQ
// len(result) == min(len(catalog), maxResults)，不修改 catalog
func (r *Ranker) Rank(item models.ContentItem, catalog []models.FAQEntry, maxResults int) ([]models.FAQEntry, error) {
	scored, err := r.RankScored(item, catalog, maxResults)
	if err != nil {
		return nil, err
	}

	result := make([]models.FAQEntry, len(scored))
	for i, s := range scored {
		result[i] = s.FAQEntry
	}
	return result, nil
}

// RankScored 同 Rank，保留每条结果的分数
func (r *Ranker) RankScored(item models.ContentItem, catalog []models.FAQEntry, maxResults int) ([]models.ScoredFAQ, error) {
	if maxResults < 0 {
		return nil, fmt.Errorf("%w: maxResults must be >= 0, got %d", ErrInvalidArgument, maxResults)
	}
	if maxResults == 0 || len(catalog) == 0 {
		return []models.ScoredFAQ{}, nil
	}

	q := newQuery(item)
	scored := make([]models.ScoredFAQ, len(catalog))
	for i, entry := range catalog {
		scored[i] = models.ScoredFAQ{FAQEntry: entry, Score: r.score(q, entry)}
	}

	// 同分保持目录顺序
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored, nil
}

// Score 计算单条FAQ对 item 的相关性分数
func (r *Ranker) Score(item models.ContentItem, entry models.FAQEntry) int {
	return r.score(newQuery(item), entry)
}

// query 每次排序只做一次小写转换的 ContentItem
type query struct {
	categoryID string
	tags       []string
	text       string
}

func newQuery(item models.ContentItem) query {
	// 空标签是任何关键词的子串，必须忽略
	tags := make([]string, 0, len(item.Tags))
	for _, t := range item.Tags {
		if t != "" {
			tags = append(tags, strings.ToLower(t))
		}
	}
	return query{
		categoryID: item.CategoryID,
		tags:       tags,
		text:       strings.ToLower(item.SearchableText),
	}
}

func (r *Ranker) score(q query, entry models.FAQEntry) int {
	score := 0

	if q.categoryID != "" && entry.HasCategory(q.categoryID) {
		score += r.weights.Category
	}

	for _, keyword := range entry.Keywords {
		if keyword == "" {
			continue
		}
		k := strings.ToLower(keyword)
		if q.matchesTag(k) {
			score += r.weights.Tag
		}
		if strings.Contains(q.text, k) {
			score += r.weights.Text
		}
	}

	return score
}

// matchesTag 判断是否有标签与关键词互为子串
// 无论命中多少个标签，每个关键词只计一次
func (q query) matchesTag(keyword string) bool {
	for _, t := range q.tags {
		if strings.Contains(t, keyword) || strings.Contains(keyword, t) {
			return true
		}
	}
	return false
}

package services

import (
	"errors"
	"fmt"
	"time"

	"advisory_faq/catalog"
	"advisory_faq/logger"
	"advisory_faq/metrics"
	"advisory_faq/models"
	"advisory_faq/ranking"
)

// ErrPostNotFound 文章不存在
var ErrPostNotFound = errors.New("post not found")

// FAQService 基于静态目录为文章挑选相关FAQ
// 目录和排序器在构造后不再修改，可被多个请求并发使用
type FAQService struct {
	catalog *catalog.Catalog
	ranker  *ranking.Ranker
	metrics *metrics.Metrics
}

// NewFAQService 创建FAQ服务，m 为 nil 时不记录指标
func NewFAQService(c *catalog.Catalog, r *ranking.Ranker, m *metrics.Metrics) *FAQService {
	m.SetCatalogSize(len(c.FAQs()), len(c.Posts()))
	return &FAQService{catalog: c, ranker: r, metrics: m}
}

// RelatedFAQsForPost 返回与指定文章最相关的 maxResults 条FAQ
func (s *FAQService) RelatedFAQsForPost(slug string, maxResults int) ([]models.FAQEntry, error) {
	scored, err := s.ScoredFAQsForPost(slug, maxResults)
	if err != nil {
		return nil, err
	}
	return unscore(scored), nil
}

// ScoredFAQsForPost 同 RelatedFAQsForPost，保留分数
func (s *FAQService) ScoredFAQsForPost(slug string, maxResults int) ([]models.ScoredFAQ, error) {
	post, ok := s.catalog.PostBySlug(slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
	}

	scored, err := s.rank(metrics.SourcePost, post.ContentItem(), maxResults)
	if err != nil {
		logger.Warn("Failed to rank FAQs for post", "slug", slug, "max_results", maxResults, "error", err)
		return nil, err
	}

	logger.Debug("Ranked FAQs for post", "slug", slug, "count", len(scored))
	return scored, nil
}

// RankForContent 为任意内容挑选相关FAQ
func (s *FAQService) RankForContent(item models.ContentItem, maxResults int) ([]models.FAQEntry, error) {
	scored, err := s.ScoredFAQsForContent(item, maxResults)
	if err != nil {
		return nil, err
	}
	return unscore(scored), nil
}

// ScoredFAQsForContent 同 RankForContent，保留分数
func (s *FAQService) ScoredFAQsForContent(item models.ContentItem, maxResults int) ([]models.ScoredFAQ, error) {
	scored, err := s.rank(metrics.SourceContent, item, maxResults)
	if err != nil {
		logger.Warn("Failed to rank FAQs for content", "category", item.CategoryID, "max_results", maxResults, "error", err)
		return nil, err
	}
	return scored, nil
}

func (s *FAQService) rank(source string, item models.ContentItem, maxResults int) ([]models.ScoredFAQ, error) {
	start := time.Now()
	scored, err := s.ranker.RankScored(item, s.catalog.FAQs(), maxResults)
	s.metrics.ObserveRank(source, time.Since(start), len(scored), err)
	return scored, err
}

// ListFAQs 按分类列出FAQ，分类为空时返回全部
func (s *FAQService) ListFAQs(category string) []models.FAQEntry {
	return s.catalog.FAQsInCategory(category)
}

// ListPosts 列出所有文章（不含正文）
func (s *FAQService) ListPosts() []models.PostSummary {
	posts := s.catalog.Posts()
	summaries := make([]models.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, p.Summary())
	}
	return summaries
}

// CatalogStats 获取目录统计信息
func (s *FAQService) CatalogStats() models.CatalogStats {
	return s.catalog.Stats()
}

func unscore(scored []models.ScoredFAQ) []models.FAQEntry {
	entries := make([]models.FAQEntry, len(scored))
	for i, sf := range scored {
		entries[i] = sf.FAQEntry
	}
	return entries
}

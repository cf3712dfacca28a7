package models

import (
	"slices"
	"time"
)

// APIResponse 通用API响应
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// RankRequest 对任意内容排序FAQ的请求体
type RankRequest struct {
	CategoryID     string   `json:"category_id" example:"retirement"`
	Tags           []string `json:"tags" example:"pension transfer"`
	Title          string   `json:"title,omitempty" example:"How pensions and ISAs work"`
	Summary        string   `json:"summary,omitempty"`
	Body           string   `json:"body,omitempty"`
	SearchableText string   `json:"searchable_text,omitempty"` // 直接提供时忽略 title/summary/body
	Limit          *int     `json:"limit,omitempty" example:"5"`
}

// ContentItem 将请求转换为匹配用的内容
func (r RankRequest) ContentItem() ContentItem {
	text := r.SearchableText
	if text == "" {
		text = JoinSearchableText(r.Title, r.Summary, r.Body)
	}
	return ContentItem{
		CategoryID:     r.CategoryID,
		Tags:           r.Tags,
		SearchableText: text,
	}
}

// RelatedFAQsResponse 文章相关FAQ
type RelatedFAQsResponse struct {
	Slug  string      `json:"slug,omitempty" example:"new-tax-year-checklist"`
	Limit int         `json:"limit" example:"5"`
	FAQs  interface{} `json:"faqs"` // []FAQEntry，debug时为 []ScoredFAQ
}

// PostSummary 文章列表项，不含正文
type PostSummary struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"published_at"`
}

// Summary 返回文章的列表项
func (p Post) Summary() PostSummary {
	return PostSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Category:    p.Category,
		Tags:        slices.Clone(p.Tags),
		PublishedAt: p.PublishedAt,
	}
}

// CatalogStats 目录统计
type CatalogStats struct {
	FAQCount   int       `json:"faq_count" example:"42"`
	PostCount  int       `json:"post_count" example:"18"`
	Categories []string  `json:"categories"`
	Version    string    `json:"version" example:"9e107d9d372bb6826bd81d3542a419d6"`
	LoadedAt   time.Time `json:"loaded_at"`
}

package models

import (
	"slices"
	"strings"
	"time"
)

// FAQEntry 静态FAQ条目，进程启动时加载，之后不再修改
type FAQEntry struct {
	Question   string   `json:"question" yaml:"question" example:"How much can I put into an ISA?"`
	Answer     string   `json:"answer" yaml:"answer"`
	Categories []string `json:"categories" yaml:"categories"`
	Keywords   []string `json:"keywords" yaml:"keywords"` // 顺序不影响评分，保留用于展示
}

// HasCategory 判断条目是否属于指定分类
func (e FAQEntry) HasCategory(category string) bool {
	for _, c := range e.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Clone 返回深拷贝，分类和关键词不与原条目共享底层数组
func (e FAQEntry) Clone() FAQEntry {
	e.Categories = slices.Clone(e.Categories)
	e.Keywords = slices.Clone(e.Keywords)
	return e
}

// ContentItem 参与FAQ匹配的内容（文章）
type ContentItem struct {
	CategoryID     string   `json:"category_id"`
	Tags           []string `json:"tags"`
	SearchableText string   `json:"searchable_text"` // title + summary + body
}

// Post 博客/洞察文章
type Post struct {
	Slug        string    `json:"slug" yaml:"slug"`
	Title       string    `json:"title" yaml:"title"`
	Excerpt     string    `json:"excerpt" yaml:"excerpt"`
	Body        string    `json:"body,omitempty" yaml:"body"`
	Category    string    `json:"category" yaml:"category"`
	Tags        []string  `json:"tags" yaml:"tags"`
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
}

// Clone 返回深拷贝，标签不与原文章共享底层数组
func (p Post) Clone() Post {
	p.Tags = slices.Clone(p.Tags)
	return p
}

// ContentItem 将文章展开为匹配用的内容
func (p Post) ContentItem() ContentItem {
	return ContentItem{
		CategoryID:     p.Category,
		Tags:           p.Tags,
		SearchableText: JoinSearchableText(p.Title, p.Excerpt, p.Body),
	}
}

// JoinSearchableText 拼接标题、摘要、正文
func JoinSearchableText(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// ScoredFAQ 带分数的FAQ，调试用
type ScoredFAQ struct {
	FAQEntry
	Score int `json:"score"`
}

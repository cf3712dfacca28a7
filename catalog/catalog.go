// Package catalog 保存FAQ和文章的静态目录
//
// 目录在启动时加载一次，之后不再修改。访问方法返回深拷贝，调用方的修改不会影响共享快照
package catalog

import (
	"sort"
	"strings"
	"time"

	"advisory_faq/logger"
	"advisory_faq/models"
	"advisory_faq/utils"
)

// Catalog FAQ条目和文章的只读快照
type Catalog struct {
	faqs     []models.FAQEntry
	posts    []models.Post
	bySlug   map[string]int
	version  string
	loadedAt time.Time
}

// New 由原始数据构建目录：规范化条目，丢弃缺少问题或答案的FAQ以及没有slug或slug重复的文章
// version 标识数据源版本
func New(faqs []models.FAQEntry, posts []models.Post, version string) *Catalog {
	c := &Catalog{
		faqs:     make([]models.FAQEntry, 0, len(faqs)),
		posts:    make([]models.Post, 0, len(posts)),
		bySlug:   make(map[string]int, len(posts)),
		version:  version,
		loadedAt: time.Now().UTC(),
	}

	for _, f := range faqs {
		entry, ok := normaliseFAQ(f)
		if !ok {
			logger.Warn("Skipping incomplete FAQ entry", "question", f.Question)
			continue
		}
		c.faqs = append(c.faqs, entry)
	}

	for _, p := range posts {
		p.Slug = strings.TrimSpace(p.Slug)
		if p.Slug == "" {
			logger.Warn("Skipping post without slug", "title", p.Title)
			continue
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			logger.Warn("Skipping duplicate post slug", "slug", p.Slug)
			continue
		}
		p.Category = strings.TrimSpace(p.Category)
		p.Tags = utils.DeduplicateSlice(p.Tags)
		c.bySlug[p.Slug] = len(c.posts)
		c.posts = append(c.posts, p)
	}

	return c
}

func normaliseFAQ(f models.FAQEntry) (models.FAQEntry, bool) {
	f.Question = strings.TrimSpace(f.Question)
	f.Answer = strings.TrimSpace(f.Answer)
	if f.Question == "" || f.Answer == "" {
		return f, false
	}
	f.Categories = utils.DeduplicateSlice(f.Categories)
	f.Keywords = utils.CompactSlice(f.Keywords)
	return f, true
}

// FAQs 按目录顺序返回FAQ条目
func (c *Catalog) FAQs() []models.FAQEntry {
	out := make([]models.FAQEntry, len(c.faqs))
	for i, f := range c.faqs {
		out[i] = f.Clone()
	}
	return out
}

// FAQsInCategory 按目录顺序返回属于指定分类的条目，分类为空时返回全部
func (c *Catalog) FAQsInCategory(category string) []models.FAQEntry {
	if category == "" {
		return c.FAQs()
	}
	out := make([]models.FAQEntry, 0)
	for _, f := range c.faqs {
		if f.HasCategory(category) {
			out = append(out, f.Clone())
		}
	}
	return out
}

// Posts 按目录顺序返回文章
func (c *Catalog) Posts() []models.Post {
	out := make([]models.Post, len(c.posts))
	for i, p := range c.posts {
		out[i] = p.Clone()
	}
	return out
}

// PostBySlug 按slug查找文章
func (c *Catalog) PostBySlug(slug string) (models.Post, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return models.Post{}, false
	}
	return c.posts[i].Clone(), true
}

// Categories 返回FAQ和文章分类的并集，已排序
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	for _, f := range c.faqs {
		for _, cat := range f.Categories {
			seen[cat] = true
		}
	}
	for _, p := range c.posts {
		if p.Category != "" {
			seen[p.Category] = true
		}
	}

	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Version 数据源版本
func (c *Catalog) Version() string { return c.version }

// LoadedAt 快照构建时间
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// Stats 目录统计
func (c *Catalog) Stats() models.CatalogStats {
	return models.CatalogStats{
		FAQCount:   len(c.faqs),
		PostCount:  len(c.posts),
		Categories: c.Categories(),
		Version:    c.version,
		LoadedAt:   c.loadedAt,
	}
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"advisory_faq/db"
	"advisory_faq/logger"
	"advisory_faq/models"
)

// ListPublishedPosts 读取所有已发布的文章，最新的在前
func ListPublishedPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT slug, title, excerpt, body, category, tags, published_at
		FROM posts
		WHERE published = 1
		ORDER BY published_at DESC, slug ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var (
			p             models.Post
			excerpt, body sql.NullString
			tags          sql.NullString
			publishedAt   sql.NullTime
		)
		if err := rows.Scan(&p.Slug, &p.Title, &excerpt, &body, &p.Category, &tags, &publishedAt); err != nil {
			return nil, fmt.Errorf("scan posts: %w", err)
		}

		p.Excerpt = excerpt.String
		p.Body = body.String
		if publishedAt.Valid {
			p.PublishedAt = publishedAt.Time
		}
		if p.Tags, err = decodeStringList(tags); err != nil {
			logger.Warn("Ignoring malformed post tags", "slug", p.Slug, "error", err)
			p.Tags = []string{}
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

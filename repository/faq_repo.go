package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"advisory_faq/db"
	"advisory_faq/logger"
	"advisory_faq/models"
)

// =====================
// 通用工具函数
// =====================

// decodeStringList 解析JSON数组列，NULL或空字符串视为空列表
func decodeStringList(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw.String), &values); err != nil {
		return nil, err
	}
	return values, nil
}

// =====================
// FAQ目录
// =====================

// ListFAQEntries 按展示顺序读取所有启用的FAQ条目
func ListFAQEntries(ctx context.Context) ([]models.FAQEntry, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, question, answer, categories, keywords
		FROM faq_entries
		WHERE enabled = 1
		ORDER BY sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query faq_entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.FAQEntry, 0)
	for rows.Next() {
		var (
			id                   int64
			entry                models.FAQEntry
			categories, keywords sql.NullString
		)
		if err := rows.Scan(&id, &entry.Question, &entry.Answer, &categories, &keywords); err != nil {
			return nil, fmt.Errorf("scan faq_entries: %w", err)
		}

		if entry.Categories, err = decodeStringList(categories); err != nil {
			logger.Warn("Skipping FAQ entry with malformed categories", "id", id, "error", err)
			continue
		}
		if entry.Keywords, err = decodeStringList(keywords); err != nil {
			logger.Warn("Skipping FAQ entry with malformed keywords", "id", id, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faq_entries: %w", err)
	}

	return entries, nil
}

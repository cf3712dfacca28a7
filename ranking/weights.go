package ranking

import (
	"encoding/json"
	"fmt"
	"os"

	"advisory_faq/logger"
)

// Weights 各匹配信号的加分
type Weights struct {
	Category int `json:"category"` // 分类命中（默认10）
	Tag      int `json:"tag"`      // 每个与标签重叠的关键词（默认5）
	Text     int `json:"text"`     // 每个出现在正文中的关键词（默认2）
}

// CalibrationConfig 权重校准文件的JSON结构
type CalibrationConfig struct {
	Version string  `json:"version"`
	Weights Weights `json:"weights"`
}

// DefaultWeights 返回默认权重
// 分类命中单独就高于两次正文命中
func DefaultWeights() Weights {
	return Weights{
		Category: 10,
		Tag:      5,
		Text:     2,
	}
}

// LoadWeights 读取JSON校准文件并合并到默认权重上，路径为空时返回默认权重
// 读取或解析失败时同时返回默认权重和错误，由调用方记录日志后继续
func LoadWeights(filePath string) (Weights, error) {
	defaults := DefaultWeights()
	if filePath == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return defaults, fmt.Errorf("read weights file: %w", err)
	}

	var cfg CalibrationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaults, fmt.Errorf("parse weights file: %w", err)
	}
	if err := cfg.Weights.validate(); err != nil {
		return defaults, err
	}

	merged := MergeWeights(defaults, cfg.Weights)
	if merged != defaults {
		logger.Info("loaded ranking weights with overrides",
			"path", filePath,
			"version", cfg.Version,
			"category", merged.Category,
			"tag", merged.Tag,
			"text", merged.Text)
	}
	return merged, nil
}

// MergeWeights 用 override 中的非零字段覆盖 base
func MergeWeights(base, override Weights) Weights {
	result := base
	if override.Category != 0 {
		result.Category = override.Category
	}
	if override.Tag != 0 {
		result.Tag = override.Tag
	}
	if override.Text != 0 {
		result.Text = override.Text
	}
	return result
}

func (w Weights) validate() error {
	if w.Category < 0 || w.Tag < 0 || w.Text < 0 {
		return fmt.Errorf("%w: weights must be non-negative, got %+v", ErrInvalidArgument, w)
	}
	return nil
}

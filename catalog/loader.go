package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"advisory_faq/config"
	"advisory_faq/logger"
	"advisory_faq/models"
	"advisory_faq/repository"
	"advisory_faq/utils"
)

// ErrUnknownSource 不支持的 catalog.source 配置
var ErrUnknownSource = errors.New("unknown catalog source")

const (
	SourceFile  = "file"
	SourceMySQL = "mysql"
)

// fileDocument YAML目录文件结构
type fileDocument struct {
	FAQs  []models.FAQEntry `yaml:"faqs"`
	Posts []models.Post     `yaml:"posts"`
}

// Load 按 cfg.Catalog.Source 指定的来源加载目录
func Load(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	switch cfg.Catalog.Source {
	case SourceFile, "":
		return LoadFile(cfg.Catalog.Path)
	case SourceMySQL:
		return LoadMySQL(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Catalog.Source)
	}
}

// LoadFile 读取YAML目录文件，版本为文件内容的MD5
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse 解析YAML目录文档
func Parse(data []byte) (*Catalog, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	c := New(doc.FAQs, doc.Posts, utils.CalculateMD5(string(data)))
	logger.Info("Catalog loaded from file", "faqs", len(c.faqs), "posts", len(c.posts), "version", c.version)
	return c, nil
}

// LoadMySQL 并发读取数据库中的FAQ和文章，调用前需初始化 db.DB
// 版本为读取结果的MD5
func LoadMySQL(ctx context.Context) (*Catalog, error) {
	var (
		faqs  []models.FAQEntry
		posts []models.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		faqs, err = repository.ListFAQEntries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = repository.ListPublishedPosts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalog from mysql: %w", err)
	}

	snapshot, err := json.Marshal(fileDocument{FAQs: faqs, Posts: posts})
	if err != nil {
		return nil, fmt.Errorf("hash catalog: %w", err)
	}

	c := New(faqs, posts, utils.CalculateMD5(string(snapshot)))
	logger.Info("Catalog loaded from mysql", "faqs", len(c.faqs), "posts", len(c.posts), "version", c.version)
	return c, nil
}

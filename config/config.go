package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "config.yaml"

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		DSN             string `yaml:"-"`                 // 不从配置文件读取，而是在加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`
	Catalog struct {
		Source         string `yaml:"source"`           // file / mysql
		Path           string `yaml:"path"`             // source=file 时的YAML目录文件
		LoadTimeoutSec int    `yaml:"load_timeout_sec"` // 启动加载超时，单位：秒
	} `yaml:"catalog"`
	Ranking struct {
		WeightsFile       string `yaml:"weights_file"`        // 权重校准文件（JSON），为空则使用默认权重
		DefaultMaxResults int    `yaml:"default_max_results"` // 未指定limit时返回的FAQ数量
		MaxResultsLimit   int    `yaml:"max_results_limit"`   // limit上限
	} `yaml:"ranking"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Timeouts struct {
		RequestSec  int `yaml:"request_sec"`  // 请求超时，单位：秒
		ResponseSec int `yaml:"response_sec"` // 响应超时，单位：秒
		IdleSec     int `yaml:"idle_sec"`     // 空闲超时，单位：秒
	} `yaml:"timeouts"`
}

func Load() *Config {
	return LoadFile(defaultConfigFile)
}

// LoadFile 从指定YAML文件加载配置，文件不存在或解析失败时退回环境变量
func LoadFile(path string) *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		// 如果config.yaml不存在，则完全从环境变量加载配置
		return loadFromEnv()
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Error loading %s: %v, falling back to environment variables", path, err)
		return loadFromEnv()
	}
	log.Printf("Loading configuration from %s", path)

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	buildDSN(&cfg)

	return &cfg
}

func loadFromEnv() *Config {
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	cfg.Catalog.Source = os.Getenv("CATALOG_SOURCE")

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	buildDSN(&cfg)

	log.Println("配置从环境变量加载，部分配置可能缺失")
	return &cfg
}

// applyEnvOverrides 从环境变量中加载敏感信息和部署相关配置
func applyEnvOverrides(cfg *Config) {
	if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
		cfg.DB.Username = envUsername
	}
	if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
		cfg.DB.Password = envPassword
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cfg.Catalog.Path = path
	}
	if weights := os.Getenv("RANKING_WEIGHTS_FILE"); weights != "" {
		cfg.Ranking.WeightsFile = weights
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "file"
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "catalog.yaml"
	}
	if cfg.Catalog.LoadTimeoutSec <= 0 {
		cfg.Catalog.LoadTimeoutSec = 30
	}

	if cfg.Ranking.DefaultMaxResults <= 0 {
		cfg.Ranking.DefaultMaxResults = 5
	}
	if cfg.Ranking.MaxResultsLimit <= 0 {
		cfg.Ranking.MaxResultsLimit = 50
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.DB.Charset == "" {
		cfg.DB.Charset = "utf8mb4"
	}
}

// buildDSN 计算 DB.DSN 字段，已通过环境变量提供时保持不变
// posts.published_at 需要扫描为 time.Time，所以总是带 parseTime=true
func buildDSN(cfg *Config) {
	if cfg.DB.DSN != "" || cfg.DB.Host == "" {
		return
	}

	cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=true",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Database,
		cfg.DB.Charset)
}

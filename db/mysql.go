package db

import (
	"context"
	"database/sql"
	"time"

	"advisory_faq/config"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB *sql.DB // 数据库连接，仅在 catalog.source=mysql 时初始化
)

// InitMySQLWithConfig 使用配置初始化数据库连接池
func InitMySQLWithConfig(ctx context.Context, cfg *config.Config) error {
	conn, err := sql.Open("mysql", cfg.DB.DSN)
	if err != nil {
		return err
	}

	// 从配置读取连接池参数，提供默认值保护
	maxOpenConns := cfg.DB.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 10 // 目录只在启动时读取，连接数不需要太多
	}

	maxIdleConns := cfg.DB.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}

	connMaxLifetime := cfg.DB.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 60 // 默认连接最大生命周期（分钟）
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return err
	}

	DB = conn
	return nil
}

// Close 关闭数据库连接
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}

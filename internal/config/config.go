package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// Valkey接続設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS" required:"true"`

	// HSS（クレデンシャルソース）設定
	HSSAPIURL string `envconfig:"HSS_API_URL" required:"true"`

	// HTTPサーバー設定
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`

	// 認証設定
	// Realmが空の場合はLoad時に自ホスト名へフォールバックする
	Realm string `envconfig:"AUTH_REALM"`

	// 検証失敗時に保存済みベクターを削除するか。
	// falseの場合、同一nonceへの再送応答をexpiryまで許容する（既存挙動）。
	DeleteAVOnFailure bool `envconfig:"DELETE_AV_ON_FAILURE" default:"false"`

	// ログ設定
	LogMaskIdentity bool `envconfig:"LOG_MASK_IDENTITY" default:"true"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Realm == "" {
		host, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("failed to default realm from hostname: %w", err)
		}
		cfg.Realm = host
	}
	return &cfg, nil
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	if !strings.HasPrefix(c.HSSAPIURL, "http://") && !strings.HasPrefix(c.HSSAPIURL, "https://") {
		return fmt.Errorf("HSS_API_URL must start with http:// or https://")
	}
	return nil
}

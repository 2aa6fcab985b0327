package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
)

// HSS接続設定
const (
	HSSRequestTimeout = 5 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "hss"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// 認証ベクターキャッシュ（クライアントの応答往復＋クロックスキューを上限とする）
const (
	AVStoreTTL = 40 * time.Second
)

// nonce/opaqueの乱数長（バイト）
const (
	NonceLength  = 16
	OpaqueLength = 16
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 5 * time.Second
)

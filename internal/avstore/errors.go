package avstore

import "errors"

// ストア関連エラー
var (
	// ErrNotFound は指定キーのベクターが存在しない場合のエラー（期限切れ・消費済み含む）
	ErrNotFound = errors.New("authentication vector not found")

	// ErrValkeyUnavailable はValkeyへのアクセスに失敗した場合のエラー
	ErrValkeyUnavailable = errors.New("valkey unavailable")

	// ErrInvalidVector は保存データのデシリアライズに失敗した場合のエラー
	ErrInvalidVector = errors.New("stored vector invalid")
)

package auth

import "errors"

// 検証失敗エラー。いずれも非致命であり、SIPレベルの応答コードへ変換される。
var (
	// ErrNoSuchChallenge は対応する保存済みベクターが無い場合のエラー
	//（期限切れ・消費済み・偽造のいずれかで、区別しない）
	ErrNoSuchChallenge = errors.New("no such challenge")

	// ErrBadCredentials は応答値が期待値と一致しない場合のエラー
	ErrBadCredentials = errors.New("bad credentials")

	// ErrMalformedRequest は必須ヘッダサブフィールドが欠落している場合のエラー
	ErrMalformedRequest = errors.New("malformed request")
)

package avstore

import "net/url"

// Valkeyキープレフィックス
const (
	// KeyPrefixAV は認証ベクターのキープレフィックス（av:<impi>:<nonce>）
	KeyPrefixAV = "av:"
)

// avKey は(impi, nonce)からValkeyキーを組み立てる。
// impiはクライアント供給の不透明なトークンであり":"を含みうるため、
// エスケープして異なる(impi, nonce)の組がキー衝突しないようにする。
func avKey(impi, nonce string) string {
	return KeyPrefixAV + url.QueryEscape(impi) + ":" + nonce
}

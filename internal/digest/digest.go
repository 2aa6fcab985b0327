// Package digest はRFC 2617 Digest認証のレスポンス計算を提供する。
package digest

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// md5Hex はMD5ハッシュのhex文字列を返す
func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HA1 はusername/realm/passwordからHA1を計算する。
// 通常、パスワード材料はHSSからハッシュ済みで供給されるため、
// 本関数はテストおよびプロビジョニング用途に限られる。
func HA1(username, realm, password string) string {
	return md5Hex(username + ":" + realm + ":" + password)
}

// Response はDigest応答値を計算する。
// qopが空の場合はRFC 2069互換の形式（ha1:nonce:ha2）、
// qop指定時はnc/cnonceを含む完全形式で計算する。
func Response(ha1, method, uri, nonce, nc, cnonce, qop string) string {
	ha2 := md5Hex(method + ":" + uri)
	if qop == "" {
		return md5Hex(ha1 + ":" + nonce + ":" + ha2)
	}
	return md5Hex(ha1 + ":" + nonce + ":" + nc + ":" + cnonce + ":" + qop + ":" + ha2)
}

// Equal はhex表現のレスポンス値を定数時間で比較する。
// hexの大文字小文字差は一致とみなす。
func Equal(a, b string) bool {
	return EqualExact(strings.ToLower(a), strings.ToLower(b))
}

// EqualExact はレスポンス値をケース折り畳みなしで定数時間比較する。
// hex表現とは限らない値（AKA期待応答など）に用いる。
func EqualExact(a, b string) bool {
	x := []byte(a)
	y := []byte(b)
	if len(x) != len(y) {
		return false
	}
	return subtle.ConstantTimeCompare(x, y) == 1
}

// Package logging はログ出力向けの補助機能を提供する。
package logging

import "strings"

// MaskIdentity は加入者識別子（IMPI/IMPU）をマスキングする。
// 先頭6文字 + マスク文字('*') + 末尾1文字の形式で出力する。
// enabled=falseまたは文字列長が7以下の場合はそのまま返す。
func MaskIdentity(id string, enabled bool) string {
	if !enabled || len(id) <= 7 {
		return id
	}
	return id[:6] + strings.Repeat("*", len(id)-7) + id[len(id)-1:]
}

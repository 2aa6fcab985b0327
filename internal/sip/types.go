// Package sip は認証コアが扱うSIPメッセージの構造化表現を定義する。
// パース/トランスポートは外部コンポーネントの責務であり、本パッケージは
// 認証判定に必要なフィールドのみを保持する。
package sip

import "strings"

// Method はSIPリクエストメソッドを表す
type Method string

const (
	MethodRegister Method = "REGISTER"
	MethodInvite   Method = "INVITE"
	MethodAck      Method = "ACK"
	MethodCancel   Method = "CANCEL"
	MethodBye      Method = "BYE"
)

// SIPレスポンスステータスコード
const (
	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusForbidden    = 403
)

// Param はヘッダ拡張パラメータ（name=value）を表す
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CredentialHeader はAuthorizationヘッダのDigestクレデンシャル部を表す。
// リクエストにAuthorizationヘッダが無い場合、Request.Credentialsはnilとなる。
type CredentialHeader struct {
	Username string  `json:"username"` // 秘匿識別子（IMPI）
	Realm    string  `json:"realm"`
	Nonce    string  `json:"nonce"`
	URI      string  `json:"uri"`
	Response string  `json:"response"` // hex文字列。空ならチャレンジ応答なし
	QoP      string  `json:"qop"`
	NC       string  `json:"nc"`
	CNonce   string  `json:"cnonce"`
	Opaque   string  `json:"opaque"`
	Params   []Param `json:"params"` // integrity-protected / auts 等の拡張パラメータ
}

// Param は指定された名前の拡張パラメータ値を返す（名前は大文字小文字を区別しない）。
// 最初に一致したものを採用する。見つからない場合はokがfalse。
func (h *CredentialHeader) Param(name string) (value string, ok bool) {
	if h == nil {
		return "", false
	}
	for _, p := range h.Params {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// Request はパース済みの受信SIPリクエストを表す。
// To/From/CallIDは可観測性のためのフィールドであり、認証判定には使わない。
type Request struct {
	Method      Method            `json:"method"`
	RequestURI  string            `json:"request_uri"`
	To          string            `json:"to"`   // 公開識別子（IMPU、SIP AoR）
	From        string            `json:"from"` // 発側URI
	CallID      string            `json:"call_id"`
	Credentials *CredentialHeader `json:"credentials,omitempty"`
}

// HasResponse はクレデンシャルヘッダが非空のチャレンジ応答を持つかを返す
func (r *Request) HasResponse() bool {
	return r.Credentials != nil && r.Credentials.Response != ""
}

// ChallengeHeader は送信するWWW-Authenticateヘッダを表す
type ChallengeHeader struct {
	Scheme    string  `json:"scheme"` // 常に "Digest"
	Realm     string  `json:"realm"`
	Algorithm string  `json:"algorithm"` // "MD5" または "AKAv1-MD5"
	Nonce     string  `json:"nonce"`
	Opaque    string  `json:"opaque"`
	QoP       string  `json:"qop"`
	Stale     bool    `json:"stale"` // 本設計では常にfalse
	Params    []Param `json:"params,omitempty"` // AKA時のck/ik
}

// Package av は認証ベクター（Authentication Vector）の型定義とJSONコーデックを提供する。
package av

import "encoding/json"

// DigestVector はDigest認証用のベクターを表す。
// HA1はハッシュ済みパスワードであり、平文パスワードは保持しない。
type DigestVector struct {
	Realm string `json:"realm"`
	QoP   string `json:"qop"`
	HA1   string `json:"ha1"`
}

// AKAVector はAKA認証用のベクターを表す。
// Responseは第一世代AKAのプロトコル制約により平文のまま比較される。
type AKAVector struct {
	Challenge    string `json:"challenge"` // チャレンジnonce（この値自体がnonceとして使われる）
	CryptKey     string `json:"cryptkey"`
	IntegrityKey string `json:"integritykey"`
	Response     string `json:"response"` // 期待応答（XRES相当）
}

// Vector は認証ベクターを表す。DigestまたはAKAの排他的なタグ付きユニオン。
// NewDigest / NewAKA 以外で構築してはならない。
type Vector struct {
	Digest *DigestVector `json:"digest,omitempty"`
	AKA    *AKAVector    `json:"aka,omitempty"`
}

// NewDigest はDigestベクターを生成する
func NewDigest(realm, qop, ha1 string) *Vector {
	return &Vector{Digest: &DigestVector{Realm: realm, QoP: qop, HA1: ha1}}
}

// NewAKA はAKAベクターを生成する
func NewAKA(challenge, cryptKey, integrityKey, response string) *Vector {
	return &Vector{AKA: &AKAVector{
		Challenge:    challenge,
		CryptKey:     cryptKey,
		IntegrityKey: integrityKey,
		Response:     response,
	}}
}

// IsAKA はAKAベクターかどうかを返す
func (v *Vector) IsAKA() bool {
	return v.AKA != nil
}

// Validate はバリアントが排他的にひとつだけ設定されていることを確認する
func (v *Vector) Validate() error {
	if v.Digest != nil && v.AKA != nil {
		return ErrBothVariants
	}
	if v.Digest == nil && v.AKA == nil {
		return ErrNoVariant
	}
	return nil
}

// Marshal はベクターをJSONバイト列に変換する。
// 不正なバリアント構成の場合はエラーを返す。
func (v *Vector) Marshal() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// Unmarshal はJSONバイト列からベクターを復元する
func Unmarshal(data []byte) (*Vector, error) {
	var v Vector
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

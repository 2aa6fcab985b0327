package hss

import (
	"context"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/av"
)

// CredentialSource はHSSとの通信インターフェースを定義する
type CredentialSource interface {
	// Fetch は認証ベクターを取得する。
	// 加入者未登録の場合はErrNoVectorを返す。
	// HSS到達不能と未登録は呼び出し側からは区別されず、いずれも
	// チャレンジ不可（forbidden応答）に帰着する。
	Fetch(ctx context.Context, req *FetchRequest) (*av.Vector, error)
}

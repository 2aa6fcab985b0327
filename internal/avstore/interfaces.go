package avstore

import (
	"context"
	"time"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/av"
)

// Store は(秘匿識別子, nonce)をキーとする認証ベクターキャッシュを定義する。
// 各操作はキー単位でアトミックであり、ブロッキングI/O以外で停止しない。
type Store interface {
	// Put はベクターをTTL付きで保存する
	Put(ctx context.Context, impi, nonce string, v *av.Vector, ttl time.Duration) error

	// Get はベクターを取得する（消費しない読み取り）。
	// 存在しない場合はErrNotFoundを返す。
	Get(ctx context.Context, impi, nonce string) (*av.Vector, error)

	// Delete はベクターを削除する。
	// このコールが実際にエントリを削除した場合にtrueを返す。
	// 同一キーへ並行するDeleteのうちtrueを観測するのは高々1つである。
	Delete(ctx context.Context, impi, nonce string) (bool, error)
}

package avstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/av"
)

// valkeyStore はStoreインターフェースのValkey実装。
// エントリの期限切れはValkey側のTTL回収に委ねる。期限切れと消費済みは
// 呼び出し側からは区別できず、いずれもErrNotFoundとして観測される。
type valkeyStore struct {
	vc *ValkeyClient
}

// NewStore は新しいStoreを生成する。
func NewStore(vc *ValkeyClient) Store {
	return &valkeyStore{vc: vc}
}

// Put はベクターをTTL付きで保存する。
func (s *valkeyStore) Put(ctx context.Context, impi, nonce string, v *av.Vector, ttl time.Duration) error {
	data, err := v.Marshal()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidVector, err)
	}
	if err := s.vc.Client().Set(ctx, avKey(impi, nonce), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}

// Get はベクターを取得する。消費はしない。
func (s *valkeyStore) Get(ctx context.Context, impi, nonce string) (*av.Vector, error) {
	data, err := s.vc.Client().Get(ctx, avKey(impi, nonce)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}

	v, err := av.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVector, err)
	}
	return v, nil
}

// Delete はベクターを削除する。DELの応答件数で消費の成否を判定するため、
// 並行する検証のうちエントリを消費できるのは高々1つとなる。
func (s *valkeyStore) Delete(ctx context.Context, impi, nonce string) (bool, error) {
	n, err := s.vc.Client().Del(ctx, avKey(impi, nonce)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return n > 0, nil
}

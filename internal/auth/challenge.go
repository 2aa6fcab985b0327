package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/avstore"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/config"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/hss"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/logging"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/sip"
)

// Builder は新規チャレンジを構築する。
// HSSから取得したベクターをチャレンジヘッダに展開し、
// 実際にヘッダへ載せたnonceをキーとしてストアへ保存する。
type Builder struct {
	source hss.CredentialSource
	store  avstore.Store
	cfg    *config.Config
}

// NewBuilder は新しいBuilderを生成する
func NewBuilder(source hss.CredentialSource, store avstore.Store, cfg *config.Config) *Builder {
	return &Builder{source: source, store: store, cfg: cfg}
}

// Challenge はチャレンジヘッダを構築する。
// ベクターが得られない場合はhss.ErrNoVectorを返し、ストアへの書き込みは行わない。
// リトライ/バックオフはHSSクライアント側のポリシーであり、本コンポーネントは再試行しない。
func (b *Builder) Challenge(ctx context.Context, req *sip.Request) (*sip.ChallengeHeader, error) {
	impi := privateID(req)
	impu := req.To
	maskedIMPI := logging.MaskIdentity(impi, b.cfg.LogMaskIdentity)

	// 再同期トークンの抽出（解釈せずそのまま転送）
	resync, _ := req.Credentials.Param(ParamResync)
	if resync != "" {
		slog.Info("再同期トークン付きチャレンジ要求",
			"event_id", "AUTH_RESYNC",
			"impi", maskedIMPI,
		)
	}

	vec, err := b.source.Fetch(ctx, &hss.FetchRequest{
		IMPI:   impi,
		IMPU:   impu,
		Resync: resync,
	})
	if err != nil {
		return nil, err
	}

	opaque, err := randomToken(config.OpaqueLength)
	if err != nil {
		return nil, err
	}

	hdr := &sip.ChallengeHeader{
		Scheme: SchemeDigest,
		Realm:  b.cfg.Realm,
		Opaque: opaque,
		Stale:  false,
	}

	if vec.IsAKA() {
		// AKAではベクターに埋め込まれたチャレンジ値そのものがnonceとなる
		hdr.Algorithm = AlgorithmAKAv1MD5
		hdr.Nonce = vec.AKA.Challenge
		hdr.QoP = QoPAuth
		hdr.Params = []sip.Param{
			{Name: ParamCryptKey, Value: vec.AKA.CryptKey},
			{Name: ParamIntegrityKey, Value: vec.AKA.IntegrityKey},
		}
	} else {
		nonce, err := randomToken(config.NonceLength)
		if err != nil {
			return nil, err
		}
		hdr.Algorithm = AlgorithmMD5
		hdr.Nonce = nonce
		hdr.QoP = vec.Digest.QoP
	}

	// ヘッダに載せたnonceをキーに保存する
	if err := b.store.Put(ctx, impi, hdr.Nonce, vec, config.AVStoreTTL); err != nil {
		return nil, err
	}

	slog.Info("チャレンジ発行",
		"event_id", "AUTH_CHALLENGE",
		"impi", maskedIMPI,
		"algorithm", hdr.Algorithm,
	)

	return hdr, nil
}

// privateID はリクエストから秘匿識別子を決定する。
// クレデンシャルヘッダにusernameがあればそれを使い、無ければ
// 公開識別子からスキームプレフィックスを除去して導出する。
func privateID(req *sip.Request) string {
	if req.Credentials != nil && req.Credentials.Username != "" {
		return req.Credentials.Username
	}
	return defaultPrivateID(req.To)
}

// defaultPrivateID は公開識別子からデフォルトの秘匿識別子を導出する
func defaultPrivateID(impu string) string {
	lower := strings.ToLower(impu)
	switch {
	case strings.HasPrefix(lower, "sips:"):
		return impu[len("sips:"):]
	case strings.HasPrefix(lower, "sip:"):
		return impu[len("sip:"):]
	}
	return impu
}

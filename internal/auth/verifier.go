package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/avstore"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/config"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/digest"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/logging"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/sip"
)

// Verifier はチャレンジ応答を検証する。
// 検証に成功した場合のみ保存済みベクターを消費（削除）する。
type Verifier struct {
	store avstore.Store
	cfg   *config.Config
}

// NewVerifier は新しいVerifierを生成する
func NewVerifier(store avstore.Store, cfg *config.Config) *Verifier {
	return &Verifier{store: store, cfg: cfg}
}

// Verify はリクエスト中のチャレンジ応答を検証する。nil返却が成功を意味する。
// 失敗はErrMalformedRequest / ErrNoSuchChallenge / ErrBadCredentialsのいずれか
// （ストア障害時はそのエラー）を返す。
func (v *Verifier) Verify(ctx context.Context, req *sip.Request) error {
	cred := req.Credentials
	if cred == nil || cred.Username == "" || cred.Nonce == "" {
		return ErrMalformedRequest
	}

	impi := cred.Username
	maskedIMPI := logging.MaskIdentity(impi, v.cfg.LogMaskIdentity)

	vec, err := v.store.Get(ctx, impi, cred.Nonce)
	if err != nil {
		if errors.Is(err, avstore.ErrNotFound) {
			slog.Warn("対応するチャレンジなし",
				"event_id", "AUTH_NO_CHALLENGE",
				"impi", maskedIMPI,
			)
			return ErrNoSuchChallenge
		}
		return err
	}

	var match bool
	if vec.IsAKA() {
		// 第一世代AKAの期待応答は平文の直接比較（プロトコル制約）
		match = digest.EqualExact(cred.Response, vec.AKA.Response)
	} else {
		expected := digest.Response(
			vec.Digest.HA1,
			string(req.Method),
			cred.URI,
			cred.Nonce,
			cred.NC,
			cred.CNonce,
			cred.QoP,
		)
		match = digest.Equal(cred.Response, expected)
	}

	if !match {
		slog.Warn("チャレンジ応答不一致",
			"event_id", "AUTH_BAD_RESPONSE",
			"impi", maskedIMPI,
		)
		if v.cfg.DeleteAVOnFailure {
			if _, err := v.store.Delete(ctx, impi, cred.Nonce); err != nil {
				slog.Warn("失敗時ベクター削除エラー",
					"event_id", "AUTH_AV_DELETE_ERR",
					"impi", maskedIMPI,
					"error", err,
				)
			}
		}
		return ErrBadCredentials
	}

	// 消費の成否で応答のリプレイを防ぐ。並行する検証が先に消費していた場合、
	// この応答は期限切れと同じ扱いになる。
	deleted, err := v.store.Delete(ctx, impi, cred.Nonce)
	if err != nil {
		return err
	}
	if !deleted {
		slog.Warn("ベクター消費競合",
			"event_id", "AUTH_AV_RACE",
			"impi", maskedIMPI,
		)
		return ErrNoSuchChallenge
	}

	slog.Info("認証成功",
		"event_id", "AUTH_OK",
		"impi", maskedIMPI,
	)
	return nil
}

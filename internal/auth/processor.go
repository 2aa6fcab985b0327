package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/config"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/logging"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/sip"
)

// Processor は1リクエスト分の認証判定を実行する。
// 分類 → 検証またはチャレンジ発行 → ディスポジション決定の流れを束ねる。
// 多数のリクエストを並行処理してよい。外部I/Oで停止するのはHSS呼び出しのみで、
// その間ロックは保持しない。
type Processor struct {
	verifier *Verifier
	builder  *Builder
	reporter FailureReporter
	cfg      *config.Config
}

// NewProcessor は新しいProcessorを生成する
func NewProcessor(verifier *Verifier, builder *Builder, reporter FailureReporter, cfg *config.Config) *Processor {
	return &Processor{
		verifier: verifier,
		builder:  builder,
		reporter: reporter,
		cfg:      cfg,
	}
}

// Process はリクエストを処理し、認証ディスポジションを返す。
// エラー分類はすべて内部でSIP応答コードへ変換され、呼び出し側へは
// 伝播しない。応答に内部状態の詳細は含めない。
func (p *Processor) Process(ctx context.Context, req *sip.Request) *Result {
	switch Classify(req) {
	case DecisionBypass:
		return &Result{Action: ActionPass}

	case DecisionDrop:
		// ACKは応答を返せないため黙って破棄する
		slog.Info("応答不能リクエスト破棄",
			"event_id", "AUTH_DROP",
			"method", req.Method,
			"call_id", req.CallID,
		)
		return &Result{Action: ActionDrop}

	case DecisionReject:
		// CANCELはチャレンジ応答を運べないため拒否する
		p.logAbsorbed(req)
		return &Result{Action: ActionReject, Status: sip.StatusForbidden}

	case DecisionVerify:
		if err := p.verifier.Verify(ctx, req); err != nil {
			return p.handleVerifyFailure(ctx, req, err)
		}
		return &Result{Action: ActionPass}

	case DecisionChallenge:
		return p.challenge(ctx, req)
	}

	// 分類は網羅的なためここには到達しない
	return &Result{Action: ActionReject, Status: sip.StatusForbidden}
}

// handleVerifyFailure は検証失敗をディスポジションへ変換する
func (p *Processor) handleVerifyFailure(ctx context.Context, req *sip.Request, err error) *Result {
	p.logAbsorbed(req)

	if errors.Is(err, ErrMalformedRequest) {
		return &Result{Action: ActionReject, Status: sip.StatusBadRequest}
	}

	if errors.Is(err, ErrBadCredentials) || errors.Is(err, ErrNoSuchChallenge) {
		if req.Credentials != nil {
			p.reporter.AuthFailure(ctx, req.Credentials.Username, req.To)
		}
	}
	return &Result{Action: ActionReject, Status: sip.StatusForbidden}
}

// challenge は新規チャレンジを発行する。ベクターが得られない場合は
// チャレンジを発行せずforbiddenで拒否する。
func (p *Processor) challenge(ctx context.Context, req *sip.Request) *Result {
	p.logAbsorbed(req)

	hdr, err := p.builder.Challenge(ctx, req)
	if err != nil {
		slog.Warn("ベクター取得不能により拒否",
			"event_id", "AUTH_NO_VECTOR",
			"method", req.Method,
			"error", err,
		)
		return &Result{Action: ActionReject, Status: sip.StatusForbidden}
	}

	return &Result{
		Action:    ActionChallenge,
		Status:    sip.StatusUnauthorized,
		Challenge: hdr,
	}
}

// logAbsorbed は本コアが吸収する（自ら応答する）リクエストの
// アドレッシング情報を記録する。認証判定には使用しない。
func (p *Processor) logAbsorbed(req *sip.Request) {
	slog.Info("リクエスト吸収",
		"event_id", "AUTH_ABSORBED",
		"method", req.Method,
		"from", logging.MaskIdentity(req.From, p.cfg.LogMaskIdentity),
		"to", logging.MaskIdentity(req.To, p.cfg.LogMaskIdentity),
		"call_id", req.CallID,
	)
}

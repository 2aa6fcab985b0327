// Package auth はSIPレジストラの認証フロントエンドを実装する。
// 受信リクエストの分類、チャレンジ生成、応答検証を行い、
// 認証ベクターの取得と一時保存を管理する。
package auth

import (
	"context"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/sip"
)

// Decision はリクエスト分類の結果を表す
type Decision string

const (
	// DecisionBypass は認証対象外（信頼済み経路からの到達）
	DecisionBypass Decision = "BYPASS"
	// DecisionVerify はチャレンジ応答の検証が必要
	DecisionVerify Decision = "VERIFY"
	// DecisionChallenge は新規チャレンジの発行が必要
	DecisionChallenge Decision = "CHALLENGE"
	// DecisionDrop は応答不能なリクエスト（破棄）
	DecisionDrop Decision = "DROP"
	// DecisionReject はチャレンジ不能なリクエスト（拒否）
	DecisionReject Decision = "REJECT"
)

// Action は認証処理の最終アクションを表す
type Action string

const (
	ActionPass      Action = "PASS"      // 素通し（応答は生成しない）
	ActionChallenge Action = "CHALLENGE" // 401 + WWW-Authenticate
	ActionReject    Action = "REJECT"    // 403/400
	ActionDrop      Action = "DROP"      // 応答なし
)

// Result は1リクエスト分の認証判定結果を表す
type Result struct {
	Action    Action
	Status    int                  // Challenge/Reject時のSIPステータスコード
	Challenge *sip.ChallengeHeader // Challenge時のみ設定
}

// FailureReporter は認証失敗の通知先インターフェース。
// 通知の整形・転送は外部コンポーネントの責務であり、本コアは
// (秘匿識別子, Address of Record)の組を生成するのみ。
type FailureReporter interface {
	AuthFailure(ctx context.Context, privateID, aor string)
}

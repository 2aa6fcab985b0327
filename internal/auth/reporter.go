package auth

import (
	"context"
	"log/slog"
)

// SlogReporter はFailureReporterのデフォルト実装。
// 失敗タプルを構造化ログとして出力する。アラーム/分析基盤への転送は
// 外部コンポーネントが本インターフェースを差し替えて行う。
type SlogReporter struct{}

// NewSlogReporter は新しいSlogReporterを生成する
func NewSlogReporter() *SlogReporter {
	return &SlogReporter{}
}

// AuthFailure は認証失敗を通知する
func (r *SlogReporter) AuthFailure(ctx context.Context, privateID, aor string) {
	slog.Warn("認証失敗通知",
		"event_id", "AUTH_FAILURE_REPORT",
		"impi", privateID,
		"aor", aor,
	)
}

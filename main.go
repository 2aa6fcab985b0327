// Package main はSIPレジストラ認証フロントエンドのエントリーポイント。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/auth"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/avstore"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/config"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/hss"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/server"
)

func main() {
	// 1. 環境変数読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定読み込み失敗", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化（JSON形式、INFO以上）
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("app", "sip-auth")
	slog.SetDefault(logger)

	slog.Info("sip-auth起動開始",
		"listen_addr", cfg.ListenAddr,
		"hss_api_url", cfg.HSSAPIURL,
		"realm", cfg.Realm,
	)

	// 3. Valkeyクライアント初期化
	valkeyClient, err := avstore.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("Valkey接続失敗",
			"event_id", "VALKEY_CONN_ERR",
			"error", err,
		)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("Valkey接続完了", "addr", cfg.ValkeyAddr())

	// 4. HSSクライアント初期化
	credSource := hss.NewClient(cfg)

	// 5. ベクターストア生成
	store := avstore.NewStore(valkeyClient)

	// 6. 認証コンポーネント組み立て
	verifier := auth.NewVerifier(store, cfg)
	builder := auth.NewBuilder(credSource, store, cfg)
	reporter := auth.NewSlogReporter()
	processor := auth.NewProcessor(verifier, builder, reporter, cfg)

	// 7. HTTPハンドラ/サーバー
	handler := server.NewAuthHandler(processor)
	srv := server.New(cfg, handler)

	// 8. サーバー起動（goroutine）
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("サーバーエラー", "error", err)
			os.Exit(1)
		}
	}()

	// 9. シグナル待機 → Graceful Shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	slog.Info("シグナル受信、シャットダウン開始", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("シャットダウンエラー", "error", err)
	}

	slog.Info("sip-auth停止完了")
}

package avstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/av"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/config"
)

// テスト用ValkeyClientを生成するヘルパー
func newTestValkeyClient(t *testing.T, mr *miniredis.Miniredis) *ValkeyClient {
	t.Helper()
	cfg := &config.Config{
		RedisHost: mr.Host(),
		RedisPort: mr.Port(),
		RedisPass: "",
		HSSAPIURL: "http://localhost:8080",
		Realm:     "example.com",
	}
	vc, err := NewValkeyClient(cfg)
	if err != nil {
		t.Fatalf("NewValkeyClient failed: %v", err)
	}
	t.Cleanup(func() { vc.Close() })
	return vc
}

func TestStorePutGet(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	vec := av.NewDigest("example.com", "auth", "d41d8cd98f00b204e9800998ecf8427e")
	if err := s.Put(ctx, "alice@example.com", "nonce-1", vec, 40*time.Second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get(ctx, "alice@example.com", "nonce-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.IsAKA() {
		t.Error("IsAKA: got true, want false")
	}
	if got.Digest.HA1 != vec.Digest.HA1 {
		t.Errorf("HA1: got %v, want %v", got.Digest.HA1, vec.Digest.HA1)
	}
}

func TestStorePutSetsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	vec := av.NewAKA("challenge", "ck", "ik", "resp")
	if err := s.Put(ctx, "alice@example.com", "nonce-ttl", vec, config.AVStoreTTL); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	ttl := mr.TTL(avKey("alice@example.com", "nonce-ttl"))
	if ttl != config.AVStoreTTL {
		t.Errorf("TTL: got %v, want %v", ttl, config.AVStoreTTL)
	}
}

func TestStoreGetAbsent(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewStore(newTestValkeyClient(t, mr))

	_, err := s.Get(context.Background(), "alice@example.com", "no-such-nonce")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: got %v, want ErrNotFound", err)
	}
}

// 同一キーのDeleteでtrueを観測できるのは1回のみであること
func TestStoreDeleteConsumesOnce(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	vec := av.NewDigest("example.com", "auth", "ha1")
	if err := s.Put(ctx, "alice@example.com", "nonce-del", vec, time.Minute); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	deleted, err := s.Delete(ctx, "alice@example.com", "nonce-del")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("first Delete: got false, want true")
	}

	deleted, err = s.Delete(ctx, "alice@example.com", "nonce-del")
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted {
		t.Error("second Delete: got true, want false")
	}

	if _, err := s.Get(ctx, "alice@example.com", "nonce-del"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete: got %v, want ErrNotFound", err)
	}
}

// TTL経過後はverifyを挟まなくてもエントリが観測不能になること
func TestStoreExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	vec := av.NewDigest("example.com", "auth", "ha1")
	if err := s.Put(ctx, "alice@example.com", "nonce-exp", vec, 10*time.Second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	mr.FastForward(11 * time.Second)

	if _, err := s.Get(ctx, "alice@example.com", "nonce-exp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after expiry: got %v, want ErrNotFound", err)
	}
}

func TestStoreKeyIsolation(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	vecA := av.NewDigest("example.com", "auth", "ha1-a")
	vecB := av.NewDigest("example.com", "auth", "ha1-b")
	if err := s.Put(ctx, "alice@example.com", "nonce", vecA, time.Minute); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, "bob@example.com", "nonce", vecB, time.Minute); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if _, err := s.Delete(ctx, "alice@example.com", "nonce"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err := s.Get(ctx, "bob@example.com", "nonce")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Digest.HA1 != "ha1-b" {
		t.Errorf("HA1: got %v, want ha1-b", got.Digest.HA1)
	}
}

// impiが":"を含んでも別の(impi, nonce)の組とキー衝突しないこと
func TestStoreKeySeparatorInIMPI(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewStore(newTestValkeyClient(t, mr))
	ctx := context.Background()

	vecA := av.NewDigest("example.com", "auth", "ha1-a")
	vecB := av.NewDigest("example.com", "auth", "ha1-b")

	// 素朴な":"連結では両者とも "av:alice:n1:x" になる組
	if err := s.Put(ctx, "alice:n1", "x", vecA, time.Minute); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, "alice", "n1:x", vecB, time.Minute); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get(ctx, "alice:n1", "x")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Digest.HA1 != "ha1-a" {
		t.Errorf("HA1: got %v, want ha1-a", got.Digest.HA1)
	}

	got, err = s.Get(ctx, "alice", "n1:x")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Digest.HA1 != "ha1-b" {
		t.Errorf("HA1: got %v, want ha1-b", got.Digest.HA1)
	}
}

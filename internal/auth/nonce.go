package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// randomToken は暗号論的乱数由来のhex文字列トークンを生成する
func randomToken(byteLen int) (string, error) {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("random token generation failed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

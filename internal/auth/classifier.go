package auth

import (
	"strings"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/sip"
)

// Classify は受信リクエストの認証ディスポジションを決定する。
// 副作用は持たない。
//
//   - REGISTER以外は認証対象外。ただしACKはトランスポート制約上
//     応答を返せないため破棄、CANCELはチャレンジ応答を運べないため拒否する
//     （RFC 3261 22.1）。
//   - 信頼済みintegrity-protected値を持つリクエストは免除。
//   - 非空のresponseを持てば検証へ、それ以外はチャレンジへ。
func Classify(req *sip.Request) Decision {
	switch req.Method {
	case sip.MethodRegister:
		// fall through to credential inspection
	case sip.MethodAck:
		return DecisionDrop
	case sip.MethodCancel:
		return DecisionReject
	default:
		// REGISTER以外は認証済みまたは信頼済み上流からの到達とみなす
		return DecisionBypass
	}

	if integrityProtected(req.Credentials) {
		return DecisionBypass
	}

	if req.HasResponse() {
		return DecisionVerify
	}
	return DecisionChallenge
}

// integrityProtected はエッジプロキシによる完全性保護済みフラグを判定する
func integrityProtected(h *sip.CredentialHeader) bool {
	value, ok := h.Param(ParamIntegrityProtected)
	if !ok {
		return false
	}
	for _, trusted := range integrityProtectedTrusted {
		if strings.EqualFold(value, trusted) {
			return true
		}
	}
	return false
}

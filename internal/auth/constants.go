package auth

// クレデンシャルヘッダの拡張パラメータ名
const (
	ParamIntegrityProtected = "integrity-protected"
	ParamResync             = "auts"
	ParamCryptKey           = "ck"
	ParamIntegrityKey       = "ik"
)

// チャレンジヘッダのフィールド値
const (
	SchemeDigest      = "Digest"
	AlgorithmMD5      = "MD5"
	AlgorithmAKAv1MD5 = "AKAv1-MD5"
	QoPAuth           = "auth"
)

// integrityProtectedTrusted は信頼できるintegrity-protected値の集合。
// エッジプロキシが完全性保護済みと判定したリクエストはチャレンジを免除する。
var integrityProtectedTrusted = []string{"yes", "tls-yes", "ip-assoc-yes"}

package server

import (
	"github.com/oyaguma3/sip-digest-auth-poc/internal/auth"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/sip"
)

// authenticateRequest はPOST /api/v1/authenticate のリクエストボディを表す。
// sip.Requestのパース済み表現をそのまま受ける。
type authenticateRequest struct {
	Method      string                `json:"method" binding:"required"`
	RequestURI  string                `json:"request_uri"`
	To          string                `json:"to"`
	From        string                `json:"from"`
	CallID      string                `json:"call_id"`
	Credentials *sip.CredentialHeader `json:"credentials"`
}

// toSIPRequest はDTOをsip.Requestへ変換する
func (r *authenticateRequest) toSIPRequest() *sip.Request {
	return &sip.Request{
		Method:      sip.Method(r.Method),
		RequestURI:  r.RequestURI,
		To:          r.To,
		From:        r.From,
		CallID:      r.CallID,
		Credentials: r.Credentials,
	}
}

// authenticateResponse はディスポジションのレスポンスボディを表す
type authenticateResponse struct {
	Action    string               `json:"action"`
	Status    int                  `json:"status,omitempty"`
	Challenge *sip.ChallengeHeader `json:"challenge,omitempty"`
}

// toResponse は処理結果をレスポンスDTOへ変換する
func toResponse(res *auth.Result) *authenticateResponse {
	return &authenticateResponse{
		Action:    string(res.Action),
		Status:    res.Status,
		Challenge: res.Challenge,
	}
}

package hss

// FetchRequest はHSSへの認証ベクター要求を表す
type FetchRequest struct {
	IMPI string `json:"impi"`
	IMPU string `json:"impu"`
	// Resyncはクライアントが提示した再同期トークン。
	// 本コアでは解釈せず、受領したままHSSへ転送する。
	Resync string `json:"resync,omitempty"`
}

// ProblemDetails はRFC 7807エラーレスポンスを表す
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

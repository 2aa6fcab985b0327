package sip

import "testing"

func TestCredentialHeaderParam(t *testing.T) {
	h := &CredentialHeader{
		Params: []Param{
			{Name: "Integrity-Protected", Value: "yes"},
			{Name: "auts", Value: "first"},
			{Name: "AUTS", Value: "second"},
		},
	}

	tests := []struct {
		name      string
		param     string
		wantValue string
		wantOK    bool
	}{
		{"大文字小文字を無視", "integrity-protected", "yes", true},
		{"最初の一致を採用", "auts", "first", true},
		{"未定義パラメータ", "missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := h.Param(tt.param)
			if value != tt.wantValue || ok != tt.wantOK {
				t.Errorf("Param(%q): got (%q, %v), want (%q, %v)",
					tt.param, value, ok, tt.wantValue, tt.wantOK)
			}
		})
	}
}

func TestCredentialHeaderParamNil(t *testing.T) {
	var h *CredentialHeader
	if _, ok := h.Param("auts"); ok {
		t.Error("Param on nil header: got ok=true, want false")
	}
}

func TestRequestHasResponse(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want bool
	}{
		{"ヘッダなし", &Request{}, false},
		{"response空", &Request{Credentials: &CredentialHeader{}}, false},
		{"response非空", &Request{Credentials: &CredentialHeader{Response: "abc"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.HasResponse(); got != tt.want {
				t.Errorf("HasResponse: got %v, want %v", got, tt.want)
			}
		})
	}
}

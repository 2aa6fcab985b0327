package digest

import "testing"

// RFC 2617 3.5の例に基づくテストベクター
func TestResponseWithQoP(t *testing.T) {
	ha1 := HA1("Mufasa", "testrealm@host.com", "Circle Of Life")
	got := Response(ha1, "GET", "/dir/index.html",
		"dcd98b7102dd2f0e8b11d0f600bfb0c093", "00000001", "0a4f113b", "auth")
	want := "6629fae49393a05397450978507c4ef1"
	if got != want {
		t.Errorf("Response: got %v, want %v", got, want)
	}
}

func TestResponseWithoutQoP(t *testing.T) {
	// qop無しはRFC 2069互換形式（ha1:nonce:ha2）
	ha1 := HA1("user", "example.com", "password")
	withQoP := Response(ha1, "REGISTER", "sip:example.com", "nonce1", "00000001", "cnonce", "auth")
	withoutQoP := Response(ha1, "REGISTER", "sip:example.com", "nonce1", "", "", "")
	if withQoP == withoutQoP {
		t.Error("qop有無で同一のレスポンス値が計算された")
	}
	if len(withoutQoP) != 32 {
		t.Errorf("Response length: got %d, want 32", len(withoutQoP))
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"一致", "6629fae49393a05397450978507c4ef1", "6629fae49393a05397450978507c4ef1", true},
		{"大文字小文字差は一致", "ABCDEF", "abcdef", true},
		{"不一致", "6629fae49393a05397450978507c4ef1", "0029fae49393a05397450978507c4ef1", false},
		{"長さ不一致", "abc", "abcd", false},
		{"空文字列同士", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%q, %q): got %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualExact(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"一致", "plainresponse", "plainresponse", true},
		{"大文字小文字差は不一致", "PlainResponse", "plainresponse", false},
		{"不一致", "plainresponse", "otherresponse", false},
		{"長さ不一致", "abc", "abcd", false},
		{"空文字列同士", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualExact(tt.a, tt.b); got != tt.want {
				t.Errorf("EqualExact(%q, %q): got %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

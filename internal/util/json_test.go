package util

import "testing"

func TestExtractJSONCandidate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"text":"hi"}`, `{"text":"hi"}`},
		{"fenced json", "```json\n{\"text\":\"hi\"}\n```", `{"text":"hi"}`},
		{"fenced no language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced with preamble", "결과는 다음과 같습니다.\n```json\n{\"a\":1}\n```\n끝.", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"plain text passthrough", "그냥 텍스트", "그냥 텍스트"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONCandidate(tt.in); got != tt.want {
				t.Errorf("ExtractJSONCandidate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	if got := StripCodeFences("```json\n{}\n```"); got != "{}" {
		t.Errorf("got %q", got)
	}
	if got := StripCodeFences("no fences"); got != "no fences" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	b, mime, err := DecodeBase64MaybeDataURL("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(b) != "hello" || mime != "image/png" {
		t.Errorf("got %q %q", b, mime)
	}

	b, mime, err = DecodeBase64MaybeDataURL("aGVsbG8=")
	if err != nil || string(b) != "hello" || mime != "" {
		t.Errorf("plain base64: %q %q %v", b, mime, err)
	}

	if _, _, err := DecodeBase64MaybeDataURL("!!not base64!!"); err == nil {
		t.Error("expected decode error")
	}
}

func TestSniffMimeHTTP(t *testing.T) {
	if got := SniffMimeHTTP([]byte{0xFF, 0xD8, 0xFF}); got != "image/jpeg" {
		t.Errorf("jpeg: %q", got)
	}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if got := SniffMimeHTTP(png); got != "image/png" {
		t.Errorf("png: %q", got)
	}
	if got := SniffMimeHTTP([]byte("plain")); got != "application/octet-stream" {
		t.Errorf("other: %q", got)
	}
}

func TestPickMIME(t *testing.T) {
	if got := PickMIME("image/webp", "image/png", nil); got != "image/webp" {
		t.Errorf("explicit wins: %q", got)
	}
	if got := PickMIME("", "image/png", nil); got != "image/png" {
		t.Errorf("hint wins: %q", got)
	}
	if got := PickMIME("", "", []byte{0xFF, 0xD8, 0xFF, 0xE0}); got != "image/jpeg" {
		t.Errorf("sniffed: %q", got)
	}
	webp := []byte("RIFF\x00\x00\x00\x00WEBPVP8 ")
	if got := PickMIME("", "", webp); got != "image/webp" {
		t.Errorf("sniffed webp: %q", got)
	}
	if got := PickMIME("", "", nil); got != "image/jpeg" {
		t.Errorf("default: %q", got)
	}
}

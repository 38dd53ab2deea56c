package sl2

import (
	"testing"
)

func TestDecodeUTF16String(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		offset   int
		expected string
	}{
		{name: "先頭が終端", buf: []byte{0x00, 0x00, 0x41, 0x00}, offset: 0, expected: ""},
		{name: "ASCII", buf: []byte{0x41, 0x00, 0x42, 0x00, 0x00, 0x00}, offset: 0, expected: "AB"},
		{name: "オフセット指定", buf: []byte{0xFF, 0xFF, 0x43, 0x00, 0x00, 0x00}, offset: 2, expected: "C"},
		{name: "終端なし", buf: []byte{0x41, 0x00, 0x42, 0x00}, offset: 0, expected: "AB"},
		{name: "末尾の端数バイト", buf: []byte{0x41, 0x00, 0x42}, offset: 0, expected: "A"},
		{name: "範囲外のオフセット", buf: []byte{0x41, 0x00}, offset: 4, expected: ""},
		{name: "負のオフセット", buf: []byte{0x41, 0x00}, offset: -1, expected: ""},
		{name: "孤立したサロゲート", buf: []byte{0x00, 0xD8, 0x41, 0x00, 0x00, 0x00}, offset: 0, expected: "�A"},
		{name: "サロゲートペア", buf: []byte{0x3D, 0xD8, 0x00, 0xDE, 0x00, 0x00}, offset: 0, expected: "😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeUTF16String(tt.buf, tt.offset)
			if got != tt.expected {
				t.Errorf("DecodeUTF16String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDecodeUTF16String_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Alice",
		"褪せ人",
		"灰の方",
		"Ünïcödé Ñame",
		"16 chars exactly",
	}

	for _, s := range inputs {
		buf := append([]byte{0xEE, 0xEE}, EncodeUTF16String(s)...)
		if got := DecodeUTF16String(buf, 2); got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
	}
}

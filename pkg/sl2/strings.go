package sl2

import (
	"encoding/binary"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16String は offset から NUL (0x0000) 終端の UTF-16LE 文字列を読み込みます。
// 終端が見つからない場合はバッファの終わりまでを対象とし、
// 不正なサロゲートは U+FFFD に置き換えます。
func DecodeUTF16String(buf []byte, offset int) string {
	if offset < 0 || offset >= len(buf) {
		return ""
	}

	end := offset
	for end+2 <= len(buf) && binary.LittleEndian.Uint16(buf[end:]) != 0 {
		end += 2
	}
	if end == offset {
		return ""
	}

	decoded, err := utf16LE.NewDecoder().Bytes(buf[offset:end])
	if err != nil {
		return decodeUTF16Fallback(buf[offset:end])
	}
	return string(decoded)
}

// EncodeUTF16String は s を NUL 終端付きの UTF-16LE バイト列に変換します
func EncodeUTF16String(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units)*2+2)
	for _, u := range units {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return append(out, 0, 0)
}

func decodeUTF16Fallback(b []byte) string {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return string(utf16.Decode(units))
}

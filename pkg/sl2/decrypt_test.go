package sl2

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecryptor_RoundTrip(t *testing.T) {
	d := NewDecryptor()
	plaintexts := [][]byte{
		{},
		[]byte("x"),
		bytes.Repeat([]byte{0x5A}, 16),
		bytes.Repeat([]byte{0x01, 0x02, 0x03}, 100),
	}

	for _, pt := range plaintexts {
		ct := encryptForTest(t, pt, testIV())
		got, err := d.Decrypt(ct, testIV())
		if err != nil {
			t.Fatalf("Decrypt(%d bytes) failed: %v", len(pt), err)
		}
		if !bytes.Equal(got, pt) {
			t.Errorf("Decrypt(%d bytes) mismatch", len(pt))
		}
	}
}

func TestDecryptor_Errors(t *testing.T) {
	d := NewDecryptor()
	ct := encryptForTest(t, []byte("character data"), testIV())

	tests := []struct {
		name       string
		ciphertext []byte
		iv         []byte
	}{
		{name: "ブロック長の倍数でない", ciphertext: ct[:len(ct)-1], iv: testIV()},
		{name: "空", ciphertext: []byte{}, iv: testIV()},
		{name: "IV不正", ciphertext: ct, iv: testIV()[:8]},
		{name: "平文データ", ciphertext: bytes.Repeat([]byte{0x41}, 32), iv: testIV()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := d.Decrypt(tt.ciphertext, tt.iv); !errors.Is(err, ErrDecrypt) {
				t.Errorf("Decrypt error = %v, want ErrDecrypt", err)
			}
		})
	}
}

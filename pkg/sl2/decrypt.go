package sl2

import (
	"fmt"

	"github.com/shiroemons/go-bonfire/pkg/crypto"
)

// saveKey は DARK SOULS III のセーブデータ用 AES-128 鍵
var saveKey = [crypto.KeySize]byte{
	0xFD, 0x46, 0x4D, 0x69, 0x5E, 0x69, 0xA3, 0x9A,
	0x10, 0xE3, 0x19, 0xA7, 0xAC, 0xE8, 0xB7, 0xFA,
}

// Decryptor は埋め込み鍵でエントリデータを復号します
type Decryptor struct{}

// NewDecryptor は新しい Decryptor を作成します
func NewDecryptor() *Decryptor {
	return &Decryptor{}
}

// Decrypt は ciphertext を iv で復号し、パディングを取り除いた平文を返します
func (d *Decryptor) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	plaintext, err := crypto.DecryptCBC(saveKey[:], iv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}

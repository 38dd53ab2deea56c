// Package crypto はセーブデータコンテナで使用される暗号アルゴリズムを提供します。
//
// 主な機能:
//   - DecryptCBC: AES-128-CBC の復号と PKCS#7 パディングの除去
//   - PKCS7Unpad: PKCS#7 パディングの検証と除去
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// KeySize は AES-128 の鍵長 (バイト)
const KeySize = 16

var (
	// ErrInvalidKeySize は鍵長が不正な場合のエラー
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize は IV 長がブロックサイズと一致しない場合のエラー
	ErrInvalidIVSize = errors.New("invalid iv size")

	// ErrInvalidBlockSize は暗号文長がブロックサイズの倍数でない場合のエラー
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of the block size")

	// ErrInvalidPadding は PKCS#7 パディングが不正な場合のエラー
	ErrInvalidPadding = errors.New("invalid pkcs7 padding")
)

// DecryptCBC は AES-128-CBC で暗号文を復号し、PKCS#7 パディングを取り除いた平文を返します。
// ciphertext は変更されません (作業用コピーの上で復号します)。
func DecryptCBC(key, iv, ciphertext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, len(key))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIVSize, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, len(ciphertext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeySize, err)
	}

	buf := make([]byte, len(ciphertext))
	copy(buf, ciphertext)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(buf, buf)

	return PKCS7Unpad(buf, aes.BlockSize)
}

// PKCS7Unpad は末尾の PKCS#7 パディングを検証して取り除きます
func PKCS7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidPadding, len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: pad length %d", ErrInvalidPadding, n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: pad byte 0x%02X, want 0x%02X", ErrInvalidPadding, b, n)
		}
	}

	return data[:len(data)-n], nil
}

package sl2

import "errors"

var (
	// ErrUnknownProfile は未登録のプロファイルキーが指定された場合のエラー
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrInvalidProfile はプロファイル定義が不正な場合のエラー
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrOutOfBounds はオフセットや長さがバッファを超える場合のエラー
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrDecrypt は復号またはパディング検証に失敗した場合のエラー
	ErrDecrypt = errors.New("decryption failed")
)

// Package errors はカスタムエラータイプを提供します
package errors

import (
	"fmt"
)

// SaveError はセーブファイル単位の処理で発生したエラー
type SaveError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *SaveError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *SaveError) Unwrap() error {
	return e.Err
}

// NewSaveError は新しいSaveErrorを作成します
func NewSaveError(op, path string, err error) *SaveError {
	return &SaveError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

package fileutil

import "errors"

var (
	// ErrGetCurrentDirectory はカレントディレクトリを取得できない場合のエラー
	ErrGetCurrentDirectory = errors.New("カレントディレクトリを取得できませんでした")

	// ErrReadDirectory はディレクトリ内のファイル一覧を取得できない場合のエラー
	ErrReadDirectory = errors.New("ディレクトリ内のファイル一覧を取得できませんでした")

	// ErrUnknownSaveName はファイル名からプロファイルを推測できない場合のエラー
	ErrUnknownSaveName = errors.New("ファイル名からプロファイルを特定できませんでした")
)

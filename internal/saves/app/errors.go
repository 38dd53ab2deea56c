package app

import "errors"

var (
	// ErrNoSaveFiles はセーブファイルが見つからない場合のエラー
	ErrNoSaveFiles = errors.New("セーブファイルが見つかりませんでした")

	// ErrScanFailed は1件以上のセーブファイルの読み込みに失敗した場合のエラー
	ErrScanFailed = errors.New("セーブファイルの読み込みに失敗しました")

	// ErrProfileUndetermined はプロファイルを決定できない場合のエラー
	ErrProfileUndetermined = errors.New("プロファイルを決定できません (--profile を指定してください)")

	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルの読み込みに失敗しました")
)

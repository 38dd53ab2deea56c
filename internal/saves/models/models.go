// Package models はbonfireコマンドで使用するデータモデルを定義します
package models

import "github.com/shiroemons/go-bonfire/pkg/sl2"

// ScanResult はセーブファイル1件の読み込み結果を表します
type ScanResult struct {
	Path       string
	ProfileKey string
	EntryName  string
	Characters []sl2.Character
	Err        error
}

// Failed は読み込みに失敗したかどうかを返します
func (r ScanResult) Failed() bool {
	return r.Err != nil
}

// EntryListing はコンテナ内のエントリ一覧を表します
type EntryListing struct {
	Path    string
	Entries []sl2.Entry
}

// ProfileInfo はプロファイル一覧の1行を表します
type ProfileInfo struct {
	Key     string
	Profile sl2.Profile
}

// Package interfaces はbonfireコマンドで使用するインターフェースを定義します
package interfaces

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	ReadFile(filename string) ([]byte, error)
	ReadDir(dirname string) ([]DirEntry, error)
	Getwd() (string, error)
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// SaveFileFinder はセーブファイルを検索するインターフェースです
type SaveFileFinder interface {
	Find(dir string) ([]string, error)
}

// Package fileutil はセーブファイルの検索とファイル操作のユーティリティを提供します
package fileutil

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/shiroemons/go-bonfire/internal/saves/interfaces"
)

var (
	// SaveFilePattern は ER0000.sl2 や DS30000.sl2 ファイルのパターン
	SaveFilePattern = regexp.MustCompile(`(?i)^(ER|DS3)\d{4}\.sl2$`)
)

// GuessProfile はファイル名からプロファイルキーを推測します
func GuessProfile(filename string) (string, error) {
	matches := SaveFilePattern.FindStringSubmatch(filepath.Base(filename))
	if len(matches) < 2 {
		return "", fmt.Errorf("%w: %s", ErrUnknownSaveName, filepath.Base(filename))
	}
	return strings.ToLower(matches[1]), nil
}

// SaveFileFinder はディレクトリからセーブファイルを検索します
type SaveFileFinder struct {
	fs interfaces.FileSystem
}

// NewSaveFileFinder は新しいSaveFileFinderを作成します
func NewSaveFileFinder(fs interfaces.FileSystem) *SaveFileFinder {
	return &SaveFileFinder{fs: fs}
}

// Find は dir 内のセーブファイルを名前順で返します。dir が空の場合はカレントディレクトリを検索します。
func (f *SaveFileFinder) Find(dir string) ([]string, error) {
	if dir == "" {
		wd, err := f.fs.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrGetCurrentDirectory, err)
		}
		dir = wd
	}

	files, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	var saves []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if SaveFilePattern.MatchString(file.Name()) {
			saves = append(saves, filepath.Join(dir, file.Name()))
		}
	}
	slices.Sort(saves)

	return saves, nil
}

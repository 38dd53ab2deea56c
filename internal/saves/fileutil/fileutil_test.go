package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/shiroemons/go-bonfire/internal/saves/mocks"
)

func TestGuessProfile(t *testing.T) {
	tests := []struct {
		filename string
		expected string
		wantErr  bool
	}{
		{"ER0000.sl2", "er", false},
		{"/saves/76561199002602391/ER0000.sl2", "er", false},
		{"er0001.SL2", "er", false},
		{"DS30000.sl2", "ds3", false},
		{"ds30005.sl2", "ds3", false},
		{"ER0000.co2", "", true},
		{"ER0000.sl2.bak", "", true},
		{"DRAKS0005.sl2", "", true},
		{"save.dat", "", true},
	}

	for _, test := range tests {
		result, err := GuessProfile(test.filename)
		if test.wantErr {
			if !errors.Is(err, ErrUnknownSaveName) {
				t.Errorf("GuessProfile(%s) error = %v; want ErrUnknownSaveName", test.filename, err)
			}
			continue
		}
		if err != nil || result != test.expected {
			t.Errorf("GuessProfile(%s) = %s, %v; want %s", test.filename, result, err, test.expected)
		}
	}
}

func TestSaveFileFinder_Find(t *testing.T) {
	tests := []struct {
		name      string
		dir       string
		setupMock func(*mocks.MockFileSystem)
		wantFiles []string
		wantError error
	}{
		{
			name: "カレントディレクトリに1つのセーブファイル",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.WorkingDir = "/current"
				fs.Dirs["/current"] = true
				fs.Files["/current/ER0000.sl2"] = []byte("test")
			},
			wantFiles: []string{"/current/ER0000.sl2"},
		},
		{
			name: "複数のセーブファイルは名前順",
			dir:  "/saves",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.Dirs["/saves"] = true
				fs.Files["/saves/ER0000.sl2"] = []byte("test")
				fs.Files["/saves/DS30000.sl2"] = []byte("test")
				fs.Files["/saves/ER0000.sl2.bak"] = []byte("test")
				fs.Files["/saves/readme.txt"] = []byte("test")
			},
			wantFiles: []string{"/saves/DS30000.sl2", "/saves/ER0000.sl2"},
		},
		{
			name: "ディレクトリは除外される",
			dir:  "/saves",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.Dirs["/saves"] = true
				fs.Dirs["/saves/ER0000.sl2"] = true
			},
			wantFiles: nil,
		},
		{
			name: "セーブファイルが見つからない",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.WorkingDir = "/current"
				fs.Dirs["/current"] = true
			},
			wantFiles: nil,
		},
		{
			name:      "ディレクトリが存在しない",
			dir:       "/missing",
			setupMock: func(fs *mocks.MockFileSystem) {},
			wantError: ErrReadDirectory,
		},
		{
			name: "カレントディレクトリ取得エラー",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.Error = errors.New("getwd error")
			},
			wantError: ErrGetCurrentDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewMockFileSystem()
			tt.setupMock(fs)

			files, err := NewSaveFileFinder(fs).Find(tt.dir)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("Find error = %v, want %v", err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}
			if !slices.Equal(files, tt.wantFiles) {
				t.Errorf("Find = %v, want %v", files, tt.wantFiles)
			}
		})
	}
}

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DS30000.sl2")
	if err := os.WriteFile(path, []byte("BND4"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := NewOSFileSystem()
	data, err := fs.ReadFile(path)
	if err != nil || string(data) != "BND4" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}

	files, err := NewSaveFileFinder(fs).Find(dir)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !slices.Equal(files, []string{path}) {
		t.Errorf("Find = %v, want [%s]", files, path)
	}

	if _, err := fs.Getwd(); err != nil {
		t.Errorf("Getwd failed: %v", err)
	}
}

// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/shiroemons/go-bonfire/internal/saves/config"
	saveerrors "github.com/shiroemons/go-bonfire/internal/saves/errors"
	"github.com/shiroemons/go-bonfire/internal/saves/fileutil"
	"github.com/shiroemons/go-bonfire/internal/saves/interfaces"
	"github.com/shiroemons/go-bonfire/internal/saves/models"
	"github.com/shiroemons/go-bonfire/internal/saves/render"
	"github.com/shiroemons/go-bonfire/pkg/sl2"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger *zap.Logger
	parser *sl2.Parser
	finder interfaces.SaveFileFinder
	fs     interfaces.FileSystem
	stdout io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem     interfaces.FileSystem
	SaveFileFinder interfaces.SaveFileFinder
	Logger         *zap.Logger
	Stdout         io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) (*App, error) {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	if cfg.Profile != "" {
		if _, err := registry.Lookup(cfg.Profile); err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = config.NewLogger(cfg.DebugMode, nil)
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	finder := opts.SaveFileFinder
	if finder == nil {
		finder = fileutil.NewSaveFileFinder(fs)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		config: cfg,
		logger: logger,
		parser: sl2.NewParser(registry),
		finder: finder,
		fs:     fs,
		stdout: stdout,
	}, nil
}

// Run はセーブファイルを読み込み、キャラクター一覧を出力します。
// 1件でも失敗した場合は他のファイルの結果を出力した上で ErrScanFailed を返します。
func (a *App) Run(ctx context.Context) error {
	paths, err := a.savePaths()
	if err != nil {
		return err
	}

	results, err := a.ScanAll(ctx, paths)
	if err != nil {
		return err
	}

	if err := render.Results(a.stdout, a.config.Format, results); err != nil {
		return fmt.Errorf("出力に失敗しました: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
			a.logger.Error("セーブファイルを読み込めませんでした", zap.String("path", r.Path), zap.Error(r.Err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d/%d件", ErrScanFailed, failed, len(results))
	}
	return nil
}

// ScanAll は paths を並行に読み込み、paths と同じ順序で結果を返します
func (a *App) ScanAll(ctx context.Context, paths []string) ([]models.ScanResult, error) {
	results := make([]models.ScanResult, len(paths))

	p := pool.New().WithMaxGoroutines(a.config.Workers)
	for idx, path := range paths {
		p.Go(func() {
			results[idx] = a.ScanFile(ctx, path)
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// ScanFile はセーブファイル1件を読み込みます。失敗した場合は結果の Err に設定します。
func (a *App) ScanFile(ctx context.Context, path string) models.ScanResult {
	result := models.ScanResult{Path: path}

	select {
	case <-ctx.Done():
		result.Err = ctx.Err()
		return result
	default:
	}

	key, err := a.profileFor(path)
	if err != nil {
		result.Err = saveerrors.NewSaveError("profile", path, err)
		return result
	}
	result.ProfileKey = key

	raw, err := a.fs.ReadFile(path)
	if err != nil {
		result.Err = saveerrors.NewSaveError("read", path, fmt.Errorf("%w: %w", ErrReadFile, err))
		return result
	}
	a.logger.Debug("セーブファイルを読み込みました",
		zap.String("path", path),
		zap.String("profile", key),
		zap.Int("size", len(raw)),
	)

	container, err := a.parser.Parse(raw, key)
	if err != nil {
		result.Err = saveerrors.NewSaveError("parse", path, err)
		return result
	}
	result.EntryName = container.Entry.Name
	a.logger.Debug("エントリを取り出しました",
		zap.String("path", path),
		zap.Int("index", container.Entry.Index),
		zap.String("entry", container.Entry.Name),
		zap.Uint32("size", container.Entry.Size),
		zap.Uint32("data_offset", container.Entry.DataOffset),
		zap.Bool("encrypted", container.Profile.Encrypted),
		zap.Int("body", len(container.Body)),
	)

	characters, err := sl2.Extract(container)
	if err != nil {
		result.Err = saveerrors.NewSaveError("extract", path, err)
		return result
	}
	result.Characters = characters
	a.logger.Debug("キャラクターを読み込みました", zap.String("path", path), zap.Int("count", len(characters)))

	return result
}

// ListEntries はセーブファイルのエントリ一覧を出力します
func (a *App) ListEntries(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	raw, err := a.fs.ReadFile(path)
	if err != nil {
		return saveerrors.NewSaveError("read", path, fmt.Errorf("%w: %w", ErrReadFile, err))
	}

	entries, err := sl2.ReadEntries(raw)
	if err != nil {
		return saveerrors.NewSaveError("entries", path, err)
	}
	a.logger.Debug("エントリテーブルを読み込みました", zap.String("path", path), zap.Int("count", len(entries)))

	return render.Entries(a.stdout, a.config.Format, models.EntryListing{Path: path, Entries: entries})
}

// ListProfiles は利用可能なプロファイルの一覧を出力します
func (a *App) ListProfiles() error {
	registry := a.parser.Registry()

	var profiles []models.ProfileInfo
	for _, key := range registry.Keys() {
		p, err := registry.Lookup(key)
		if err != nil {
			return err
		}
		profiles = append(profiles, models.ProfileInfo{Key: key, Profile: p})
	}

	return render.Profiles(a.stdout, a.config.Format, profiles)
}

// savePaths は読み込むセーブファイルを決定します。
// 引数で指定されていない場合はディレクトリから検索します。
func (a *App) savePaths() ([]string, error) {
	if len(a.config.SavePaths) > 0 {
		return a.config.SavePaths, nil
	}

	paths, err := a.finder.Find(a.config.SaveDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoSaveFiles
	}
	a.logger.Debug("セーブファイルを検出しました", zap.Strings("paths", paths))
	return paths, nil
}

// profileFor は設定またはファイル名からプロファイルキーを決定します
func (a *App) profileFor(path string) (string, error) {
	if a.config.Profile != "" {
		return a.config.Profile, nil
	}
	key, err := fileutil.GuessProfile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProfileUndetermined, err)
	}
	return key, nil
}

package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/shiroemons/go-bonfire/pkg/sl2"
)

// File は TOML 設定ファイルの内容を表します
type File struct {
	Defaults FileDefaults           `toml:"defaults"`
	Profiles map[string]FileProfile `toml:"profiles"`
}

// FileDefaults は設定ファイルの [defaults] テーブル
type FileDefaults struct {
	Profile string `toml:"profile"`
	Format  string `toml:"format"`
	Workers int    `toml:"workers"`
	SaveDir string `toml:"save_dir"`
}

// FileProfile は設定ファイルの [profiles.<key>] テーブル
type FileProfile struct {
	Encrypted       bool `toml:"encrypted"`
	NameMaxLength   int  `toml:"name_max_length"`
	Slots           int  `toml:"slots"`
	FileIndex       int  `toml:"file_index"`
	SlotDataOffset  int  `toml:"slot_data_offset"`
	SlotLength      int  `toml:"slot_length"`
	OccupancyOffset int  `toml:"occupancy_offset"`
	ChecksumPrefix  int  `toml:"checksum_prefix"`
}

// Profile は sl2.Profile に変換します
func (p FileProfile) Profile() sl2.Profile {
	return sl2.Profile{
		Encrypted:            p.Encrypted,
		CharacterNameMaxLen:  p.NameMaxLength,
		CharacterSlotsCount:  p.Slots,
		FileIndex:            p.FileIndex,
		SlotDataOffset:       p.SlotDataOffset,
		SlotLength:           p.SlotLength,
		SlotsOccupancyOffset: p.OccupancyOffset,
		ChecksumPrefixLength: p.ChecksumPrefix,
	}
}

// Env は環境変数から読み込む設定
type Env struct {
	Profile string `env:"BONFIRE_PROFILE"`
	Format  string `env:"BONFIRE_FORMAT"`
	Workers int    `env:"BONFIRE_WORKERS"`
	Debug   bool   `env:"BONFIRE_DEBUG"`
	Config  string `env:"BONFIRE_CONFIG"`
	SaveDir string `env:"BONFIRE_SAVE_DIR"`
}

// Load はデフォルト値、設定ファイル、環境変数の順に設定を読み込みます。
// configPath が空の場合は BONFIRE_CONFIG を使用します。
// コマンドラインフラグは呼び出し側で最後に適用してください。
func Load(configPath string) (*Config, error) {
	// .env は任意
	_ = godotenv.Load()

	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("環境変数の解析に失敗しました: %w", err)
	}

	cfg := Default()
	if configPath == "" {
		configPath = e.Config
	}
	if configPath != "" {
		file, err := LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		file.Apply(cfg)
		cfg.ConfigFile = configPath
	}

	e.Apply(cfg)
	return cfg, nil
}

// LoadFile は TOML 設定ファイルを読み込みます
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルを読み込めません: %w", err)
	}

	var f File
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析に失敗しました %s: %w", path, err)
	}
	return &f, nil
}

// Apply は設定ファイルの値を cfg に反映します
func (f *File) Apply(cfg *Config) {
	if f.Defaults.Profile != "" {
		cfg.Profile = f.Defaults.Profile
	}
	if f.Defaults.Format != "" {
		cfg.Format = f.Defaults.Format
	}
	if f.Defaults.Workers != 0 {
		cfg.Workers = f.Defaults.Workers
	}
	if f.Defaults.SaveDir != "" {
		cfg.SaveDir = f.Defaults.SaveDir
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]sl2.Profile{}
	}
	for key, p := range f.Profiles {
		cfg.Profiles[key] = p.Profile()
	}
}

// Apply は環境変数の値を cfg に反映します (未設定の項目は変更しません)
func (e Env) Apply(cfg *Config) {
	if e.Profile != "" {
		cfg.Profile = e.Profile
	}
	if e.Format != "" {
		cfg.Format = e.Format
	}
	if e.Workers != 0 {
		cfg.Workers = e.Workers
	}
	if e.Debug {
		cfg.DebugMode = true
	}
	if e.SaveDir != "" {
		cfg.SaveDir = e.SaveDir
	}
}

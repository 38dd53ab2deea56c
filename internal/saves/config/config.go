// Package config はbonfireコマンドの設定管理を行います
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/shiroemons/go-bonfire/pkg/sl2"
)

const Version = "0.1.0"

// 出力形式
const (
	FormatAuto  = "auto"
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

const (
	defaultFormat  = FormatAuto
	defaultWorkers = 4
)

var (
	// ErrInvalidFormat は出力形式が不正な場合のエラー
	ErrInvalidFormat = errors.New("不正な出力形式です")

	// ErrInvalidWorkers はワーカー数が不正な場合のエラー
	ErrInvalidWorkers = errors.New("ワーカー数は1以上を指定してください")
)

// Config はアプリケーションの設定を保持します
type Config struct {
	SavePaths  []string
	SaveDir    string
	Profile    string // 空の場合はファイル名から推測する
	Format     string
	Workers    int
	DebugMode  bool
	ConfigFile string

	// Profiles は設定ファイルで追加・上書きされたプロファイル
	Profiles map[string]sl2.Profile
}

// Default はデフォルト値を設定した Config を返します
func Default() *Config {
	return &Config{
		Format:   defaultFormat,
		Workers:  defaultWorkers,
		Profiles: map[string]sl2.Profile{},
	}
}

// Formats は指定可能な出力形式の一覧を返します
func Formats() []string {
	return []string{FormatAuto, FormatTable, FormatPlain, FormatJSON}
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if !slices.Contains(Formats(), c.Format) {
		return fmt.Errorf("%w: %q (%s)", ErrInvalidFormat, c.Format, strings.Join(Formats(), ", "))
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// Registry は組み込みプロファイルに設定ファイルのプロファイルを重ねた Registry を返します
func (c *Config) Registry() (*sl2.Registry, error) {
	reg := sl2.DefaultRegistry()
	for _, key := range slices.Sorted(maps.Keys(c.Profiles)) {
		var err error
		reg, err = reg.With(key, c.Profiles[key])
		if err != nil {
			return nil, err
		}
	}
	return reg, nil
}

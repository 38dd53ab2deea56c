package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shiroemons/go-bonfire/internal/saves/app"
	"github.com/shiroemons/go-bonfire/internal/saves/config"
)

// flagValues はコマンドラインフラグの値を保持します
type flagValues struct {
	config  string
	profile string
	format  string
	workers int
	debug   bool
	dir     string
}

type commandContext struct {
	flags *flagValues

	configOnce sync.Once
	config     *config.Config
	logger     *zap.Logger
	configErr  error
}

func newCommandContext(flags *flagValues) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig は設定を一度だけ読み込み、変更されたフラグを最後に適用します
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		c.applyFlags(cmd, cfg)
		c.config = cfg
		c.logger = config.NewLogger(cfg.DebugMode, cmd.ErrOrStderr())
		if cfg.ConfigFile != "" {
			c.logger.Debug("設定ファイルを読み込みました", zap.String("path", cfg.ConfigFile))
		}
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile = c.flags.profile
	}
	if flags.Changed("format") {
		cfg.Format = c.flags.format
	}
	if flags.Changed("workers") {
		cfg.Workers = c.flags.workers
	}
	if flags.Changed("debug") {
		cfg.DebugMode = c.flags.debug
	}
	if flags.Changed("dir") {
		cfg.SaveDir = c.flags.dir
	}
}

// newApp は読み込み済みの設定で App を作成します
func (c *commandContext) newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return nil, err
	}
	return app.NewWithOptions(cfg, app.Options{
		Logger: c.logger,
		Stdout: cmd.OutOrStdout(),
	})
}

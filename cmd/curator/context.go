package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"curator/internal/config"
	"curator/internal/logging"
	"curator/internal/repolock"
)

type commandContext struct {
	configFlag    *string
	rootFlag      *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, rootFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		rootFlag:      rootFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.rootFlag != nil && strings.TrimSpace(*c.rootFlag) != "" {
			root, err := config.ExpandPath(strings.TrimSpace(*c.rootFlag))
			if err != nil {
				c.configErr = err
				return
			}
			cfg.Paths.Root = root
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
		}
		if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
			cfg.Logging.Format = strings.TrimSpace(*c.logFormatFlag)
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// log returns the shared run logger. Every line carries a run_id so batch
// output from overlapping invocations can be told apart.
func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		opts := logging.Options{Level: "info", Format: "console", Writer: os.Stderr}
		if cfg, err := c.ensureConfig(); err == nil {
			opts.Level = cfg.Logging.Level
			opts.Format = cfg.Logging.Format
		}
		logger, err := logging.New(opts)
		if err != nil {
			opts.Format = "console"
			logger, _ = logging.New(opts)
		}
		c.logger = logger.With("run_id", uuid.NewString())
	})
	return c.logger
}

// withLock loads configuration, takes the repository lock, and runs fn.
// Mutating commands go through here so two curator runs cannot interleave
// writes against the same tree.
func (c *commandContext) withLock(fn func(cfg *config.Config, logger *slog.Logger) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	lock, err := repolock.Acquire(cfg.LockPath())
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()
	return fn(cfg, c.log())
}

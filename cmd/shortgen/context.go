package main

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"shortgen/internal/api"
	"shortgen/internal/cache"
	"shortgen/internal/config"
	"shortgen/internal/logging"
	"shortgen/internal/notifications"
	"shortgen/internal/poller"
	"shortgen/internal/workflow"
)

type commandContext struct {
	configFlag *string
	apiURLFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logOnce sync.Once
	logger  *slog.Logger
}

func newCommandContext(configFlag, apiURLFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		apiURLFlag: apiURLFlag,
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
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.logOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) apiClient() (*api.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	baseURL := cfg.API.BaseURL
	if c.apiURLFlag != nil && strings.TrimSpace(*c.apiURLFlag) != "" {
		baseURL = strings.TrimSpace(*c.apiURLFlag)
	}
	httpClient := &http.Client{Timeout: time.Duration(cfg.API.RequestTimeout) * time.Second}
	return api.New(baseURL, api.WithHTTPClient(httpClient))
}

// openCache returns nil without error when the cache is disabled; callers
// treat a nil store as "skip caching".
func (c *commandContext) openCache() (*cache.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	return cache.Open(cfg.Cache.Path)
}

func (c *commandContext) notifier() notifications.Service {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return notifications.NewService(config.Notifications{})
	}
	return notifications.NewService(cfg.Notifications)
}

func (c *commandContext) poller(variant workflow.Variant, maxWait time.Duration) poller.Poller {
	p := poller.Poller{
		Variant: variant,
		MaxWait: maxWait,
		Logger:  logging.WithComponent(c.ensureLogger(), "poller"),
	}
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		p.Interval = time.Duration(cfg.Poll.Interval) * time.Second
		p.ErrorInterval = time.Duration(cfg.Poll.ErrorRetryInterval) * time.Second
		if maxWait == 0 && cfg.Poll.MaxWait > 0 {
			p.MaxWait = time.Duration(cfg.Poll.MaxWait) * time.Second
		}
	}
	return p
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

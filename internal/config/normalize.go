package config

import (
	"fmt"
	"strings"

	"matcompat/internal/textutil"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeAnalysis()
	c.normalizeOutput()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	c.Paths.LogDir = strings.TrimSpace(c.Paths.LogDir)
	if c.Paths.LogDir != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeAnalysis() {
	if len(c.Analysis.ExtraStopwords) == 0 {
		return
	}
	words := make([]string, 0, len(c.Analysis.ExtraStopwords))
	seen := make(map[string]struct{}, len(c.Analysis.ExtraStopwords))
	for _, word := range c.Analysis.ExtraStopwords {
		normalized := textutil.NormalizeToken(word)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		words = append(words, normalized)
	}
	c.Analysis.ExtraStopwords = words
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}

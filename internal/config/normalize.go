package config

import "strings"

func (c *Config) normalize() {
	c.normalizeMatching()
	c.normalizeOutput()
	c.normalizeLogging()
}

func (c *Config) normalizeMatching() {
	seen := make(map[string]struct{}, len(c.Matching.ExtraNoiseWords))
	words := c.Matching.ExtraNoiseWords[:0]
	for _, word := range c.Matching.ExtraNoiseWords {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	c.Matching.ExtraNoiseWords = words
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
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

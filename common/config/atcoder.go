package config

import (
	"atcoder_judger/lib/customfields"

	"github.com/xorcare/pointer"
)

// AtCoder serves a different login form to clients without a browser UA.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/71.0.3578.98 Safari/537.36"

type AtCoderConfig struct {
	Username string `yaml:"Username"`
	Password string `yaml:"Password"`

	BaseURL   *string `yaml:"BaseURL,omitempty"`
	UserAgent *string `yaml:"UserAgent,omitempty"`

	// PollInterval is measured from the end of one tracker pass to the
	// start of the next one.
	PollInterval *customfields.Time `yaml:"PollInterval,omitempty"`

	// MaxSourceSize bounds solution files before they are read.
	MaxSourceSize *customfields.Memory `yaml:"MaxSourceSize,omitempty"`

	// LoginOnStartup warms the session up eagerly instead of waiting for
	// the first submission.
	LoginOnStartup *bool `yaml:"LoginOnStartup,omitempty"`
}

func FillInAtCoderConfig(config *AtCoderConfig) {
	if config.BaseURL == nil {
		config.BaseURL = pointer.String("https://atcoder.jp")
	}
	if config.UserAgent == nil {
		config.UserAgent = pointer.String(defaultUserAgent)
	}
	if config.PollInterval == nil {
		interval := new(customfields.Time)
		_ = interval.FromStr("2s")
		config.PollInterval = interval
	}
	if config.MaxSourceSize == nil {
		size := new(customfields.Memory)
		_ = size.FromStr("16m")
		config.MaxSourceSize = size
	}
	if config.LoginOnStartup == nil {
		config.LoginOnStartup = pointer.Bool(false)
	}
}

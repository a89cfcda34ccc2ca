package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/fieldbuf/internal/lint"
)

type fileConfig struct {
	Quiet         bool   `toml:"quiet"`
	FailFast      bool   `toml:"fail_fast"`
	MaxRejections int    `toml:"max_rejections"`
	SlowWarn      string `toml:"slow_warn"`
	SlowWarnMS    int64  `toml:"slow_warn_ms"`
}

func loadRunConfig(path string) (lint.Config, error) {
	cfg := lint.DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return lint.Config{}, fmt.Errorf("load lint config: %w", err)
	}

	if meta.IsDefined("quiet") {
		cfg.Quiet = raw.Quiet
	}

	if meta.IsDefined("fail_fast") {
		cfg.FailFast = raw.FailFast
	}

	if meta.IsDefined("max_rejections") {
		if raw.MaxRejections < 0 {
			return lint.Config{}, fmt.Errorf("max_rejections must not be negative, got %d", raw.MaxRejections)
		}
		cfg.MaxRejections = raw.MaxRejections
	}

	if meta.IsDefined("slow_warn") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.SlowWarn))
		if err != nil {
			return lint.Config{}, fmt.Errorf("parse slow_warn: %w", err)
		}
		cfg.SlowWarn = d
	}

	if meta.IsDefined("slow_warn_ms") {
		cfg.SlowWarn = time.Duration(raw.SlowWarnMS) * time.Millisecond
	}

	return cfg, nil
}

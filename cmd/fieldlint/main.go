package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/danmuck/fieldbuf/internal/config"
	"github.com/danmuck/fieldbuf/internal/lint"
	"github.com/danmuck/fieldbuf/internal/logging"
	"github.com/danmuck/fieldbuf/internal/observability"
)

func main() {
	manifestPath := pflag.String("manifest", "fields.toml", "field manifest to lint")
	configPath := pflag.String("config", "", "optional lint config (toml)")
	quiet := pflag.Bool("quiet", false, "suppress per-field diagnostics")
	failFast := pflag.Bool("fail-fast", false, "stop at the first rejection")
	maxRejections := pflag.Int("max-rejections", 0, "rejections tolerated before a failing exit")
	pflag.Parse()

	logging.ConfigureRuntime()
	observability.InitLogger("fieldlint")
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	runCfg := lint.DefaultConfig()
	if *configPath != "" {
		loaded, err := loadRunConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fieldlint: %v\n", err)
			os.Exit(1)
		}
		runCfg = loaded
	}
	if pflag.CommandLine.Changed("quiet") {
		runCfg.Quiet = *quiet
	}
	if pflag.CommandLine.Changed("fail-fast") {
		runCfg.FailFast = *failFast
	}
	if pflag.CommandLine.Changed("max-rejections") {
		runCfg.MaxRejections = *maxRejections
	}

	manifest, err := config.LoadManifest(*manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fieldlint: %v\n", err)
		os.Exit(1)
	}
	log.Info().Str("path", *manifestPath).Int("fields", len(manifest.Fields)).Msg("loaded field manifest")

	report := lint.Run(manifest.Title, config.LintItems(manifest.Fields), runCfg)
	if report.Failed {
		fmt.Fprintf(os.Stderr, "fieldlint: %d of %d fields rejected\n", len(report.Rejected), report.Checked)
		os.Exit(1)
	}
}

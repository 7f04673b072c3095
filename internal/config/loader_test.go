package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/guessboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars(t)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New(ctx))
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars(t)
			t.Setenv("GUESSBOARD_REVEAL_POLICY", "first")
			t.Setenv("GUESSBOARD_DECAY_BASE", "21")
			t.Setenv("GUESSBOARD_METRICS_FILE", "/tmp/guessboard.prom")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RevealPolicy, convey.ShouldEqual, "first")
				convey.So(cfg.DecayBase, convey.ShouldEqual, 21)
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "/tmp/guessboard.prom")
				convey.So(cfg.FirstPoints, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			clearConfigEnvVars(t)
			path := writeConfigFile(t, `
log_level: debug
reveal_keyword: Solution
first_points: 7
later_points: 3
bonus_points: 2
`)
			t.Setenv("GUESSBOARD_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.RevealKeyword, convey.ShouldEqual, "Solution")
				convey.So(cfg.FirstPoints, convey.ShouldEqual, 7)
				convey.So(cfg.LaterPoints, convey.ShouldEqual, 3)
				convey.So(cfg.BonusPoints, convey.ShouldEqual, 2)
				convey.So(cfg.DecayBase, convey.ShouldEqual, 11)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			clearConfigEnvVars(t)
			path := writeConfigFile(t, `
reveal_policy: first
first_points: 7
`)
			t.Setenv("GUESSBOARD_CONFIG", path)
			t.Setenv("GUESSBOARD_REVEAL_POLICY", "last")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RevealPolicy, convey.ShouldEqual, "last") // env
				convey.So(cfg.FirstPoints, convey.ShouldEqual, 7)       // file
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars(t)
			t.Setenv("GUESSBOARD_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail with a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the merged config is invalid", func() {
			clearConfigEnvVars(t)
			t.Setenv("GUESSBOARD_REVEAL_POLICY", "sometimes")

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail validation", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guessboard.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// clearConfigEnvVars blanks every GUESSBOARD_ variable for the test.
func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GUESSBOARD_CONFIG",
		"GUESSBOARD_LOG_LEVEL",
		"GUESSBOARD_REVEAL_KEYWORD",
		"GUESSBOARD_REVEAL_POLICY",
		"GUESSBOARD_FIRST_POINTS",
		"GUESSBOARD_LATER_POINTS",
		"GUESSBOARD_DECAY_BASE",
		"GUESSBOARD_BONUS_POINTS",
		"GUESSBOARD_METRICS_FILE",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

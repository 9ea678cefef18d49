package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"shramikadmin/internal/app"
)

var configEnv = []string{
	"SHRAMIK_CONFIG",
	"SHRAMIK_HOME",
	"SHRAMIK_API_URL",
	"SHRAMIK_LOG_LEVEL",
	"SHRAMIK_REQUEST_TIMEOUT",
	"SHRAMIK_SESSION_PASSPHRASE",
	"SHRAMIK_METRICS_FILE",
}

func clearConfigEnv(t *testing.T) {
	for _, k := range configEnv {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestLoadConfig(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnv(t)
		home := t.TempDir()

		convey.Convey("When no API URL is configured anywhere", func() {
			_, err := app.LoadConfig(map[string]any{"home": home})

			convey.Convey("Then it should fail with ErrNoAPIURL", func() {
				convey.So(errors.Is(err, app.ErrNoAPIURL), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a local-only command loads without an API URL", func() {
			cfg, err := app.LoadLocalConfig(map[string]any{"home": home})

			convey.Convey("Then it should succeed with an empty API URL", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIURL, convey.ShouldBeEmpty)
				convey.So(cfg.Home, convey.ShouldEqual, home)
			})
		})

		convey.Convey("When only environment variables are set", func() {
			t.Setenv("SHRAMIK_API_URL", "https://api.example.com")
			t.Setenv("SHRAMIK_REQUEST_TIMEOUT", "15s")
			t.Setenv("SHRAMIK_LOG_LEVEL", "debug")

			cfg, err := app.LoadConfig(map[string]any{"home": home})

			convey.Convey("Then env values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIURL, convey.ShouldEqual, "https://api.example.com")
				convey.So(cfg.RequestTimeout, convey.ShouldEqual, 15*time.Second)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Home, convey.ShouldEqual, home)
			})
		})

		convey.Convey("When a config file exists in home", func() {
			yaml := "api_url: https://file.example.com\nlog_level: info\nmetrics_file: /tmp/m.prom\n"
			convey.So(os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0o600), convey.ShouldBeNil)

			convey.Convey("Then its values are loaded", func() {
				cfg, err := app.LoadConfig(map[string]any{"home": home})
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIURL, convey.ShouldEqual, "https://file.example.com")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "/tmp/m.prom")
			})

			convey.Convey("Then env beats the file and flags beat env", func() {
				t.Setenv("SHRAMIK_API_URL", "https://env.example.com")
				t.Setenv("SHRAMIK_LOG_LEVEL", "error")

				cfg, err := app.LoadConfig(map[string]any{
					"home":      home,
					"log_level": "trace",
				})
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIURL, convey.ShouldEqual, "https://env.example.com")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "trace")
			})
		})

		convey.Convey("When SHRAMIK_CONFIG names a missing file", func() {
			t.Setenv("SHRAMIK_CONFIG", filepath.Join(home, "nope.yaml"))
			t.Setenv("SHRAMIK_API_URL", "https://api.example.com")

			_, err := app.LoadConfig(nil)

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the timeout is negative", func() {
			_, err := app.LoadConfig(map[string]any{
				"home":            home,
				"api_url":         "https://api.example.com",
				"request_timeout": "-1s",
			})

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestDefaultConfig(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		cfg := app.DefaultConfig()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
			convey.So(filepath.Base(cfg.Home), convey.ShouldEqual, ".shramikadmin")
			convey.So(cfg.RequestTimeout, convey.ShouldEqual, time.Duration(0))
		})
	})
}

package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	// ServerConfig groups the HTTP boundary settings.
	ServerConfig struct {
		Addr            string
		AllowedOrigins  []string
		ShutdownTimeout time.Duration
	}

	// CanvasConfig groups everything the outbound Canvas client and the
	// aggregation pipeline need.
	CanvasConfig struct {
		BaseURL            string
		PageSize           int           // per_page hint sent to the API
		MaxPages           int           // hard ceiling on pagination link following
		MaxCourseFetches   int           // concurrent per-course assignment fetches
		RequestTimeout     time.Duration // single outbound HTTP call
		AggregationTimeout time.Duration // whole GET /courses aggregation
	}

	RollbarConfig struct {
		Token string
	}

	Config struct {
		Debug    bool
		TestMode bool
		AppName  string
		Env      string
		Build    string

		Server  ServerConfig
		Canvas  CanvasConfig
		Rollbar RollbarConfig
	}
)

var Conf *Config

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "CanvasCalendar")
	v.SetDefault("build", "dev")
	v.SetDefault("server.addr", ":5007")
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("canvas.baseUrl", "https://umd.instructure.com/api/v1")
	v.SetDefault("canvas.pageSize", 100)
	v.SetDefault("canvas.maxPages", 20)
	v.SetDefault("canvas.maxCourseFetches", 5)
	v.SetDefault("canvas.requestTimeout", 15*time.Second)
	v.SetDefault("canvas.aggregationTimeout", 2*time.Minute)
	v.SetDefault("rollbar.token", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(FindProjectRoot(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:    v.GetBool("debug"),
		TestMode: v.GetBool("testMode"),
		AppName:  v.GetString("appName"),
		Env:      env,
		Build:    v.GetString("build"),
		Server: ServerConfig{
			Addr:            v.GetString("server.addr"),
			AllowedOrigins:  v.GetStringSlice("server.allowedOrigins"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
		},
		Canvas: CanvasConfig{
			BaseURL:            strings.TrimRight(v.GetString("canvas.baseUrl"), "/"),
			PageSize:           v.GetInt("canvas.pageSize"),
			MaxPages:           v.GetInt("canvas.maxPages"),
			MaxCourseFetches:   v.GetInt("canvas.maxCourseFetches"),
			RequestTimeout:     v.GetDuration("canvas.requestTimeout"),
			AggregationTimeout: v.GetDuration("canvas.aggregationTimeout"),
		},
		Rollbar: RollbarConfig{
			Token: v.GetString("rollbar.token"),
		},
	}
}

package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
		}

		err = viper.MergeInConfig()
		if err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetGeoapifyApiUrl() string {
	initConfig()
	return viper.GetString("geoapify.api_url")
}

func GetOpenWeatherApiUrl() string {
	initConfig()
	return viper.GetString("openweathermap.api_url")
}

// GetGeocodingAPIKey returns the Geoapify API key. Secrets come from the
// environment (optionally via a .env file), never from config.yaml.
func GetGeocodingAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("GEOCODING_API_KEY")
}

func GetOpenWeatherMapAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("OPENWEATHER_API_KEY")
}

func GetServerPort() string {
	initConfig()
	serverPort := viper.GetString("server.port")
	return serverPort
}

// GetServerTimeout returns the named server timeout (e.g. "read_timeout") as
// a time.Duration. Defaults to 15s if not set or invalid.
func GetServerTimeout(key string) time.Duration {
	initConfig()
	durStr := viper.GetString("server." + key)
	dur, err := time.ParseDuration(durStr)
	if err != nil || dur <= 0 {
		return 15 * time.Second
	}
	return dur
}

// GetHTTPClientTimeout returns the timeout applied to each outbound provider
// call. Defaults to 5s if not set or invalid.
func GetHTTPClientTimeout() time.Duration {
	initConfig()
	durStr := viper.GetString("http_client.timeout")
	if durStr == "" {
		durStr = "5s"
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 5 * time.Second
	}
	return dur
}

// GetTestServerPort returns the port used by the integration test server.
func GetTestServerPort() string {
	initConfig()
	return viper.GetString("test.server_port")
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}

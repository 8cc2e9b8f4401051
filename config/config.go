package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Platform struct {
		Host              string `default:"http://localhost:8000" env:"PLATFORM_HOST"`
		RequestTimeoutSec int    `default:"15" env:"PLATFORM_REQUEST_TIMEOUT_SEC"`
	}
	Auth struct {
		JWTSecret string `default:"" env:"JWT_SECRET"`
	}
	Redis struct {
		Addr     string `default:"127.0.0.1:6379" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
	Cache struct {
		EventsTTLSec int `default:"300" env:"CACHE_EVENTS_TTL_SEC"`
	}
	Notifications struct {
		PollIntervalSec  int `default:"60" env:"NOTIFICATION_POLL_INTERVAL_SEC"`
		SessionWindowSec int `default:"180" env:"NOTIFICATION_SESSION_WINDOW_SEC"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

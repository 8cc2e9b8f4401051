package initializers

import (
	log "github.com/sirupsen/logrus"

	"event-staffing-bff/config"
	"event-staffing-bff/lib/cache"
)

func InitCache() {
	err := cache.Init(config.Conf.Redis.Addr, config.Conf.Redis.Password, config.Conf.Redis.DB)
	if err != nil {
		log.WithError(err).Panic("redis connection failed")
	}
	log.Info("redis connection established")
}

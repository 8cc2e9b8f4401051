package initializers

import (
	"context"
	"time"

	"event-staffing-bff/config"
	"event-staffing-bff/fiberlog"
	authhandler "event-staffing-bff/lib/auth"
	calendarhandler "event-staffing-bff/lib/calendar"
	eventhandler "event-staffing-bff/lib/event"
	xlsexport "event-staffing-bff/lib/export/xls"
	feedhandler "event-staffing-bff/lib/feed"
	gpthandler "event-staffing-bff/lib/gpt"
	notificationhandler "event-staffing-bff/lib/notification"
	approvalhandler "event-staffing-bff/lib/notification/approval"
	pollworker "event-staffing-bff/lib/notification/poll-worker"
	platformclient "event-staffing-bff/lib/platform/client"
	profilehandler "event-staffing-bff/lib/profile"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitCache()

	platformclient.NewProvider(config.Conf.Platform.Host, time.Duration(config.Conf.Platform.RequestTimeoutSec)*time.Second)
	authhandler.NewHandler(config.Conf.Auth.JWTSecret)

	eventsTTL := time.Duration(config.Conf.Cache.EventsTTLSec) * time.Second
	pollInterval := time.Duration(config.Conf.Notifications.PollIntervalSec) * time.Second

	eventhandler.NewHandler(eventsTTL)
	feedhandler.NewHandler(eventsTTL)
	notificationhandler.NewHandler(pollInterval)
	approvalhandler.NewHandler()
	calendarhandler.NewHandler()
	profilehandler.NewHandler()
	xlsexport.NewHandler()
	gpthandler.NewHandler(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID)

	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	pollInterval := time.Duration(config.Conf.Notifications.PollIntervalSec) * time.Second
	sessionWindow := time.Duration(config.Conf.Notifications.SessionWindowSec) * time.Second

	// background refresh of notification caches for recently active users
	pollworker.StartWorker(ctx, pollInterval, sessionWindow)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"event-staffing-bff/config"
	apiv1 "event-staffing-bff/controllers/v1"
	"event-staffing-bff/fiberlog"
	"event-staffing-bff/initializers"
	"event-staffing-bff/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, PUT",
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool { return true },
	}))
	apiv1.InitAuthApiRouters(apiV1)

	//events
	events := fiber.New()
	apiV1.Mount("/events", events)
	events.Use(middleware.AuthorizationRequired())
	events.Use(middleware.WithUserSession())
	apiv1.InitEventApiRouters(events)

	//feed
	feed := fiber.New()
	apiV1.Mount("/feed", feed)
	feed.Use(middleware.AuthorizationRequired())
	feed.Use(middleware.WithUserSession())
	apiv1.InitFeedApiRouters(feed)

	//notifications
	notifications := fiber.New()
	apiV1.Mount("/notifications", notifications)
	notifications.Use(middleware.AuthorizationRequired())
	notifications.Use(middleware.WithUserSession())
	apiv1.InitNotificationApiRouters(notifications)

	//calendar
	calendar := fiber.New()
	apiV1.Mount("/calendar", calendar)
	calendar.Use(middleware.AuthorizationRequired())
	calendar.Use(middleware.WithUserSession())
	apiv1.InitCalendarApiRouters(calendar)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

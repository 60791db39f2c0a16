package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"broilink-backend/config"
	apiv1 "broilink-backend/controllers/v1"
	"broilink-backend/db"
	"broilink-backend/fiberlog"
	"broilink-backend/initializers"
	"broilink-backend/middleware"
	apimodels "broilink-backend/models/api"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	bodyLimit := config.Conf.App.BodyLimitMb * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Conf.App.CorsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	prometheus := fiberprometheus.New("broilink-backend")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.PingDB(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("DB tidak tersedia"))
		}
		return c.JSON(apimodels.NewMessage("ok", nil))
	})

	if _, err := os.Stat(config.Conf.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: config.Conf.App.SwaggerFile,
		}))
	}

	app.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Use(middleware.WithBodyLimit(int64(bodyLimit)))
	if config.Conf.App.ErrNotifyUrl != "" {
		app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyUrl))
	}

	apiv1.InitRouters(app, apiv1.RouterConfig{
		JWTSecret: config.Conf.Auth.JWTSecret,
		DeviceKey: config.Conf.Iot.DeviceKey,
	})

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Menghentikan server...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Kesalahan saat menghentikan server")
		}
		log.Info("Server dihentikan")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server berhasil dihentikan")
}

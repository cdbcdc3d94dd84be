package server

import (
	"backend-drivelog/internal/auth"
	"backend-drivelog/internal/config"
	"backend-drivelog/internal/fuel"
	"backend-drivelog/internal/maintenance"
	"backend-drivelog/internal/recorder"
	"backend-drivelog/internal/stream"
	"backend-drivelog/internal/triplog"
	"backend-drivelog/internal/vehicle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Stream   *stream.Hub
	Recorder *recorder.Recorder
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	hub := stream.NewHub(redisClient)
	vehicles := vehicle.NewService(db)
	trips := triplog.NewService(db)

	s := &Server{
		App:      app,
		Cfg:      cfg,
		DB:       db,
		Redis:    redisClient,
		Stream:   hub,
		Recorder: recorder.New(vehicles, trips, hub, cfg.DistanceUnit),
	}

	registerRoutes(s, vehicles, trips)
	return s
}

func registerRoutes(s *Server, vehicles *vehicle.Service, trips *triplog.Service) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	vehicle.RegisterRoutes(s.App.Group("/vehicles"), vehicles, jwtMiddleware)
	triplog.RegisterRoutes(s.App.Group("/trips"), trips, jwtMiddleware)
	recorder.RegisterRoutes(s.App.Group("/recorder"), s.Recorder, jwtMiddleware)
	fuel.RegisterRoutes(s.App.Group("/fuel"), fuel.NewService(s.DB), jwtMiddleware)
	maintenance.RegisterRoutes(s.App.Group("/maintenance"), maintenance.NewService(s.DB), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

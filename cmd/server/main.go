package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/taskboard/taskboard/internal/config"
	"github.com/taskboard/taskboard/internal/events"
	"github.com/taskboard/taskboard/internal/handler"
	"github.com/taskboard/taskboard/internal/repository"
	"github.com/taskboard/taskboard/internal/router"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/internal/suggest"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}
	cfg := config.Load()

	var st store.Store
	switch cfg.StoreBackend {
	case "file":
		st = store.NewFileStore(cfg.StoreFile)
	case "redis":
		rc := config.NewRedisClient()
		if rc == nil {
			log.Fatal("redis store backend selected but redis is unreachable")
		}
		st = store.NewRedisStore(rc, cfg.RedisKey)
	default:
		log.Fatalf("unknown STORE_BACKEND: %q", cfg.StoreBackend)
	}

	publisher := events.NewPublisher(cfg.AMQPURL)
	users := repository.NewUserRepo(st, cfg.BcryptCost)
	boards := repository.NewBoardRepo(st)
	tasks := repository.NewTaskRepo(st)
	tagger := suggest.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: false,
	}))

	router.RegisterRoutes(e, cfg,
		handler.NewAuthHandler(cfg, users),
		handler.NewBoardHandler(boards, publisher),
		handler.NewTaskHandler(tasks, publisher),
		handler.NewSuggestHandler(tagger),
	)

	addr := ":" + cfg.Port
	log.Infof("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// Package api contains all endpoints available
package api

import (
	"bitwise74/dating-api/db"
	"bitwise74/dating-api/middleware"
	"bitwise74/dating-api/security"
	"bitwise74/dating-api/storage"
	"fmt"
	"strings"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Store  storage.Store
}

func NewRouter() (*API, error) {
	a := &API{}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = database

	makeLogger()

	router := gin.New()
	a.Router = router

	rateLimit := viper.GetInt("security.rate_limit")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     strings.Split(viper.GetString("host.cors"), ","),
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RequestsPerSecond: rateLimit,
			Burst:             rateLimit * 2,
		}),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	a.registerRoutes()

	a.Argon = security.New()

	s, err := storage.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage, %w", err)
	}
	a.Store = s

	return a, nil
}

func (a *API) registerRoutes() {
	r := a.Router
	maxUploadSize := viper.GetInt64("upload.max_size")

	// GET /				-> Liveness check and info banner
	r.GET("/", cacheFor(60), a.Home)

	// POST /register 			-> Creates a new account
	r.POST("/register", middleware.BodySizeLimiter(1<<20), a.UserRegister)

	// POST /login 				-> Checks credentials and returns a session token
	r.POST("/login", middleware.BodySizeLimiter(1<<20), a.UserLogin)

	// GET /profile/:userID			-> Returns the public profile of a user
	r.GET("/profile/:userID", a.ProfileFetch)

	// POST /update-profile/:userID		-> Partially updates profile fields
	r.POST("/update-profile/:userID", middleware.BodySizeLimiter(1<<20), a.ProfileUpdate)

	// POST /upload-profile-pic/:userID	-> Attaches a profile picture
	r.POST("/upload-profile-pic/:userID", middleware.BodySizeLimiter(maxUploadSize+(1<<20)), a.ProfilePicUpload)
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}

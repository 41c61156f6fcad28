package main

import (
	"log"
	"time"

	"github.com/occamablade/yatube/auth"
	"github.com/occamablade/yatube/config"
	"github.com/occamablade/yatube/db"
	"github.com/occamablade/yatube/handlers"
	"github.com/occamablade/yatube/models"
	"github.com/occamablade/yatube/storage"
	"github.com/occamablade/yatube/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/posts/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	limiter := handlers.NewIPRateLimiter(rate.Limit(config.RATE_LIMIT_RPS), config.RATE_LIMIT_BURST)
	router.Use(handlers.RateLimitMiddleware(limiter))

	// Public listings
	router.GET("/posts", handlers.PostList)
	router.GET("/posts/:id", handlers.PostDetail)
	router.GET("/posts/:id/image", handlers.PostImage)
	router.GET("/groups", handlers.GroupList)
	router.GET("/group/:slug/posts", handlers.GroupPostList)
	router.GET("/profile/:username", handlers.Profile)
	// User info handlers
	router.POST("/user/register", handlers.UserRegister)
	router.POST("/user/login", handlers.UserLogin)
	router.POST("/user/logout", handlers.UserLogout)
	// Custom Auth Router
	authRouter := &auth.Router{Base: router}
	authRouter.POST("/posts", handlers.PostCreate)
	authRouter.POST("/posts/:id", handlers.PostEdit)
	authRouter.POST("/posts/:id/delete", handlers.PostDelete)
	authRouter.POST("/posts/:id/comments", handlers.CommentAdd)
	authRouter.POST("/comments/:id/delete", handlers.CommentDelete)
	authRouter.POST("/groups", handlers.GroupCreate)
	authRouter.POST("/profile/:username/follow", handlers.ProfileFollow)
	authRouter.POST("/profile/:username/unfollow", handlers.ProfileUnfollow)
	authRouter.GET("/feed", handlers.FeedList)

	err := router.Run(config.BIND_ADDRESS)
	log.Fatalf("Server stopped: %v", err)
}

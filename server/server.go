package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soundcheck/config"
	"soundcheck/core/auth"
	"soundcheck/db"
	"soundcheck/logger"
	"soundcheck/model"
	"soundcheck/repository"

	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	auth.SetJWTSecret(cfg.JWTSecret)

	// 设置服务器超时
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Connect to the database
	if err := db.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.DB.Close()

	// Initialize database schema
	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// GORM 连接，关注/出席表走 GORM
	if err := db.ConnectGormDB(cfg); err != nil {
		log.Fatalf("Failed to connect GORM database: %v", err)
	}
	defer db.CloseGormDB()

	if err := db.AutoMigrateModels(&model.Follow{}, &model.EventAttendance{}); err != nil {
		log.Fatalf("Failed to migrate models: %v", err)
	}

	// Connect to Redis
	if err := db.ConnectRedis(cfg); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer db.CloseRedis()
	log.Println("Successfully connected to Redis")

	profileRepo := repository.NewMySQLProfileRepository(db.DB)
	eventRepo := repository.NewMySQLEventRepository(db.DB)
	followRepo := repository.NewGormFollowRepository(db.GormDB)
	attendanceRepo := repository.NewGormAttendanceRepository(db.GormDB)

	// 初始化处理器
	apiHandler := NewAPIHandler(profileRepo, eventRepo, followRepo, attendanceRepo, cfg)

	// 使用 gorilla/mux 创建路由器
	router := mux.NewRouter()

	// 添加 CORS 中间件
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, HEAD")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// 用户认证相关的API端点
	router.HandleFunc("/api/auth/register", apiHandler.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", apiHandler.LoginHandler).Methods(http.MethodPost)

	// 用户资料与歌单相关的API端点
	router.HandleFunc("/api/profile", apiHandler.AuthMiddleware(apiHandler.GetMyProfileHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/profile", apiHandler.AuthMiddleware(apiHandler.UpdateProfileHandler)).Methods(http.MethodPut)
	router.HandleFunc("/api/profile/songs", apiHandler.AuthMiddleware(apiHandler.GetMySongsHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/profile/songs", apiHandler.AuthMiddleware(apiHandler.UpdateMySongsHandler)).Methods(http.MethodPut)
	router.HandleFunc("/api/profiles/{id}", apiHandler.AuthMiddleware(apiHandler.GetProfileHandler)).Methods(http.MethodGet)

	// 社交关系相关的API端点
	router.HandleFunc("/api/follows", apiHandler.AuthMiddleware(apiHandler.FollowHandler)).Methods(http.MethodPost)
	router.HandleFunc("/api/follows", apiHandler.AuthMiddleware(apiHandler.ListFollowingHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/follows/{id}", apiHandler.AuthMiddleware(apiHandler.UnfollowHandler)).Methods(http.MethodDelete)

	// 活动相关的API端点
	router.HandleFunc("/api/events", apiHandler.AuthMiddleware(apiHandler.CreateEventHandler)).Methods(http.MethodPost)
	router.HandleFunc("/api/events/feed", apiHandler.AuthMiddleware(apiHandler.FeedHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/events/{id}", apiHandler.AuthMiddleware(apiHandler.GetEventHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/events/{id}/attendance", apiHandler.AuthMiddleware(apiHandler.SetAttendanceHandler)).Methods(http.MethodPost)
	router.HandleFunc("/api/events/{id}/attendance", apiHandler.AuthMiddleware(apiHandler.DeleteAttendanceHandler)).Methods(http.MethodDelete)

	// 艺人匹配与日历视图
	router.HandleFunc("/api/artists/matches", apiHandler.AuthMiddleware(apiHandler.ArtistMatchesHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/calendar", apiHandler.AuthMiddleware(apiHandler.CalendarHandler)).Methods(http.MethodGet)

	server.Handler = router

	// 创建一个通道来接收操作系统信号
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 在goroutine中启动服务器
	go func() {
		log.Printf("Server starting on %s...", cfg.ServerAddr)
		log.Println("Register via POST to /api/auth/register")
		log.Println("Browse events via GET /api/events/feed")
		log.Println("Artist matches via GET /api/artists/matches")
		log.Println("Calendar view via GET /api/calendar")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// 等待中断信号
	<-stop
	log.Println("Shutting down server...")

	// 创建一个5秒超时的上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"soundcheck/config"
	"soundcheck/core/ingest"
	"soundcheck/core/serp"
	"soundcheck/db"
	"soundcheck/logger"
	"soundcheck/repository"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var (
	ingestSchedule string
	ingestArtistID string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "抓取艺人即将到来的演出",
	Long:  `调用外部活动搜索，为每个艺人账号抓取即将到来的演出并入库。默认执行一次后退出，--schedule 使用cron表达式定时执行。`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		logger.InitLogger(logger.Config{
			Level:      logger.LogLevel(cfg.LogLevel),
			OutputPath: cfg.LogPath,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})

		if cfg.SerpAPIKey == "" {
			log.Fatal("SERP_API_KEY is required for ingestion")
		}

		if err := db.ConnectDB(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.DB.Close()

		if err := db.InitDB(); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}

		client := serp.NewClient(cfg.SerpBaseURL, cfg.SerpAPIKey)
		profileRepo := repository.NewMySQLProfileRepository(db.DB)
		eventRepo := repository.NewMySQLEventRepository(db.DB)
		ingestor := ingest.NewIngestor(client, profileRepo, eventRepo, cfg.IngestLocation, cfg.IngestUserID)

		run := func(ctx context.Context) {
			if ingestArtistID != "" {
				artist, err := profileRepo.GetProfileByID(ingestArtistID)
				if err != nil {
					log.Printf("查询艺人失败: %v", err)
					return
				}
				if artist == nil {
					log.Printf("艺人不存在: %s", ingestArtistID)
					return
				}
				if _, err := ingestor.IngestArtistEvents(ctx, *artist); err != nil {
					log.Printf("抓取失败: %v", err)
				}
				return
			}

			if err := ingestor.IngestAllArtists(ctx); err != nil {
				log.Printf("批量抓取失败: %v", err)
			}
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if ingestSchedule == "" {
			run(ctx)
			return
		}

		c := cron.New()
		if _, err := c.AddFunc(ingestSchedule, func() { run(ctx) }); err != nil {
			log.Fatalf("无效的cron表达式 %q: %v", ingestSchedule, err)
		}
		c.Start()
		log.Printf("抓取任务已按计划启动: %s", ingestSchedule)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		cancel()
		<-c.Stop().Done()
		log.Println("抓取任务已停止")
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestSchedule, "schedule", "", "cron表达式，设置后定时执行")
	ingestCmd.Flags().StringVar(&ingestArtistID, "artist", "", "只抓取指定艺人（profile id）")
	rootCmd.AddCommand(ingestCmd)
}

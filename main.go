package main

import (
	"log"

	"github.com/seerwright/daggle/config"
	"github.com/seerwright/daggle/controllers"
	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/routes"
	"github.com/seerwright/daggle/services"
	"github.com/seerwright/daggle/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	utils.InitJWT(cfg.JWTSecret, cfg.TokenExpiry)

	if err := database.Connect(cfg.DatabaseDSN); err != nil {
		utils.Log.Fatalw("failed to connect to database", "err", err)
	}
	if err := database.MigrateTables(); err != nil {
		utils.Log.Fatalw("failed to migrate database", "err", err)
	}
	if err := database.InitRedis(cfg.RedisAddr, cfg.RedisDB); err != nil {
		utils.Log.Fatalw("failed to connect to redis", "err", err)
	}

	if err := services.InitStorage(cfg.UploadDir); err != nil {
		utils.Log.Fatalw("failed to init upload storage", "err", err)
	}
	if err := services.SeedRuleTemplates(); err != nil {
		utils.Log.Fatalw("failed to seed rule templates", "err", err)
	}
	services.SetLeaderboardCacheTTL(cfg.LeaderboardCacheTTL)
	controllers.SetUploadLimits(cfg.MaxThumbnailSize, cfg.MaxDataFileSize)

	r := routes.SetupRouter()

	utils.Log.Infow("starting server", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		utils.Log.Fatalw("server exited", "err", err)
	}
}

package main

import (
	"github.com/levelupirl/levelup/config"
	"github.com/levelupirl/levelup/models"
	"github.com/levelupirl/levelup/routes"
	"github.com/levelupirl/levelup/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{})
	config.SeedAdminAccount(db)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}

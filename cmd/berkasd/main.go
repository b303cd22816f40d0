package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dimframework/berkas"
)

func main() {
	logger := berkas.NewLogger(slog.LevelInfo)

	config, err := berkas.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := berkas.NewDatabase(config.Database)
	if err != nil {
		logger.Error("failed to connect database", "driver", config.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := berkas.RunMigrations(db, berkas.GetMigrations()); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if config.SeedDemo {
		userStore := berkas.NewDatabaseUserStore(db)
		fileStore := berkas.NewDatabaseFileStore(db)
		if err := berkas.SeedDemoData(ctx, userStore, fileStore, logger); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	router, err := berkas.NewAppRouter(config, db, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	if err := berkas.StartServer(ctx, config.Server, router); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

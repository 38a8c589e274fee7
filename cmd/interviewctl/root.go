package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"alfredoptarigan/interview-generator/internal/config"
	applog "alfredoptarigan/interview-generator/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "interviewctl",
	Short:         "Administer the interview generator",
	Long:          "interviewctl grants credits, imports job postings and rebuilds the question history index.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(grantCreditsCmd)
	rootCmd.AddCommand(importJobCmd)
	rootCmd.AddCommand(reindexCmd)
}

type env struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.Logger
}

// bootstrap loads config, the logger and the database the same way the API does.
func bootstrap() (*env, error) {
	cfg := config.Load()

	zlog, err := applog.New(cfg.Server.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := config.InitDatabase(cfg, zlog)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, db: db, log: zlog}, nil
}

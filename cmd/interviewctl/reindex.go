package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/repositories"
	"alfredoptarigan/interview-generator/internal/services"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Index every session missing from the question history",
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, _ := cmd.Flags().GetInt("batch")

		e, err := bootstrap()
		if err != nil {
			return err
		}
		if e.cfg.Qdrant.URL == "" {
			return fmt.Errorf("QDRANT_URL is not set")
		}

		ctx := cmd.Context()
		embedder, err := services.NewGeminiService(ctx, e.cfg.LLM.GeminiAPIKey, "")
		if err != nil {
			return err
		}
		index, err := services.NewQdrantIndex(e.cfg.Qdrant.URL, e.cfg.Qdrant.APIKey, e.cfg.Qdrant.Collection, e.log)
		if err != nil {
			return err
		}
		if err := index.InitCollection(ctx); err != nil {
			return err
		}

		sessionRepo := repositories.NewSessionRepository(e.db)
		history := services.NewQuestionHistoryService(sessionRepo, repositories.NewQuestionRepository(e.db), embedder, index, e.log)

		indexed := 0
		failed := make(map[string]bool)
		for {
			sessions, err := sessionRepo.FindUnindexed(ctx, batch)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				break
			}

			progressed := false
			for _, s := range sessions {
				if err := history.IndexSession(ctx, s.ID); err != nil {
					e.log.Error("❌ Failed to index session", zap.String("session_id", s.ID.String()), zap.Error(err))
					failed[s.ID.String()] = true
					continue
				}
				indexed++
				progressed = true
			}
			// A batch where nothing succeeds would be returned again forever.
			if !progressed {
				break
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "🎉 Indexed %d sessions (%d failed)\n", indexed, len(failed))
		return nil
	},
}

func init() {
	reindexCmd.Flags().Int("batch", 50, "Sessions fetched per round")
}

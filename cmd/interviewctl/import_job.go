package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"alfredoptarigan/interview-generator/internal/repositories"
	"alfredoptarigan/interview-generator/internal/services"
)

var importJobCmd = &cobra.Command{
	Use:   "import-job",
	Short: "Create a job profile from a PDF job posting",
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerFlag, _ := cmd.Flags().GetString("owner")
		file, _ := cmd.Flags().GetString("file")
		title, _ := cmd.Flags().GetString("title")
		company, _ := cmd.Flags().GetString("company")

		ownerID, err := uuid.Parse(ownerFlag)
		if err != nil {
			return fmt.Errorf("invalid --owner: %w", err)
		}

		e, err := bootstrap()
		if err != nil {
			return err
		}

		jobs := services.NewJobService(repositories.NewJobRepository(e.db), services.NewPDFExtractor(), e.log)
		job, err := jobs.ImportJob(cmd.Context(), ownerID, title, company, file, filepath.Base(file))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Imported job %s (%s)\n", job.ID, job.Title)
		fmt.Fprintf(out, "   skills: %d, responsibilities: %d, requirements: %d\n",
			len(job.Skills), len(job.Responsibilities), len(job.Requirements))
		return nil
	},
}

func init() {
	importJobCmd.Flags().String("owner", "", "Owner ID (UUID)")
	importJobCmd.Flags().String("file", "", "Path to the job posting PDF")
	importJobCmd.Flags().String("title", "", "Job title")
	importJobCmd.Flags().String("company", "", "Company name")
	_ = importJobCmd.MarkFlagRequired("owner")
	_ = importJobCmd.MarkFlagRequired("file")
	_ = importJobCmd.MarkFlagRequired("title")
}

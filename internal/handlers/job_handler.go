package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/models"
	"alfredoptarigan/interview-generator/internal/services"
)

type JobHandler struct {
	jobs           services.JobService
	storageService services.StorageService
	maxFileSize    int64
	log            *zap.Logger
}

func NewJobHandler(
	jobs services.JobService,
	storageService services.StorageService,
	maxFileSize int64,
	log *zap.Logger,
) *JobHandler {
	return &JobHandler{
		jobs:           jobs,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		log:            log,
	}
}

// HandleCreate handles POST /jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeBadRequest, "invalid request payload")
	}

	job, err := h.jobs.CreateJob(c.UserContext(), ownerFrom(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleImport handles POST /jobs/import with a multipart "file" PDF
// plus "title" and optional "company" fields.
func (h *JobHandler) HandleImport(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeBadRequest, "a PDF must be uploaded in the 'file' field")
	}
	if file.Size > h.maxFileSize {
		return errorJSON(c, fiber.StatusBadRequest, CodeBadRequest,
			fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize))
	}

	filename, filePath, err := h.storageService.SaveUpload(file)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeBadRequest, err.Error())
	}

	job, err := h.jobs.ImportJob(c.UserContext(), ownerFrom(c), c.FormValue("title"), c.FormValue("company"), filePath, file.Filename)
	if err != nil {
		if delErr := h.storageService.DeleteFile(filename); delErr != nil {
			h.log.Warn("⚠️ Failed to clean up upload", zap.String("file", filename), zap.Error(delErr))
		}
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

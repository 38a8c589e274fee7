package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/interview-generator/internal/models"
	"alfredoptarigan/interview-generator/internal/repositories"
)

type GeneratorService interface {
	GenerateInterview(ctx context.Context, ownerID uuid.UUID, req *models.GenerateInterviewRequest) (*models.GenerateInterviewResponse, error)
}

// IndexQueue accepts sessions for background indexing.
type IndexQueue interface {
	EnqueueJob(sessionID uuid.UUID)
}

type GeneratorOptions struct {
	Temperature     float32
	MaxOutputTokens int
	MaxParallel     int
	HistoryLookback int
}

type generatorService struct {
	creditRepo    repositories.CreditRepository
	jobRepo       repositories.JobRepository
	sessionRepo   repositories.SessionRepository
	promptBuilder *PromptBuilder
	parser        *ResponseParser
	textGen       TextGenerator
	history       QuestionHistory
	queue         IndexQueue
	opts          GeneratorOptions
	log           *zap.Logger
}

// NewGeneratorService wires the orchestrator. history and queue may be nil.
func NewGeneratorService(
	creditRepo repositories.CreditRepository,
	jobRepo repositories.JobRepository,
	sessionRepo repositories.SessionRepository,
	promptBuilder *PromptBuilder,
	textGen TextGenerator,
	history QuestionHistory,
	queue IndexQueue,
	opts GeneratorOptions,
	log *zap.Logger,
) GeneratorService {
	if opts.MaxParallel < 1 {
		opts.MaxParallel = 1
	}
	return &generatorService{
		creditRepo:    creditRepo,
		jobRepo:       jobRepo,
		sessionRepo:   sessionRepo,
		promptBuilder: promptBuilder,
		parser:        NewResponseParser(),
		textGen:       textGen,
		history:       history,
		queue:         queue,
		opts:          opts,
		log:           log,
	}
}

type categoryOutcome struct {
	category  models.Category
	questions []models.Question
	failure   string
}

// GenerateInterview implements GeneratorService.
func (g *generatorService) GenerateInterview(ctx context.Context, ownerID uuid.UUID, req *models.GenerateInterviewRequest) (*models.GenerateInterviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, newError(KindValidation, "invalid interview request", err)
	}

	balance, err := g.creditRepo.GetBalance(ctx, ownerID)
	if err != nil {
		return nil, newError(KindInternal, "failed to read credit balance", err)
	}
	if balance.Remaining < req.QuestionCount {
		return nil, newError(KindForbidden,
			fmt.Sprintf("insufficient credits: %d remaining, %d required", balance.Remaining, req.QuestionCount), nil)
	}

	job, err := g.jobRepo.FindByIDForOwner(ctx, req.ParsedJobID(), ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(KindNotFound, "job profile not found", err)
		}
		return nil, newError(KindInternal, "failed to load job profile", err)
	}

	// Final title is resolved when the session is saved.
	session := &models.InterviewSession{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		JobID:         job.ID,
		Title:         strings.TrimSpace(req.Title),
		Status:        models.SessionStatusCreated,
		QuestionCount: req.QuestionCount,
	}

	dist := DistributeQuestions(req.QuestionCount, req.Categories)
	previous := g.previousQuestions(ctx, ownerID, job)

	g.log.Info("🔄 Generating interview",
		zap.String("session_id", session.ID.String()),
		zap.String("title", session.Title),
		zap.Int("question_count", req.QuestionCount),
	)

	order := uniqueCategories(req.Categories)
	outcomes := make([]categoryOutcome, len(order))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.MaxParallel)
	for i, category := range order {
		outcomes[i].category = category
		if dist[category] == 0 {
			continue
		}
		eg.Go(func() error {
			questions, err := g.generateCategory(egCtx, job, category, dist[category], previous)
			if err != nil {
				g.log.Warn("⚠️ Category generation failed",
					zap.String("session_id", session.ID.String()),
					zap.String("category", string(category)),
					zap.Error(err),
				)
				outcomes[i].failure = err.Error()
				return nil
			}
			outcomes[i].questions = questions
			return nil
		})
	}
	// Category failures are recorded in outcomes, never returned.
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, newError(KindInternal, "interview generation cancelled", err)
	}

	resp := &models.GenerateInterviewResponse{
		Session:   session,
		Questions: []models.Question{},
		Succeeded: []models.Category{},
		Failed:    []models.CategoryFailure{},
	}
	for _, out := range outcomes {
		switch {
		case out.failure != "":
			resp.Failed = append(resp.Failed, models.CategoryFailure{Category: out.category, Reason: out.failure})
		case len(out.questions) > 0:
			resp.Succeeded = append(resp.Succeeded, out.category)
			resp.Questions = append(resp.Questions, out.questions...)
		}
	}

	if len(resp.Questions) == 0 {
		g.log.Error("❌ No questions generated", zap.String("session_id", session.ID.String()))
		return nil, newError(KindInternal, "failed to generate any interview questions", nil)
	}

	for i := range resp.Questions {
		resp.Questions[i].Order = i + 1
	}

	if err := g.sessionRepo.SaveGeneration(ctx, session, resp.Questions, req.QuestionCount, ResolveTitle); err != nil {
		if errors.Is(err, repositories.ErrInsufficientCredits) {
			return nil, newError(KindForbidden, "insufficient credits", err)
		}
		return nil, newError(KindInternal, "failed to save interview", err)
	}

	if g.queue != nil {
		g.queue.EnqueueJob(session.ID)
	}

	g.log.Info("✅ Interview generated",
		zap.String("session_id", session.ID.String()),
		zap.String("title", session.Title),
		zap.Int("questions", len(resp.Questions)),
		zap.Int("failed_categories", len(resp.Failed)),
	)

	return resp, nil
}

func (g *generatorService) generateCategory(
	ctx context.Context,
	job *models.JobProfile,
	category models.Category,
	count int,
	previous []string,
) ([]models.Question, error) {
	prompt := g.promptBuilder.BuildQuestionPrompt(job, category, count, previous)

	raw, err := g.textGen.GenerateText(ctx, prompt, GenerationOptions{
		Temperature:     g.opts.Temperature,
		MaxOutputTokens: g.opts.MaxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("text generation failed: %w", err)
	}

	result := g.parser.Parse(raw)
	for _, rejected := range result.Rejected {
		g.log.Debug("Rejected generated item",
			zap.String("category", string(category)),
			zap.String("reason", rejected.String()),
		)
	}
	if result.Placeholder {
		return nil, errors.New("response could not be parsed")
	}

	parsed := result.Questions
	if len(parsed) > count {
		parsed = parsed[:count]
	}

	questions := make([]models.Question, 0, len(parsed))
	for _, p := range parsed {
		difficulty := p.Difficulty
		if difficulty == 0 {
			difficulty = EstimateDifficulty(p.Question, p.AnswerFramework)
		}
		questions = append(questions, models.Question{
			ID:              uuid.New(),
			Question:        p.Question,
			Explanation:     p.Explanation,
			AnswerFramework: p.AnswerFramework,
			Category:        category,
			Difficulty:      difficulty,
		})
	}

	return questions, nil
}

func (g *generatorService) previousQuestions(ctx context.Context, ownerID uuid.UUID, job *models.JobProfile) []string {
	if g.history == nil || g.opts.HistoryLookback <= 0 {
		return nil
	}

	previous, err := g.history.PreviousQuestions(ctx, ownerID, job.ID, g.promptBuilder.BuildHistoryQuery(job), g.opts.HistoryLookback)
	if err != nil {
		g.log.Warn("⚠️ Question history lookup failed", zap.String("job_id", job.ID.String()), zap.Error(err))
		return nil
	}
	return previous
}

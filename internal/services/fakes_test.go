package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/interview-generator/internal/models"
	"alfredoptarigan/interview-generator/internal/repositories"
)

type fakeCreditRepo struct {
	mu       sync.Mutex
	balances map[uuid.UUID]*models.CreditBalance
	err      error
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{balances: make(map[uuid.UUID]*models.CreditBalance)}
}

func (f *fakeCreditRepo) set(ownerID uuid.UUID, remaining int) {
	f.balances[ownerID] = &models.CreditBalance{OwnerID: ownerID, Remaining: remaining}
}

func (f *fakeCreditRepo) GetBalance(_ context.Context, ownerID uuid.UUID) (*models.CreditBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if b, ok := f.balances[ownerID]; ok {
		copied := *b
		return &copied, nil
	}
	return &models.CreditBalance{OwnerID: ownerID}, nil
}

func (f *fakeCreditRepo) Grant(_ context.Context, ownerID uuid.UUID, amount int) (*models.CreditBalance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.balances[ownerID]
	if !ok {
		b = &models.CreditBalance{OwnerID: ownerID}
		f.balances[ownerID] = b
	}
	b.Remaining += amount
	copied := *b
	return &copied, nil
}

func (f *fakeCreditRepo) Deduct(_ context.Context, ownerID uuid.UUID, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.balances[ownerID]
	if !ok || b.Remaining < amount {
		return repositories.ErrInsufficientCredits
	}
	b.Remaining -= amount
	b.TotalUsed += amount
	return nil
}

type fakeJobRepo struct {
	jobs    map[uuid.UUID]*models.JobProfile
	created []*models.JobProfile
	err     error
}

func newFakeJobRepo(jobs ...*models.JobProfile) *fakeJobRepo {
	f := &fakeJobRepo{jobs: make(map[uuid.UUID]*models.JobProfile)}
	for _, j := range jobs {
		f.jobs[j.ID] = j
	}
	return f
}

func (f *fakeJobRepo) Create(_ context.Context, job *models.JobProfile) error {
	if f.err != nil {
		return f.err
	}
	f.jobs[job.ID] = job
	f.created = append(f.created, job)
	return nil
}

func (f *fakeJobRepo) FindByIDForOwner(_ context.Context, id, ownerID uuid.UUID) (*models.JobProfile, error) {
	j, ok := f.jobs[id]
	if !ok || j.OwnerID != ownerID {
		return nil, fmt.Errorf("job profile %s: %w", id, repositories.ErrNotFound)
	}
	return j, nil
}

// fakeSessionRepo charges credits through the shared credit fake so
// SaveGeneration behaves like the transactional repository.
type fakeSessionRepo struct {
	mu        sync.Mutex
	credits   *fakeCreditRepo
	sessions  map[uuid.UUID]*models.InterviewSession
	questions map[uuid.UUID][]models.Question
	titles    []string
	saves     int
	charged   int
	saveErr   error
	indexed   []uuid.UUID
}

func newFakeSessionRepo(credits *fakeCreditRepo) *fakeSessionRepo {
	return &fakeSessionRepo{
		credits:   credits,
		sessions:  make(map[uuid.UUID]*models.InterviewSession),
		questions: make(map[uuid.UUID][]models.Question),
	}
}

func (f *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*models.InterviewSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, fmt.Errorf("interview session %s: %w", id, repositories.ErrNotFound)
	}
	return s, nil
}

func (f *fakeSessionRepo) titlesWithPrefix(prefix string) []string {
	var out []string
	for _, t := range f.titles {
		if strings.HasPrefix(t, prefix) {
			out = append(out, t)
		}
	}
	return out
}

func (f *fakeSessionRepo) FindUnindexed(_ context.Context, limit int) ([]models.InterviewSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.InterviewSession
	for _, s := range f.sessions {
		if s.IndexedAt == nil && len(out) < limit {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) MarkIndexed(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexed = append(f.indexed, id)
	return nil
}

func (f *fakeSessionRepo) SaveGeneration(ctx context.Context, session *models.InterviewSession, questions []models.Question, charge int, resolveTitle repositories.TitleFunc) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if resolveTitle != nil {
		session.Title = resolveTitle(session.Title, f.titlesWithPrefix(session.Title))
	}
	if err := f.credits.Deduct(ctx, session.OwnerID, charge); err != nil {
		return err
	}
	for i := range questions {
		questions[i].SessionID = session.ID
	}
	f.sessions[session.ID] = session
	f.questions[session.ID] = questions
	f.titles = append(f.titles, session.Title)
	f.saves++
	f.charged += charge
	return nil
}

type fakeQuestionRepo struct {
	questions map[uuid.UUID][]models.Question
}

func (f *fakeQuestionRepo) FindBySession(_ context.Context, sessionID uuid.UUID) ([]models.Question, error) {
	return f.questions[sessionID], nil
}

type fakeFeedbackRepo struct {
	metrics   []models.MetricFeedback
	questions []models.QuestionFeedbackView
	err       error
}

func (f *fakeFeedbackRepo) FindMetrics(context.Context, uuid.UUID) ([]models.MetricFeedback, error) {
	return f.metrics, f.err
}

func (f *fakeFeedbackRepo) FindQuestionFeedback(context.Context, uuid.UUID) ([]models.QuestionFeedbackView, error) {
	return f.questions, f.err
}

var promptRequest = regexp.MustCompile(`Write exactly (\d+) ([a-z-]+) interview`)

// fakeTextGen answers prompts per category label ("technical", "role-specific", ...).
type fakeTextGen struct {
	mu        sync.Mutex
	responses map[string]string
	failures  map[string]error
	prompts   []string
	opts      []GenerationOptions
}

func newFakeTextGen() *fakeTextGen {
	return &fakeTextGen{
		responses: make(map[string]string),
		failures:  make(map[string]error),
	}
}

func (f *fakeTextGen) GenerateText(_ context.Context, prompt string, opts GenerationOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)

	m := promptRequest.FindStringSubmatch(prompt)
	if m == nil {
		return "", fmt.Errorf("unexpected prompt")
	}
	if err, ok := f.failures[m[2]]; ok {
		return "", err
	}
	if resp, ok := f.responses[m[2]]; ok {
		return resp, nil
	}
	return "", fmt.Errorf("no response for %s", m[2])
}

func (f *fakeTextGen) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// jsonQuestions renders n well-formed questions with the given prefix.
func jsonQuestions(prefix string, n int) string {
	items := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, fmt.Sprintf(
			`{"question": "%s question %d?", "explanation": "why %d", "answerFramework": "how %d"}`,
			prefix, i, i, i,
		))
	}
	return "[" + strings.Join(items, ",") + "]"
}

type fakeQueue struct {
	mu       sync.Mutex
	enqueued []uuid.UUID
}

func (f *fakeQueue) EnqueueJob(sessionID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, sessionID)
}

type fakeHistory struct {
	previous []string
	err      error
	queries  []string
}

func (f *fakeHistory) PreviousQuestions(_ context.Context, _, _ uuid.UUID, query string, _ int) ([]string, error) {
	f.queries = append(f.queries, query)
	return f.previous, f.err
}

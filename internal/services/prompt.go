package services

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"alfredoptarigan/interview-generator/internal/models"
)

//go:embed prompts/categories.yaml
var categoryCatalogue []byte

// CategoryGuide tells the model what a category is about.
type CategoryGuide struct {
	Focus    string `yaml:"focus"`
	Guidance string `yaml:"guidance"`
}

type PromptBuilder struct {
	guides map[models.Category]CategoryGuide
}

// NewPromptBuilder loads the embedded category catalogue.
func NewPromptBuilder() (*PromptBuilder, error) {
	guides := make(map[models.Category]CategoryGuide)
	if err := yaml.Unmarshal(categoryCatalogue, &guides); err != nil {
		return nil, fmt.Errorf("failed to parse category catalogue: %w", err)
	}
	for _, c := range models.AllCategories {
		if _, ok := guides[c]; !ok {
			return nil, fmt.Errorf("category catalogue is missing %q", c)
		}
	}
	return &PromptBuilder{guides: guides}, nil
}

// BuildQuestionPrompt creates the generation prompt for one category.
// previous lists questions already asked for this job that should not be repeated.
func (pb *PromptBuilder) BuildQuestionPrompt(job *models.JobProfile, category models.Category, count int, previous []string) string {
	guide := pb.guides[category]

	company := job.CompanyName()
	if company == "" {
		company = "Not specified"
	}

	var avoid string
	if len(previous) > 0 {
		avoid = "\nQUESTIONS ALREADY ASKED (do not repeat or paraphrase):\n" + bulletList(previous) + "\n"
	}

	return fmt.Sprintf(`You are an experienced interviewer preparing a candidate for a %s position.

JOB TITLE: %s
COMPANY: %s

JOB DESCRIPTION:
%s

KEY SKILLS:
%s

RESPONSIBILITIES:
%s

REQUIREMENTS:
%s
%s
Write exactly %d %s interview question(s) focused on %s.
%s

Return ONLY a JSON array, no prose, in the following format:
[
  {
    "question": "<the interview question>",
    "explanation": "<why an interviewer asks this and what it reveals>",
    "answerFramework": "<how a strong answer is structured, with key points to cover>",
    "difficulty": <integer 1-5>
  }
]`,
		job.Title,
		job.Title,
		company,
		strings.TrimSpace(job.Description),
		bulletList(job.Skills),
		bulletList(job.Responsibilities),
		bulletList(job.Requirements),
		avoid,
		count,
		strings.ToLower(category.Label()),
		guide.Focus,
		guide.Guidance,
	)
}

// BuildHistoryQuery creates the text used to look up previously asked questions.
func (pb *PromptBuilder) BuildHistoryQuery(job *models.JobProfile) string {
	return fmt.Sprintf("Interview questions for %s. %s", job.Title, strings.Join(job.Skills, ", "))
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- None listed"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+strings.TrimSpace(item))
	}
	return strings.Join(lines, "\n")
}

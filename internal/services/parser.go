package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	defaultExplanation     = "No explanation provided"
	defaultAnswerFramework = "No answer framework provided"
	placeholderQuestion    = "Failed to parse generated questions"
	placeholderExplanation = "The text-generation response could not be interpreted."
)

// answerFrameworkKeys are checked in order; the first key present wins.
var answerFrameworkKeys = []string{
	"answerFramework", "answer_framework", "sampleAnswer", "sample_answer", "answer", "framework",
}

// ParsedQuestion is one question recovered from a text-generation response.
// Difficulty is zero when the response did not supply a usable value.
type ParsedQuestion struct {
	Question        string
	Explanation     string
	AnswerFramework string
	Difficulty      int
}

// ItemError describes a candidate record that failed validation.
type ItemError struct {
	Index  int
	Reason string
}

func (e ItemError) String() string {
	return fmt.Sprintf("item %d: %s", e.Index, e.Reason)
}

type ParseResult struct {
	Strategy    string
	Questions   []ParsedQuestion
	Rejected    []ItemError
	Placeholder bool
}

// ParseStrategy interprets raw response text. ok is false when the strategy
// does not apply and the next one should be tried.
type ParseStrategy interface {
	Name() string
	Parse(raw string) (result ParseResult, ok bool)
}

// ResponseParser runs its strategies in order and returns the first success.
type ResponseParser struct {
	strategies []ParseStrategy
}

func NewResponseParser() *ResponseParser {
	return NewResponseParserWith(JSONArrayStrategy{}, LineScanStrategy{}, PlaceholderStrategy{})
}

func NewResponseParserWith(strategies ...ParseStrategy) *ResponseParser {
	return &ResponseParser{strategies: strategies}
}

// Parse never returns an empty result: when nothing applies the placeholder is used.
func (p *ResponseParser) Parse(raw string) ParseResult {
	var rejected []ItemError
	for _, s := range p.strategies {
		result, ok := s.Parse(raw)
		if ok {
			result.Rejected = append(rejected, result.Rejected...)
			return result
		}
		rejected = append(rejected, result.Rejected...)
	}

	result, _ := PlaceholderStrategy{}.Parse(raw)
	result.Rejected = rejected
	return result
}

var (
	openingFence = regexp.MustCompile("^```[A-Za-z0-9_+-]*[ \t]*\n?")
	closingFence = regexp.MustCompile("\n?```$")
)

// StripCodeFence removes a surrounding markdown code fence, with or without a language tag.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = openingFence.ReplaceAllString(text, "")
	text = closingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// JSONArrayStrategy decodes a JSON array of question objects and validates
// every element on its own.
type JSONArrayStrategy struct{}

func (JSONArrayStrategy) Name() string { return "json" }

func (JSONArrayStrategy) Parse(raw string) (ParseResult, bool) {
	result := ParseResult{Strategy: "json"}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &items); err != nil {
		return result, false
	}

	for i, item := range items {
		q, err := validateItem(item)
		if err != nil {
			result.Rejected = append(result.Rejected, ItemError{Index: i, Reason: err.Error()})
			continue
		}
		result.Questions = append(result.Questions, q)
	}

	return result, len(result.Questions) > 0
}

func validateItem(item json.RawMessage) (ParsedQuestion, error) {
	var fields map[string]any
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return ParsedQuestion{}, fmt.Errorf("not an object")
	}

	question, ok := fields["question"].(string)
	if !ok || strings.TrimSpace(question) == "" {
		return ParsedQuestion{}, fmt.Errorf("question is missing or not a string")
	}

	explanation, err := optionalString(fields, "explanation", defaultExplanation)
	if err != nil {
		return ParsedQuestion{}, err
	}

	framework := defaultAnswerFramework
	for _, key := range answerFrameworkKeys {
		if _, present := fields[key]; !present {
			continue
		}
		framework, err = optionalString(fields, key, defaultAnswerFramework)
		if err != nil {
			return ParsedQuestion{}, err
		}
		break
	}

	return ParsedQuestion{
		Question:        strings.TrimSpace(question),
		Explanation:     explanation,
		AnswerFramework: framework,
		Difficulty:      difficultyField(fields["difficulty"]),
	}, nil
}

func optionalString(fields map[string]any, key, fallback string) (string, error) {
	v, present := fields[key]
	if !present || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string", key)
	}
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return strings.TrimSpace(s), nil
}

func difficultyField(v any) int {
	n, ok := v.(float64)
	if !ok || n != float64(int(n)) || n < 1 || n > 5 {
		return 0
	}
	return int(n)
}

var (
	questionHeader    = regexp.MustCompile(`(?i)^question\s*\d+\s*:\s*(.*)$`)
	explanationHeader = regexp.MustCompile(`(?i)^explanation\s*:\s*(.*)$`)
	frameworkHeader   = regexp.MustCompile(`(?i)^answer\s+framework\s*:\s*(.*)$`)
)

// LineScanStrategy reads "Question N:", "Explanation:" and "Answer Framework:"
// headers line by line. Unlabelled lines continue the field above them.
type LineScanStrategy struct{}

func (LineScanStrategy) Name() string { return "lines" }

func (LineScanStrategy) Parse(raw string) (ParseResult, bool) {
	result := ParseResult{Strategy: "lines"}

	var current *ParsedQuestion
	var field *string

	flush := func() {
		if current == nil {
			return
		}
		if strings.TrimSpace(current.Question) == "" {
			result.Rejected = append(result.Rejected, ItemError{
				Index:  len(result.Questions) + len(result.Rejected),
				Reason: "question text is empty",
			})
		} else {
			if current.Explanation == "" {
				current.Explanation = defaultExplanation
			}
			if current.AnswerFramework == "" {
				current.AnswerFramework = defaultAnswerFramework
			}
			result.Questions = append(result.Questions, *current)
		}
		current, field = nil, nil
	}

	for _, line := range strings.Split(raw, "\n") {
		line = cleanLine(line)
		if line == "" {
			continue
		}

		switch {
		case questionHeader.MatchString(line):
			flush()
			current = &ParsedQuestion{}
			current.Question = questionHeader.FindStringSubmatch(line)[1]
			field = &current.Question
		case current != nil && explanationHeader.MatchString(line):
			current.Explanation = explanationHeader.FindStringSubmatch(line)[1]
			field = &current.Explanation
		case current != nil && frameworkHeader.MatchString(line):
			current.AnswerFramework = frameworkHeader.FindStringSubmatch(line)[1]
			field = &current.AnswerFramework
		case field != nil:
			if *field == "" {
				*field = line
			} else {
				*field += " " + line
			}
		}
	}
	flush()

	return result, len(result.Questions) > 0
}

// cleanLine drops markdown emphasis and list markers around a line.
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "#*->• ")
	line = strings.ReplaceAll(line, "**", "")
	return strings.TrimSpace(line)
}

// PlaceholderStrategy always succeeds with a single record signalling that
// the response could not be parsed.
type PlaceholderStrategy struct{}

func (PlaceholderStrategy) Name() string { return "placeholder" }

func (PlaceholderStrategy) Parse(string) (ParseResult, bool) {
	return ParseResult{
		Strategy: "placeholder",
		Questions: []ParsedQuestion{{
			Question:        placeholderQuestion,
			Explanation:     placeholderExplanation,
			AnswerFramework: defaultAnswerFramework,
		}},
		Placeholder: true,
	}, true
}

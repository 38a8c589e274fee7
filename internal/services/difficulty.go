package services

import "strings"

const defaultDifficulty = 3

var complexityTerms = []string{
	"complex", "advanced", "senior", "architect", "design",
	"scalab", "optimiz", "distributed",
}

var simplicityTerms = []string{
	"basic", "simple", "entry", "junior", "fundamental",
}

// EstimateDifficulty scores a question from 1 to 5 using lexical cues in the
// question and its answer framework. Each cue family moves the score by at most one.
func EstimateDifficulty(question, answerFramework string) int {
	q := strings.ToLower(question)
	a := strings.ToLower(answerFramework)

	score := defaultDifficulty
	if containsAny(q, a, complexityTerms) {
		score++
	}
	if containsAny(q, a, simplicityTerms) {
		score--
	}

	return clamp(score, 1, 5)
}

func containsAny(question, answer string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(question, term) || strings.Contains(answer, term) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DocumentExtractor pulls plain text out of an uploaded job posting.
type DocumentExtractor interface {
	ExtractText(filePath string) (string, error)
}

type pdfExtractor struct{}

func NewPDFExtractor() DocumentExtractor {
	return &pdfExtractor{}
}

// ExtractText implements DocumentExtractor. Pages that fail to decode are skipped.
func (p *pdfExtractor) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	text := CleanText(sb.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return text, nil
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// JobSections is the structured view of a free-text job posting.
type JobSections struct {
	Description      string
	Skills           []string
	Responsibilities []string
	Requirements     []string
}

type jobSection int

const (
	sectionDescription jobSection = iota
	sectionSkills
	sectionResponsibilities
	sectionRequirements
)

var sectionHeaders = []struct {
	pattern *regexp.Regexp
	section jobSection
}{
	{regexp.MustCompile(`(?i)^(key\s+|technical\s+|required\s+)?skills(\s+required)?:?$`), sectionSkills},
	{regexp.MustCompile(`(?i)^(tech\s+stack|technologies):?$`), sectionSkills},
	{regexp.MustCompile(`(?i)^(key\s+)?(responsibilities|duties):?$`), sectionResponsibilities},
	{regexp.MustCompile(`(?i)^what\s+you('|’)?ll\s+do:?$`), sectionResponsibilities},
	{regexp.MustCompile(`(?i)^(requirements|qualifications|minimum\s+qualifications|what\s+we('|’)?re\s+looking\s+for):?$`), sectionRequirements},
}

var bulletPrefix = regexp.MustCompile(`^([-*•▪◦]|\d+[.)])\s*`)

// ParseJobSections splits a posting into description, skills,
// responsibilities and requirements using common section headings.
// Text before the first heading becomes the description.
func ParseJobSections(text string) JobSections {
	var sections JobSections
	var description []string
	current := sectionDescription

	for _, line := range strings.Split(CleanText(text), "\n") {
		if line == "" {
			continue
		}
		if s, ok := matchSectionHeader(line); ok {
			current = s
			continue
		}

		item := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if item == "" {
			continue
		}

		switch current {
		case sectionSkills:
			sections.Skills = append(sections.Skills, splitSkills(item)...)
		case sectionResponsibilities:
			sections.Responsibilities = append(sections.Responsibilities, item)
		case sectionRequirements:
			sections.Requirements = append(sections.Requirements, item)
		default:
			description = append(description, line)
		}
	}

	sections.Description = strings.Join(description, "\n")
	return sections
}

func matchSectionHeader(line string) (jobSection, bool) {
	trimmed := strings.TrimSpace(strings.Trim(line, "#*"))
	for _, h := range sectionHeaders {
		if h.pattern.MatchString(trimmed) {
			return h.section, true
		}
	}
	return sectionDescription, false
}

// splitSkills expands comma-separated skill lines into single entries.
func splitSkills(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/interview-generator/internal/models"
)

func TestDistributeQuestions(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		categories []models.Category
		want       Distribution
	}{
		{
			name:       "uneven split favours earlier categories",
			total:      5,
			categories: []models.Category{models.CategoryTechnical, models.CategoryBehavioral},
			want:       Distribution{models.CategoryTechnical: 3, models.CategoryBehavioral: 2},
		},
		{
			name:       "caller order decides the tie-break",
			total:      5,
			categories: []models.Category{models.CategoryBehavioral, models.CategoryTechnical},
			want:       Distribution{models.CategoryBehavioral: 3, models.CategoryTechnical: 2},
		},
		{
			name:       "even split",
			total:      6,
			categories: []models.Category{models.CategoryTechnical, models.CategorySituational, models.CategoryRoleSpecific},
			want: Distribution{
				models.CategoryTechnical:    2,
				models.CategorySituational:  2,
				models.CategoryRoleSpecific: 2,
			},
		},
		{
			name:  "more categories than questions",
			total: 3,
			categories: []models.Category{
				models.CategoryTechnical,
				models.CategoryBehavioral,
				models.CategorySituational,
				models.CategoryRoleSpecific,
				models.CategoryCompanySpecific,
			},
			want: Distribution{
				models.CategoryTechnical:       1,
				models.CategoryBehavioral:      1,
				models.CategorySituational:     1,
				models.CategoryRoleSpecific:    0,
				models.CategoryCompanySpecific: 0,
			},
		},
		{
			name:       "duplicates collapse to the first occurrence",
			total:      4,
			categories: []models.Category{models.CategoryTechnical, models.CategoryBehavioral, models.CategoryTechnical},
			want:       Distribution{models.CategoryTechnical: 2, models.CategoryBehavioral: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistributeQuestions(tt.total, tt.categories)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.total, got.Total())
		})
	}
}

func TestDistributeQuestionsEmptySelection(t *testing.T) {
	got := DistributeQuestions(5, nil)

	assert.Len(t, got, len(models.AllCategories))
	for _, c := range models.AllCategories {
		assert.Equal(t, 0, got[c], c)
	}
}

func TestDistributeQuestionsIsBalanced(t *testing.T) {
	for total := 1; total <= 20; total++ {
		for n := 1; n <= len(models.AllCategories); n++ {
			dist := DistributeQuestions(total, models.AllCategories[:n])

			lo, hi := total, 0
			for _, c := range models.AllCategories[:n] {
				lo = min(lo, dist[c])
				hi = max(hi, dist[c])
			}
			assert.Equal(t, total, dist.Total(), "total=%d n=%d", total, n)
			assert.LessOrEqual(t, hi-lo, 1, "total=%d n=%d", total, n)
		}
	}
}

package services

import "alfredoptarigan/interview-generator/internal/models"

// Distribution maps each category to the number of questions it should produce.
type Distribution map[models.Category]int

// Total sums every allocation.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// DistributeQuestions splits total across categories as evenly as possible.
// Leftover questions go one each to categories in the order given, so earlier
// categories win ties.
func DistributeQuestions(total int, categories []models.Category) Distribution {
	if len(categories) == 0 || total <= 0 {
		dist := make(Distribution, len(models.AllCategories))
		for _, c := range models.AllCategories {
			dist[c] = 0
		}
		return dist
	}

	categories = uniqueCategories(categories)
	dist := make(Distribution, len(categories))
	base := total / len(categories)
	for _, c := range categories {
		dist[c] = base
	}

	remainder := total - base*len(categories)
	for i := 0; i < remainder; i++ {
		dist[categories[i]]++
	}

	// Never triggers with the arithmetic above; kept so a future change to the
	// allocation cannot hand out more than total.
	for dist.Total() > total {
		dist[largestBucket(dist, categories)]--
	}

	return dist
}

func largestBucket(dist Distribution, order []models.Category) models.Category {
	best := order[0]
	for _, c := range order[1:] {
		if dist[c] > dist[best] {
			best = c
		}
	}
	return best
}

func uniqueCategories(categories []models.Category) []models.Category {
	seen := make(map[models.Category]bool, len(categories))
	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

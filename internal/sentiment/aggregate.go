package sentiment

import "github.com/spacesedan/sentiquery/internal/models"

// Aggregate averages the signed scores. An empty input averages to 0, which
// makes the overall label POSITIVE.
func Aggregate(scored []models.ScoredSnippet) (models.Label, float64) {
	var average float64
	if len(scored) > 0 {
		var total float64
		for _, s := range scored {
			total += s.Score
		}
		average = total / float64(len(scored))
	}

	return OverallLabel(average), average
}

func OverallLabel(average float64) models.Label {
	if average >= 0 {
		return models.LABEL_POSITIVE
	}
	return models.LABEL_NEGATIVE
}

package screening

import "adhd-intake-service/internal/app/models"

// MaxASRSScore is the top of the ASRS-6 range, six items scored 0 to 4.
const MaxASRSScore = models.ASRSItemCount * 4

// ScoreASRS sums the six ASRS answers. ok is false when any item is
// unanswered; the score is then unavailable rather than zero.
func ScoreASRS(answers [models.ASRSItemCount]models.FrequencyAnswer) (score int, ok bool) {
	for _, answer := range answers {
		value, answered := answer.Score()
		if !answered {
			return 0, false
		}
		score += value
	}
	return score, true
}

// ScoreASRSPointer is ScoreASRS shaped for JSON payloads, nil when unavailable.
func ScoreASRSPointer(answers [models.ASRSItemCount]models.FrequencyAnswer) *int {
	score, ok := ScoreASRS(answers)
	if !ok {
		return nil
	}
	return &score
}

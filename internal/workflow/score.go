package workflow

// ScoreBucket is the display grade attached to a raw match score. It is a
// pure function of the score and the only consumer-facing semantic layered on
// top of it.
type ScoreBucket int

const (
	ScoreModerate ScoreBucket = iota
	ScoreGood
	ScoreExcellent
)

// BucketForScore grades a 0.0-1.0 match score. Both boundaries are inclusive:
// exactly 0.8 is excellent and exactly 0.6 is good.
func BucketForScore(score float64) ScoreBucket {
	switch {
	case score >= 0.8:
		return ScoreExcellent
	case score >= 0.6:
		return ScoreGood
	default:
		return ScoreModerate
	}
}

func (b ScoreBucket) Label() string {
	switch b {
	case ScoreExcellent:
		return "Excellent Match"
	case ScoreGood:
		return "Good Match"
	default:
		return "Moderate Match"
	}
}

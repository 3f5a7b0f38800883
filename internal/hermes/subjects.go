package hermes

const (
	StreamName   = "TALLY_EVENTS"
	StreamMaxAge = "720h" // 30 days

	SubjectEvaluationAll = "tally.evaluation.>"
)

func SubjectEvaluationCompleted(evaluationID string) string {
	return "tally.evaluation." + evaluationID + ".completed"
}

func SubjectEvaluationRejected(evaluationID string) string {
	return "tally.evaluation." + evaluationID + ".rejected"
}

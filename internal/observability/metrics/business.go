package metrics

// RecordArticleCreated records one article submission.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
}

// RecordModeration records a lifecycle transition.
// Action is one of "approve", "reject", "unpublish", or "resubmit".
func RecordModeration(action string) {
	ModerationActionsTotal.WithLabelValues(action).Inc()
}

// RecordAuthRequest records an authentication attempt.
// Outcome should be either "success" or "failure".
func RecordAuthRequest(role, outcome string) {
	AuthRequestsTotal.WithLabelValues(role, outcome).Inc()
}

// RecordGuardDecision records an access control guard decision.
func RecordGuardDecision(outcome string) {
	GuardDecisionsTotal.WithLabelValues(outcome).Inc()
}

// UpdateArticlesByStatus updates the per-status article gauge.
// This gauge should be updated periodically to reflect the current state.
func UpdateArticlesByStatus(status string, count int64) {
	ArticlesByStatus.WithLabelValues(status).Set(float64(count))
}

// UpdateUsersTotal updates the registered-user gauge.
func UpdateUsersTotal(count int64) {
	UsersTotal.Set(float64(count))
}

package api

// CreateTaskRequest is the POST /api/v1/tasks body. SizeBytes is reported
// by the upload edge for uploaded media; zero for platform URLs.
type CreateTaskRequest struct {
	SourceType string                 `json:"source_type" binding:"required"`
	SourceURL  string                 `json:"source_url" binding:"required"`
	SizeBytes  int64                  `json:"size_bytes"`
	IsTrial    bool                   `json:"is_trial"`
	Params     map[string]interface{} `json:"params"`
}

// SubscriptionEventRequest is the subscription webhook body, already
// reduced to the invoice.paid fields this service consumes. The raw body is
// signature-checked and decoded by hand, so required fields are validated in
// the handler rather than by binding tags.
type SubscriptionEventRequest struct {
	EventID string `json:"event_id"`
	Type    string `json:"type"`
	UserID  string `json:"user_id"`
	Minutes int    `json:"minutes"`
}

package waitlist_module

// SubmitRequest is the POST /api/waitlist body. Field maximums mirror the
// column sizes on entities.Lead.
type SubmitRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,max=100,leadmail"`
	Phone            string `json:"phone" validate:"max=20"`
	Company          string `json:"company" validate:"required,max=100"`
	Plan             string `json:"plan" validate:"max=50"`
	BiggestChallenge string `json:"biggest_challenge" validate:"required,max=500"`
}

// RequestMeta is captured from the HTTP request at submit time.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

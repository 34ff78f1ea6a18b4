package models

// StoryboardPath is where the storyboard endpoint is mounted
const StoryboardPath = "/api/storyboard"

// StoryboardRequest is the body of POST /api/storyboard.
// Story is left untyped so a non-string value can be rejected with a 400.
type StoryboardRequest struct {
	Story any `json:"story"`
}

// StoryboardResponse carries exactly four data URIs, panel 1 first
type StoryboardResponse struct {
	ImageURLs []string `json:"imageUrls"`
}

// ErrorResponse is returned for every non-200 status
type ErrorResponse struct {
	Error string `json:"error"`
}

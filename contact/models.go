package contact

// SubmissionRequest is the raw form payload posted by the website, anti-spam
// fields included.
type SubmissionRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Availability string `json:"availability"`
	Message      string `json:"message"`
	Website      string `json:"website,omitempty"` // honeypot, hidden from humans
	Token        string `json:"token"`             // signed render timestamp
}

// Submission is a validated, sanitized contact form submission. It is built
// once by Validate and not modified afterwards.
type Submission struct {
	Name         string
	Email        string
	Availability string
	Message      string
}

// FieldErrors maps a form field to its French validation messages so the
// site can attribute each message to a specific input.
type FieldErrors map[string][]string

// Response is the root response for every api call
type Response struct {
	Success bool        `json:"success"`
	Errors  interface{} `json:"errors"`
	Result  interface{} `json:"result"`
	Meta    Meta        `json:"meta"`
}

// Errors is our error struct for if something goes wrong
type Errors struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Meta contains our version number and by
type Meta struct {
	Version string `json:"version"`
	By      string `json:"by"`
}

// GetMeta returns meta info for json api responses
func GetMeta() Meta {
	return Meta{
		Version: version,
		By:      "Douce Arrivée",
	}
}

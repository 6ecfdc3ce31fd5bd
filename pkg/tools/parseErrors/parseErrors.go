package parseErrors

import "encoding/json"

// Envelope is the JSON error body the API returns on failed requests.
type Envelope struct {
	Error string `json:"error"`
}

func ErrorResponse(err error) Envelope {
	return Envelope{Error: err.Error()}
}

// Message extracts the server's error message from a response body,
// falling back when the body is empty or not the expected envelope.
func Message(body []byte, fallback string) string {
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == "" {
		return fallback
	}
	return envelope.Error
}

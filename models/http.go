package models

// DecodeRequest is the body posted to {authEndpoint}/decode.
type DecodeRequest struct {
	// Token is the opaque bearer credential taken from the inbound
	// "Authorization" header. It is forwarded untouched.
	Token string `json:"token"`
}

// ErrorResponse is the body of every classified error response.
// Only the human-readable message is exposed; causes and stack traces stay
// in server-side logs.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	OK bool `json:"ok"`
}

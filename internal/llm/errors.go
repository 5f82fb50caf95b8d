package llm

import "fmt"

// ConfigError indicates missing or invalid provider configuration. No
// upstream call is attempted when it is raised.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// UpstreamError indicates a non-success HTTP status from the provider. The
// status code and response body are carried for diagnosis.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Body)
}

// EmptyResponseError indicates a well-formed provider response that contained
// no usable text in any recognized location.
type EmptyResponseError struct {
	Provider Provider
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s returned an empty response", e.Provider)
}

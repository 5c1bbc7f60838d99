package common

// RequestIDHeaderName is the HTTP header used to correlate a console request
// with the API server log line that served it.
const RequestIDHeaderName = "X-Request-ID"

// DefaultAPIBaseURL is where the resource API listens unless configured
// otherwise.
const DefaultAPIBaseURL = "http://localhost:8082"

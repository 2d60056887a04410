package errors

var (
	// ErrInvalidBucketNumber is returned when fewer than one bucket is requested.
	ErrInvalidBucketNumber = New("expected bucket number must be at least 1")
	// ErrInvalidMaxItems is returned when the per-bucket item cap is below 1.
	ErrInvalidMaxItems = New("max items per bucket must be at least 1")
	// ErrNoItems is returned when there is nothing to split.
	ErrNoItems = New("no items to split")
	// ErrUnknownCoverage is returned when jobs are requested for a coverage the provider never saw.
	ErrUnknownCoverage = New("unknown test coverage")
	// ErrUnknownHistorySource is returned when the configured history source is not supported.
	ErrUnknownHistorySource = New("unknown history source")
	// ErrUnknownOutputFormat is returned when the configured job format is not supported.
	ErrUnknownOutputFormat = New("unknown output format")
	// ErrUnknownContainer is returned when the azure container name is invalid.
	ErrUnknownContainer = New("Unknown azure container")
	// ErrAzureConfig is returned when missing values in azure blob config
	ErrAzureConfig = New("missing values in azure blob config")
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New("Not Found")
	// ErrDuplicateJobID is returned when two jobs of the model end up with the same id.
	ErrDuplicateJobID = New("duplicate job id")
	// ErrInvalidFilterLine is returned when a filter file line is not a key=value pair.
	ErrInvalidFilterLine = New("invalid filter file line")
)

// Error represents a json-encoded error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}

// ErrSkipRetry is returned when retry attempt needs to be skipped
type ErrSkipRetry struct {
	Err error
}

// Error gives a human-readable description of the error.
func (e *ErrSkipRetry) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ErrSkipRetry) Unwrap() error {
	return e.Err
}

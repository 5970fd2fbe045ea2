package api

// loadFailedMessage is the single user-facing message every load-time
// failure converts to at this boundary.
const loadFailedMessage = "could not load data: make sure the file is a valid CSV/TSV/XLS/XLSX with the expected columns"

// ErrLoadFailed wraps any reader failure behind one user-facing
// message. The cause stays reachable through Unwrap for logging.
type ErrLoadFailed struct {
	Cause error
}

func (e *ErrLoadFailed) Error() string {
	return loadFailedMessage
}

// Unwrap returns the underlying failure.
func (e *ErrLoadFailed) Unwrap() error {
	return e.Cause
}

// NewErrLoadFailed creates a load failed error.
func NewErrLoadFailed(cause error) *ErrLoadFailed {
	return &ErrLoadFailed{Cause: cause}
}

package ledger

// LedgerError is a custom error type for submission errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	ErrMalformedSubmission LedgerError = "malformed submission"
	ErrSubmissionNotFound  LedgerError = "submission not found"
	ErrInvalidInput        LedgerError = "invalid ledger input"
	ErrNilConfig           LedgerError = "config cannot be nil"
	ErrNilSubmissionRepo   LedgerError = "submission repository cannot be nil"
	ErrNilGateway          LedgerError = "chat gateway cannot be nil"
	ErrNilHooks            LedgerError = "game hooks cannot be nil"
	ErrNilClock            LedgerError = "clock cannot be nil"
	ErrNilUUIDGenerator    LedgerError = "UUID generator cannot be nil"
)

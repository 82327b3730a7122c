package paginator

// PaginatorError is a custom error type for pagination errors
type PaginatorError string

// Error implements the error interface
func (e PaginatorError) Error() string {
	return string(e)
}

const (
	ErrPaginationOverflow PaginatorError = "text does not fit the message slots"
	ErrInvalidInput       PaginatorError = "invalid publish input"
	ErrNilConfig          PaginatorError = "config cannot be nil"
	ErrNilSlotRepo        PaginatorError = "message slot repository cannot be nil"
	ErrNilGateway         PaginatorError = "chat gateway cannot be nil"
	ErrNilClock           PaginatorError = "clock cannot be nil"
)

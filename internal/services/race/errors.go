package race

// RaceError is a custom error type for race lifecycle errors
type RaceError string

// Error implements the error interface
func (e RaceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRaceNotActive     RaceError = "no active race in this channel group"
	ErrStart             RaceError = "could not start race"
	ErrInvalidInput      RaceError = "invalid race input"
	ErrNilConfig         RaceError = "config cannot be nil"
	ErrNilRaceRepo       RaceError = "race repository cannot be nil"
	ErrNilSubmissionRepo RaceError = "submission repository cannot be nil"
	ErrNilSlotRepo       RaceError = "message slot repository cannot be nil"
	ErrNilGroupRepo      RaceError = "channel group repository cannot be nil"
	ErrNilPaginator      RaceError = "paginator cannot be nil"
	ErrNilRenderer       RaceError = "renderer cannot be nil"
	ErrNilGateway        RaceError = "chat gateway cannot be nil"
	ErrNilClock          RaceError = "clock cannot be nil"
)

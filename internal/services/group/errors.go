package group

// GroupError is a custom error type for channel group administration
type GroupError string

// Error implements the error interface
func (e GroupError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidDefinition  GroupError = "invalid group definition"
	ErrUnknownName        GroupError = "channel or role not found in server"
	ErrChannelTaken       GroupError = "submission channel already belongs to a group"
	ErrDuplicateName      GroupError = "a group with this name already exists in the server"
	ErrGroupLimit         GroupError = "cannot add more than 10 groups per server"
	ErrGroupNotFound      GroupError = "no group with this name in the server"
	ErrGroupHasActiveRace GroupError = "stop the group's active race before removing it"
	ErrInvalidInput       GroupError = "invalid group input"
	ErrNilConfig          GroupError = "config cannot be nil"
	ErrNilGroupRepo       GroupError = "channel group repository cannot be nil"
	ErrNilRaceRepo        GroupError = "race repository cannot be nil"
	ErrNilDirectory       GroupError = "directory cannot be nil"
	ErrNilClock           GroupError = "clock cannot be nil"
	ErrNilUUIDGenerator   GroupError = "UUID generator cannot be nil"
)

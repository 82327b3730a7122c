package discord

// HandlerError is a custom error type for Discord handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotSubmissionChannel HandlerError = "this channel is not the submission channel of a group"
	ErrMissingPermission    HandlerError = "you need the Manage Messages permission to use this command"
	ErrUnknownSubcommand    HandlerError = "unknown subcommand"
	ErrMissingOption        HandlerError = "missing command option"
	ErrNotInServer          HandlerError = "this command only works in a server"
	ErrNilConfig            HandlerError = "config cannot be nil"
	ErrNilSession           HandlerError = "session cannot be nil"
	ErrNilRaceService       HandlerError = "race service cannot be nil"
	ErrNilLedgerService     HandlerError = "ledger service cannot be nil"
	ErrNilGroupService      HandlerError = "group service cannot be nil"
	ErrNilResolver          HandlerError = "seed resolver cannot be nil"
	ErrNilDownloader        HandlerError = "downloader cannot be nil"
	ErrNilGateway           HandlerError = "gateway cannot be nil"
)

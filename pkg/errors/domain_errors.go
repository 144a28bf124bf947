package errors

var (
	// User/account errors — used in usecase/repository
	ErrUserNotFound       = NotFound("user not found")
	ErrEmailTaken         = AlreadyExists("an account with this email already exists")
	ErrInvalidEmail       = InvalidArg("invalid email format")
	ErrPasswordTooShort   = InvalidArg("password must be at least 6 characters")
	ErrMissingFields      = InvalidArg("all fields are required")
	ErrInvalidCredentials = Unauthorized("invalid credentials")

	// Connection-graph errors
	ErrInvalidTarget     = InvalidArg("cannot connect to yourself")
	ErrAlreadyConnected  = FailedPrecondition("already connected")
	ErrDuplicateRequest  = FailedPrecondition("connection request already sent")
	ErrReciprocalRequest = FailedPrecondition("this user has already sent you a connection request")
	ErrNoSuchRequest     = NotFound("no connection request found")
	ErrNotConnected      = Forbidden("you can only do this with your connections")

	// Messaging errors
	ErrEmptyContent    = InvalidArg("message content or attachments required")
	ErrMessageNotFound = NotFound("message not found")

	// Post errors
	ErrEmptyPost    = InvalidArg("post content is required")
	ErrPostNotFound = NotFound("post not found")

	// Internal consistency — should be unreachable with edge records +
	// transactional transitions; logged, never repaired silently.
	ErrConsistencyViolation = Internal("mirrored relationship state is inconsistent")
	ErrPartialUpdate        = Internal("relationship update applied to one side only")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}

func ErrLoginFailed(cause error) error {
	return Wrap(CodeUnauthenticated, "login failed", cause)
}

package response

const (
	MessageSuccess = "Success"

	ErrorCodeSuccess        = 0
	ErrorCodeFailure        = 1
	InternalServerErrorCode = 500

	DefaultErrorMessage = "Something went wrong"

	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)

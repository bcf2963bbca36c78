package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
	"role":     "must be one of [PATIENT DOCTOR DIAGNOSTICS SHOP]",
	"password": "must be at least 8 characters long",
	"phone":    "must be a 10 digit phone number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientServerLongRespond             = "server took too long to respond"

	ErrClientInvalidEmailOrPassword    = "invalid email or password"
	ErrClientEmailAlreadyExists        = "email already registered"
	ErrClientAccountDeactivated        = "account is deactivated"
	ErrClientCurrentPasswordIncorrect  = "current password is incorrect"
	ErrClientNotAuthorized             = "you are not authorized to perform this action"
	ErrClientNotLoggedIn               = "you are not logged in"
	ErrClientProfileNotFound           = "profile not found"
	ErrClientDoctorNotFound            = "doctor not found"
	ErrClientShopNotFound              = "shop not found"
	ErrClientAppointmentNotFound       = "appointment not found"
	ErrClientOrderNotFound             = "order not found"
	ErrClientPrescriptionNotFound      = "prescription not found"
	ErrClientPaymentNotFound           = "payment record not found"
	ErrClientSlotAlreadyBooked         = "this time slot is already booked"
	ErrClientAppointmentAlreadyCancel  = "appointment already cancelled"
	ErrClientCancelCompletedAppt       = "cannot cancel completed appointment"
	ErrClientInvalidStatusTransition   = "invalid status transition"
	ErrClientCancelDeliveredOrder      = "cannot cancel delivered order"
	ErrClientOrderAlreadyCancelled     = "order already cancelled"
	ErrClientInsufficientStock         = "insufficient stock for requested medicine"
	ErrClientOrderWithoutItems         = "order must contain at least one medicine"
	ErrClientPrescriptionAlreadyExists = "prescription already exists for this appointment"
	ErrClientInvalidPaymentType        = "invalid payment type"
	ErrClientInvalidPaymentAmount      = "invalid amount"
	ErrClientInvalidPaymentSignature   = "invalid payment signature"
	ErrClientInvalidWebhookSignature   = "invalid webhook signature"
	ErrClientInvalidUploadType         = "only JPEG, PNG, and PDF files are allowed"
	ErrClientUploadTooLarge            = "uploaded file exceeds the maximum allowed size"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON        = "failed to parse JSON request body"
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseMultipart   = "failed to parse multipart form"
	ErrDevURLParamInvalid        = "failed to parse URL parameter: %s"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevInvalidCredentials     = "invalid credentials supplied"
	ErrDevAccountDeactivated     = "account flagged inactive"
	ErrDevEmailAlreadyExists     = "email already exists in users table"
	ErrDevAuthTokenMissing       = "authorization token missing from request"
	ErrDevAuthTokenInvalid       = "authorization token invalid"
	ErrDevAuthTokenExpired       = "authorization token invalid or expired"
	ErrDevAuthTokenRevoked       = "authorization token has been revoked"
	ErrDevAuthGenerateToken      = "failed to generate token"
	ErrDevAuthSigningMethod      = "unexpected token signing method"
	ErrDevRoleNotAllowed         = "role not in the allowed set for this route"
	ErrDevNotResourceOwner       = "requester does not own the referenced resource"
	ErrDevDBFailedToFindData     = "database failed to find data"
	ErrDevDBFailedToInsertData   = "database failed to insert data"
	ErrDevDBFailedToUpdateData   = "database failed to update data"
	ErrDevDBFailedToDeleteData   = "database failed to delete data"
	ErrDevDBTransactionFailed    = "database transaction failed"
	ErrDevRedisSet               = "redis failed to set key"
	ErrDevRedisGet               = "redis failed to get key"
	ErrDevRedisDelete            = "redis failed to delete key"
	ErrDevMinioCreateObject      = "minio failed to create object in bucket %s"
	ErrDevRabbitMQPublish        = "rabbitmq failed to publish message"
	ErrDevSMTPSendEmail          = "smtp failed to send email via %s"
	ErrDevGatewayCreateOrder     = "payment gateway failed to create order"
	ErrDevPaymentSignatureFailed = "payment signature verification failed"
	ErrDevWebhookSignatureFailed = "webhook signature verification failed"
	ErrDevWebhookMalformedEvent  = "webhook event payload malformed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevSlotTaken              = "non-cancelled appointment already exists for doctor+date+time"
	ErrDevInsufficientStock      = "stock decrement affected zero rows"
)

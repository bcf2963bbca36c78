package constvars

const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusAccepted = 202

	StatusBadRequest            = 400
	StatusUnauthorized          = 401
	StatusPaymentRequired       = 402
	StatusForbidden             = 403
	StatusNotFound              = 404
	StatusMethodNotAllowed      = 405
	StatusRequestTimeout        = 408
	StatusConflict              = 409
	StatusGone                  = 410
	StatusRequestEntityTooLarge = 413
	StatusUnsupportedMediaType  = 415
	StatusTooManyRequests       = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType       = "Content-Type"
	HeaderAuthorization     = "Authorization"
	HeaderRetryAfter        = "Retry-After"
	HeaderRequestID         = "X-Request-Id"
	HeaderRazorpaySignature = "X-Razorpay-Signature"
	HeaderRazorpayEventID   = "X-Razorpay-Event-Id"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEImageJPEG       = "image/jpeg"
	MIMEImagePNG        = "image/png"
	MIMEApplicationPDF  = "application/pdf"
)

package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY  ContextKey = "request_id"
	CONTEXT_AUTH_CLAIMS_KEY ContextKey = "auth_claims"
)

const (
	REQUEST_ID_PREFIX = "MDBRG_SVC_"
)

const (
	RolePatient     = "PATIENT"
	RoleDoctor      = "DOCTOR"
	RoleDiagnostics = "DIAGNOSTICS"
	RoleShop        = "SHOP"
)

const (
	PaymentTypeAppointment    = "appointment"
	PaymentTypeDiagnosticTest = "diagnostic-test"
	PaymentTypeMedicineOrder  = "medicine-order"
)

const (
	WebhookEventPaymentCaptured = "payment.captured"
	WebhookEventPaymentFailed   = "payment.failed"
)

const (
	UploadFieldCertificate  = "certificate"
	UploadFieldPrescription = "prescription"
	UploadFieldLicense      = "license"
)

const (
	RedisRevokedTokenKeyFormat = "revoked_token:%s"
	RedisWebhookEventKeyFormat = "webhook_event:%s"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	PaymentCurrencyINR     = "INR"
)

package constvars

const (
	ResponseSuccess = "success"
)

const (
	RegisterSuccess       = "registration successful"
	LoginSuccess          = "login successful"
	LogoutSuccess         = "logout successful"
	ChangePasswordSuccess = "password changed successfully"
	ProfileGetSuccess     = "get profile successfully"
)

const (
	AppointmentBookedSuccess    = "appointment booked successfully"
	AppointmentUpdatedSuccess   = "appointment status updated successfully"
	AppointmentCancelledSuccess = "appointment cancelled successfully"
	AppointmentListSuccess      = "get appointments successfully"
)

const (
	OrderPlacedSuccess    = "order placed successfully"
	OrderUpdatedSuccess   = "order status updated successfully"
	OrderCancelledSuccess = "order cancelled successfully"
	OrderListSuccess      = "get orders successfully"
)

const (
	PrescriptionCreatedSuccess = "prescription created successfully"
	PrescriptionListSuccess    = "get prescriptions successfully"
	PrescriptionGetSuccess     = "get prescription successfully"
)

const (
	PaymentOrderCreatedSuccess   = "payment order created successfully"
	PaymentVerifiedSuccess       = "payment verified successfully"
	PaymentHistorySuccess        = "get payment history successfully"
	PaymentRefundRecordedSuccess = "refund recorded successfully"
	WebhookProcessedSuccess      = "webhook processed"
)

const (
	UploadSuccess = "file uploaded successfully"
)

package requests

// RegisterUser carries the shared identity fields plus the role-specific
// profile attributes; which of the optional fields are read depends on Role.
type RegisterUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"required,role"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,phone"`

	// Patient
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Address     string `json:"address,omitempty"`

	// Doctor
	Specialization  string  `json:"specialization,omitempty"`
	Qualification   string  `json:"qualification,omitempty"`
	Experience      int     `json:"experience,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`

	// Diagnostic center / medical shop
	CenterName      string  `json:"centerName,omitempty"`
	ShopName        string  `json:"shopName,omitempty"`
	LicenseNumber   string  `json:"licenseNumber,omitempty"`
	DeliveryCharges float64 `json:"deliveryCharges,omitempty"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,password"`
}

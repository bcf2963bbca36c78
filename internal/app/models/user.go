package models

import "time"

type User struct {
	UserID    uint       `gorm:"column:user_id;primaryKey;autoIncrement" json:"userId"`
	Name      string     `gorm:"column:name;size:255;not null" json:"name"`
	Email     string     `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"column:password;size:255;not null" json:"-"`
	Phone     string     `gorm:"column:phone;size:20" json:"phone"`
	Role      string     `gorm:"column:role;size:20;not null" json:"role"`
	IsActive  bool       `gorm:"column:is_active;default:true" json:"isActive"`
	LastLogin *time.Time `gorm:"column:last_login" json:"lastLogin,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type Patient struct {
	PatientID   uint      `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patientId"`
	UserID      uint      `gorm:"column:user_id;uniqueIndex;not null" json:"userId"`
	DateOfBirth string    `gorm:"column:date_of_birth;size:20" json:"dateOfBirth"`
	Gender      string    `gorm:"column:gender;size:10" json:"gender"`
	Address     string    `gorm:"column:address;type:text" json:"address"`
	BloodGroup  string    `gorm:"column:blood_group;size:10" json:"bloodGroup"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Patient) TableName() string { return "patients" }

type Doctor struct {
	DoctorID        uint      `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctorId"`
	UserID          uint      `gorm:"column:user_id;uniqueIndex;not null" json:"userId"`
	Specialization  string    `gorm:"column:specialization;size:255" json:"specialization"`
	Qualification   string    `gorm:"column:qualification;size:255" json:"qualification"`
	Experience      int       `gorm:"column:experience" json:"experience"`
	ConsultationFee float64   `gorm:"column:consultation_fee" json:"consultationFee"`
	Certificate     string    `gorm:"column:certificate;size:512" json:"certificate"`
	IsVerified      bool      `gorm:"column:is_verified;default:false" json:"isVerified"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Doctor) TableName() string { return "doctors" }

type DiagnosticCenter struct {
	CenterID      uint      `gorm:"column:center_id;primaryKey;autoIncrement" json:"centerId"`
	UserID        uint      `gorm:"column:user_id;uniqueIndex;not null" json:"userId"`
	CenterName    string    `gorm:"column:center_name;size:255" json:"centerName"`
	LicenseNumber string    `gorm:"column:license_number;size:100" json:"licenseNumber"`
	Address       string    `gorm:"column:address;type:text" json:"address"`
	License       string    `gorm:"column:license;size:512" json:"license"`
	IsVerified    bool      `gorm:"column:is_verified;default:false" json:"isVerified"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (DiagnosticCenter) TableName() string { return "diagnostic_centers" }

type MedicalShop struct {
	ShopID          uint      `gorm:"column:shop_id;primaryKey;autoIncrement" json:"shopId"`
	UserID          uint      `gorm:"column:user_id;uniqueIndex;not null" json:"userId"`
	ShopName        string    `gorm:"column:shop_name;size:255" json:"shopName"`
	LicenseNumber   string    `gorm:"column:license_number;size:100" json:"licenseNumber"`
	Address         string    `gorm:"column:address;type:text" json:"address"`
	DeliveryCharges float64   `gorm:"column:delivery_charges;default:0" json:"deliveryCharges"`
	License         string    `gorm:"column:license;size:512" json:"license"`
	IsVerified      bool      `gorm:"column:is_verified;default:false" json:"isVerified"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (MedicalShop) TableName() string { return "medical_shops" }

type Medicine struct {
	MedicineID   uint      `gorm:"column:medicine_id;primaryKey;autoIncrement" json:"medicineId"`
	ShopID       uint      `gorm:"column:shop_id;index;not null" json:"shopId"`
	Name         string    `gorm:"column:name;size:255;not null" json:"name"`
	Manufacturer string    `gorm:"column:manufacturer;size:255" json:"manufacturer"`
	Price        float64   `gorm:"column:price;not null" json:"price"`
	Stock        int       `gorm:"column:stock;default:0" json:"stock"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Medicine) TableName() string { return "medicines" }

// RoleProfile carries whichever role-specific profile row belongs to a user.
// Exactly one field is non-nil.
type RoleProfile struct {
	Patient          *Patient
	Doctor           *Doctor
	DiagnosticCenter *DiagnosticCenter
	MedicalShop      *MedicalShop
}

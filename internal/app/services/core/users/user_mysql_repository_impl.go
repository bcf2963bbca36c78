package users

import (
	"context"
	"errors"
	"time"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type UserMySQLRepository struct {
	DB *gorm.DB
}

func NewUserMySQLRepository(db *gorm.DB) contracts.UserRepository {
	return &UserMySQLRepository{DB: db}
}

func (r *UserMySQLRepository) CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.RoleProfile) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		switch user.Role {
		case constvars.RolePatient:
			profile.Patient.UserID = user.UserID
			return tx.Create(profile.Patient).Error
		case constvars.RoleDoctor:
			profile.Doctor.UserID = user.UserID
			return tx.Create(profile.Doctor).Error
		case constvars.RoleDiagnostics:
			profile.DiagnosticCenter.UserID = user.UserID
			return tx.Create(profile.DiagnosticCenter).Error
		case constvars.RoleShop:
			profile.MedicalShop.UserID = user.UserID
			return tx.Create(profile.MedicalShop).Error
		}
		return nil
	})
	if err != nil {
		return exceptions.ErrMySQLTransaction(err)
	}
	return nil
}

func (r *UserMySQLRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &user, nil
}

func (r *UserMySQLRepository) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &user, nil
}

func (r *UserMySQLRepository) UpdatePassword(ctx context.Context, userID uint, hashedPassword string) error {
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", userID).
		Update("password", hashedPassword).Error
	if err != nil {
		return exceptions.ErrMySQLUpdateData(err)
	}
	return nil
}

func (r *UserMySQLRepository) TouchLastLogin(ctx context.Context, userID uint) error {
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", userID).
		Update("last_login", time.Now()).Error
	if err != nil {
		return exceptions.ErrMySQLUpdateData(err)
	}
	return nil
}

func (r *UserMySQLRepository) FindProfileByUserID(ctx context.Context, userID uint, role string) (*models.RoleProfile, error) {
	profile := &models.RoleProfile{}
	switch role {
	case constvars.RolePatient:
		patient, err := r.FindPatientByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		profile.Patient = patient
	case constvars.RoleDoctor:
		doctor, err := r.FindDoctorByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		profile.Doctor = doctor
	case constvars.RoleDiagnostics:
		var center models.DiagnosticCenter
		err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&center).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return profile, nil
			}
			return nil, exceptions.ErrMySQLFindData(err)
		}
		profile.DiagnosticCenter = &center
	case constvars.RoleShop:
		shop, err := r.FindShopByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		profile.MedicalShop = shop
	}
	return profile, nil
}

func (r *UserMySQLRepository) FindPatientByID(ctx context.Context, patientID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.DB.WithContext(ctx).Where("patient_id = ?", patientID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &patient, nil
}

func (r *UserMySQLRepository) FindPatientByUserID(ctx context.Context, userID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &patient, nil
}

func (r *UserMySQLRepository) FindDoctorByID(ctx context.Context, doctorID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.DB.WithContext(ctx).Where("doctor_id = ?", doctorID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &doctor, nil
}

func (r *UserMySQLRepository) FindDoctorByUserID(ctx context.Context, userID uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &doctor, nil
}

func (r *UserMySQLRepository) FindShopByID(ctx context.Context, shopID uint) (*models.MedicalShop, error) {
	var shop models.MedicalShop
	err := r.DB.WithContext(ctx).Where("shop_id = ?", shopID).First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &shop, nil
}

func (r *UserMySQLRepository) FindShopByUserID(ctx context.Context, userID uint) (*models.MedicalShop, error) {
	var shop models.MedicalShop
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &shop, nil
}

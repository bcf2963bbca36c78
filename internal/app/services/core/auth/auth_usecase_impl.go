package auth

import (
	"context"
	"fmt"
	"time"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Logger          *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Logger:          logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Phone:    request.Phone,
		Role:     request.Role,
		IsActive: true,
	}

	profile := buildRoleProfile(request)
	if err := uc.UserRepository.CreateUserWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, user.Email, user.Role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Logger, "user_registered", utils.GetRequestID(ctx),
		zap.Uint("user_id", user.UserID),
		zap.String("role", user.Role),
	)

	return &responses.RegisterUser{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name,
		Token:  token,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		utils.LogSecurityEvent(uc.Logger, "login_failed", utils.GetRequestID(ctx), "medium",
			zap.String("email", request.Email),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !user.IsActive {
		return nil, exceptions.ErrAccountDeactivated(nil)
	}

	token, err := utils.GenerateJWT(user.UserID, user.Email, user.Role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	if err := uc.UserRepository.TouchLastLogin(ctx, user.UserID); err != nil {
		uc.Logger.Warn("failed to record last login",
			zap.Uint("user_id", user.UserID),
			zap.Error(err),
		)
	}

	profile, err := uc.roleProfilePayload(ctx, user)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Logger, "user_logged_in", utils.GetRequestID(ctx),
		zap.Uint("user_id", user.UserID),
		zap.String("role", user.Role),
	)

	return &responses.LoginUser{
		UserID:  user.UserID,
		Email:   user.Email,
		Role:    user.Role,
		Name:    user.Name,
		Token:   token,
		Profile: profile,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, claims *utils.TokenClaims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf(constvars.RedisRevokedTokenKeyFormat, claims.ID)
	return uc.RedisRepository.Set(ctx, key, "1", ttl)
}

func (uc *authUsecase) GetProfile(ctx context.Context, claims *utils.TokenClaims) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	profile, err := uc.roleProfilePayload(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{
		UserID:  user.UserID,
		Email:   user.Email,
		Role:    user.Role,
		Name:    user.Name,
		Profile: profile,
	}, nil
}

func (uc *authUsecase) ChangePassword(ctx context.Context, claims *utils.TokenClaims, request *requests.ChangePassword) error {
	user, err := uc.UserRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrProfileNotFound(nil)
	}
	if !utils.CheckPasswordHash(request.CurrentPassword, user.Password) {
		return exceptions.ErrCurrentPasswordIncorrect(nil)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	if err := uc.UserRepository.UpdatePassword(ctx, claims.UserID, hashedPassword); err != nil {
		return err
	}

	utils.LogSecurityEvent(uc.Logger, "password_changed", utils.GetRequestID(ctx), "low",
		zap.Uint("user_id", claims.UserID),
	)
	return nil
}

func (uc *authUsecase) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf(constvars.RedisRevokedTokenKeyFormat, tokenID)
	value, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return value != "", nil
}

func (uc *authUsecase) roleProfilePayload(ctx context.Context, user *models.User) (interface{}, error) {
	profile, err := uc.UserRepository.FindProfileByUserID(ctx, user.UserID, user.Role)
	if err != nil {
		return nil, err
	}
	switch user.Role {
	case constvars.RolePatient:
		if profile.Patient != nil {
			return profile.Patient, nil
		}
	case constvars.RoleDoctor:
		if profile.Doctor != nil {
			return profile.Doctor, nil
		}
	case constvars.RoleDiagnostics:
		if profile.DiagnosticCenter != nil {
			return profile.DiagnosticCenter, nil
		}
	case constvars.RoleShop:
		if profile.MedicalShop != nil {
			return profile.MedicalShop, nil
		}
	}
	return nil, nil
}

func buildRoleProfile(request *requests.RegisterUser) *models.RoleProfile {
	profile := &models.RoleProfile{}
	switch request.Role {
	case constvars.RolePatient:
		profile.Patient = &models.Patient{
			DateOfBirth: request.DateOfBirth,
			Gender:      request.Gender,
			Address:     request.Address,
		}
	case constvars.RoleDoctor:
		profile.Doctor = &models.Doctor{
			Specialization:  request.Specialization,
			Qualification:   request.Qualification,
			Experience:      request.Experience,
			ConsultationFee: request.ConsultationFee,
		}
	case constvars.RoleDiagnostics:
		profile.DiagnosticCenter = &models.DiagnosticCenter{
			CenterName:    request.CenterName,
			LicenseNumber: request.LicenseNumber,
			Address:       request.Address,
		}
	case constvars.RoleShop:
		profile.MedicalShop = &models.MedicalShop{
			ShopName:        request.ShopName,
			LicenseNumber:   request.LicenseNumber,
			Address:         request.Address,
			DeliveryCharges: request.DeliveryCharges,
		}
	}
	return profile
}

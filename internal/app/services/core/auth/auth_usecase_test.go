package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/app/services/core/users"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeRedisRepository struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = fmt.Sprintf("%v", value)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.store[key]; exists {
		return false, nil
	}
	f.store[key] = fmt.Sprintf("%v", value)
	return true, nil
}

func setupAuthTest(t *testing.T) (contracts.AuthUsecase, *gorm.DB, *fakeRedisRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.DiagnosticCenter{},
		&models.MedicalShop{},
	))

	redisRepository := newFakeRedisRepository()
	internalConfig := &config.InternalConfig{
		JWT: config.JWTConfig{Secret: "test-secret", ExpTimeInHour: 1},
	}
	usecase := NewAuthUsecase(users.NewUserMySQLRepository(db), redisRepository, internalConfig, zap.NewNop())
	return usecase, db, redisRepository
}

func registerPatient(t *testing.T, usecase contracts.AuthUsecase, email string) *utils.TokenClaims {
	response, err := usecase.Register(context.Background(), &requests.RegisterUser{
		Email:    email,
		Password: "Secret123!",
		Role:     constvars.RolePatient,
		Name:     "Asha Rao",
		Phone:    "9876543210",
		Gender:   "female",
		Address:  "12 MG Road",
	})
	require.NoError(t, err)
	return &utils.TokenClaims{
		UserID: response.UserID,
		Email:  response.Email,
		Role:   response.Role,
	}
}

func TestRegister(t *testing.T) {
	usecase, db, _ := setupAuthTest(t)

	t.Run("Patient Registration Creates User And Profile", func(t *testing.T) {
		response, err := usecase.Register(context.Background(), &requests.RegisterUser{
			Email:       "patient@example.com",
			Password:    "Secret123!",
			Role:        constvars.RolePatient,
			Name:        "Asha Rao",
			Phone:       "9876543210",
			DateOfBirth: "1990-04-12",
			Gender:      "female",
			Address:     "12 MG Road",
		})
		require.NoError(t, err)
		assert.NotZero(t, response.UserID)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, constvars.RolePatient, response.Role)

		var patient models.Patient
		require.NoError(t, db.Where("user_id = ?", response.UserID).First(&patient).Error)
		assert.Equal(t, "1990-04-12", patient.DateOfBirth)

		var user models.User
		require.NoError(t, db.Where("user_id = ?", response.UserID).First(&user).Error)
		assert.NotEqual(t, "Secret123!", user.Password, "password must be stored hashed")
		assert.True(t, user.IsActive)
	})

	t.Run("Doctor Registration Creates Doctor Profile", func(t *testing.T) {
		response, err := usecase.Register(context.Background(), &requests.RegisterUser{
			Email:           "doctor@example.com",
			Password:        "Secret123!",
			Role:            constvars.RoleDoctor,
			Name:            "Dr. Mehta",
			Phone:           "9876500000",
			Specialization:  "Cardiology",
			Qualification:   "MD",
			Experience:      8,
			ConsultationFee: 750,
		})
		require.NoError(t, err)

		var doctor models.Doctor
		require.NoError(t, db.Where("user_id = ?", response.UserID).First(&doctor).Error)
		assert.Equal(t, "Cardiology", doctor.Specialization)
		assert.Equal(t, 750.0, doctor.ConsultationFee)
	})

	t.Run("Duplicate Email Is Rejected", func(t *testing.T) {
		_, err := usecase.Register(context.Background(), &requests.RegisterUser{
			Email:    "patient@example.com",
			Password: "Another123!",
			Role:     constvars.RolePatient,
			Name:     "Someone Else",
			Phone:    "9876511111",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	usecase, db, _ := setupAuthTest(t)
	registerPatient(t, usecase, "login@example.com")

	t.Run("Valid Credentials", func(t *testing.T) {
		response, err := usecase.Login(context.Background(), &requests.LoginUser{
			Email:    "login@example.com",
			Password: "Secret123!",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, constvars.RolePatient, response.Role)
		assert.NotNil(t, response.Profile)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := usecase.Login(context.Background(), &requests.LoginUser{
			Email:    "login@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Unknown Email Gets The Same Client Message", func(t *testing.T) {
		_, err := usecase.Login(context.Background(), &requests.LoginUser{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		require.Error(t, err)
		unknownErr := err.(*exceptions.CustomError)

		_, err = usecase.Login(context.Background(), &requests.LoginUser{
			Email:    "login@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)
		wrongPasswordErr := err.(*exceptions.CustomError)

		assert.Equal(t, wrongPasswordErr.ClientMessage, unknownErr.ClientMessage,
			"client must not learn whether the email exists")
	})

	t.Run("Deactivated Account", func(t *testing.T) {
		require.NoError(t, db.Model(&models.User{}).
			Where("email = ?", "login@example.com").
			Update("is_active", false).Error)

		_, err := usecase.Login(context.Background(), &requests.LoginUser{
			Email:    "login@example.com",
			Password: "Secret123!",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestChangePassword(t *testing.T) {
	usecase, _, _ := setupAuthTest(t)
	claims := registerPatient(t, usecase, "change@example.com")

	t.Run("Wrong Current Password", func(t *testing.T) {
		err := usecase.ChangePassword(context.Background(), claims, &requests.ChangePassword{
			CurrentPassword: "not-the-password",
			NewPassword:     "NewSecret123!",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Successful Change Allows Login With New Password", func(t *testing.T) {
		err := usecase.ChangePassword(context.Background(), claims, &requests.ChangePassword{
			CurrentPassword: "Secret123!",
			NewPassword:     "NewSecret123!",
		})
		require.NoError(t, err)

		_, err = usecase.Login(context.Background(), &requests.LoginUser{
			Email:    "change@example.com",
			Password: "NewSecret123!",
		})
		require.NoError(t, err)

		_, err = usecase.Login(context.Background(), &requests.LoginUser{
			Email:    "change@example.com",
			Password: "Secret123!",
		})
		require.Error(t, err, "old password must stop working")
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	usecase, _, _ := setupAuthTest(t)
	claims := registerPatient(t, usecase, "logout@example.com")
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        "token-jti-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	revoked, err := usecase.IsTokenRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, usecase.Logout(context.Background(), claims))

	revoked, err = usecase.IsTokenRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestGetProfile(t *testing.T) {
	usecase, _, _ := setupAuthTest(t)
	claims := registerPatient(t, usecase, "profile@example.com")

	response, err := usecase.GetProfile(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, "profile@example.com", response.Email)
	assert.NotNil(t, response.Profile)

	_, err = usecase.GetProfile(context.Background(), &utils.TokenClaims{UserID: 9999, Role: constvars.RolePatient})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

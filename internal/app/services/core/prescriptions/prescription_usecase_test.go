package prescriptions

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	appointmentsvc "medibridge-service/internal/app/services/core/appointments"
	"medibridge-service/internal/app/services/core/users"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPrescriptionTest(t *testing.T) (contracts.PrescriptionUsecase, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
		&models.Prescription{},
		&models.PrescriptionMedicine{},
		&models.PrescriptionTest{},
	))

	usecase := NewPrescriptionUsecase(
		NewPrescriptionMySQLRepository(db),
		appointmentsvc.NewAppointmentMySQLRepository(db),
		users.NewUserMySQLRepository(db),
		zap.NewNop(),
	)
	return usecase, db
}

func seedRxPatient(t *testing.T, db *gorm.DB, email string) (*utils.TokenClaims, *models.Patient) {
	user := &models.User{Name: "Patient", Email: email, Password: "x", Role: constvars.RolePatient, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	patient := &models.Patient{UserID: user.UserID}
	require.NoError(t, db.Create(patient).Error)
	return &utils.TokenClaims{UserID: user.UserID, Email: email, Role: constvars.RolePatient}, patient
}

func seedRxDoctor(t *testing.T, db *gorm.DB, email string) (*utils.TokenClaims, *models.Doctor) {
	user := &models.User{Name: "Doctor", Email: email, Password: "x", Role: constvars.RoleDoctor, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	doctor := &models.Doctor{UserID: user.UserID, Specialization: "General"}
	require.NoError(t, db.Create(doctor).Error)
	return &utils.TokenClaims{UserID: user.UserID, Email: email, Role: constvars.RoleDoctor}, doctor
}

var consultationSlotSeq uint64

// seedConsultation picks a fresh time per call so repeated seeds for the same
// doctor never collide on the slot index.
func seedConsultation(t *testing.T, db *gorm.DB, patientID, doctorID uint) *models.Appointment {
	slot := atomic.AddUint64(&consultationSlotSeq, 1)
	appointment := &models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: "2026-09-01",
		AppointmentTime: fmt.Sprintf("10:%02d", slot%60),
		Status:          models.AppointmentStatusConfirmed,
		PaymentStatus:   models.PaymentStatePaid,
	}
	require.NoError(t, db.Create(appointment).Error)
	return appointment
}

func TestCreatePrescription(t *testing.T) {
	usecase, db := setupPrescriptionTest(t)
	_, patient := seedRxPatient(t, db, "p1@example.com")
	doctorClaims, doctor := seedRxDoctor(t, db, "d1@example.com")
	appointment := seedConsultation(t, db, patient.PatientID, doctor.DoctorID)

	t.Run("Create Completes The Appointment", func(t *testing.T) {
		response, err := usecase.Create(context.Background(), doctorClaims, &requests.CreatePrescription{
			AppointmentID: appointment.AppointmentID,
			Diagnosis:     "viral fever",
			Medicines: []requests.PrescriptionMedicine{
				{MedicineName: "Paracetamol", Dosage: "500mg", Frequency: "twice daily", Duration: "5 days"},
			},
			Tests:        []string{"CBC"},
			FollowUpDate: "2026-09-08",
		})
		require.NoError(t, err)
		assert.NotZero(t, response.PrescriptionID)

		var updated models.Appointment
		require.NoError(t, db.First(&updated, appointment.AppointmentID).Error)
		assert.Equal(t, models.AppointmentStatusCompleted, updated.Status)

		var medicines []models.PrescriptionMedicine
		require.NoError(t, db.Where("prescription_id = ?", response.PrescriptionID).Find(&medicines).Error)
		require.Len(t, medicines, 1)
		assert.Equal(t, "500mg", medicines[0].Dosage)

		var tests []models.PrescriptionTest
		require.NoError(t, db.Where("prescription_id = ?", response.PrescriptionID).Find(&tests).Error)
		assert.Len(t, tests, 1)
	})

	t.Run("Second Prescription For The Same Appointment Is Rejected", func(t *testing.T) {
		_, err := usecase.Create(context.Background(), doctorClaims, &requests.CreatePrescription{
			AppointmentID: appointment.AppointmentID,
			Diagnosis:     "another take",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Only The Assigned Doctor May Prescribe", func(t *testing.T) {
		otherDoctorClaims, _ := seedRxDoctor(t, db, "d2@example.com")
		fresh := seedConsultation(t, db, patient.PatientID, doctor.DoctorID)

		_, err := usecase.Create(context.Background(), otherDoctorClaims, &requests.CreatePrescription{
			AppointmentID: fresh.AppointmentID,
			Diagnosis:     "not my patient",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Unknown Appointment", func(t *testing.T) {
		_, err := usecase.Create(context.Background(), doctorClaims, &requests.CreatePrescription{
			AppointmentID: 9999,
			Diagnosis:     "ghost",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestGetPrescriptionByID(t *testing.T) {
	usecase, db := setupPrescriptionTest(t)
	patientClaims, patient := seedRxPatient(t, db, "p1@example.com")
	doctorClaims, doctor := seedRxDoctor(t, db, "d1@example.com")
	appointment := seedConsultation(t, db, patient.PatientID, doctor.DoctorID)

	created, err := usecase.Create(context.Background(), doctorClaims, &requests.CreatePrescription{
		AppointmentID: appointment.AppointmentID,
		Diagnosis:     "migraine",
		Medicines: []requests.PrescriptionMedicine{
			{MedicineName: "Sumatriptan", Dosage: "50mg"},
		},
	})
	require.NoError(t, err)

	t.Run("Patient Reads Own Prescription", func(t *testing.T) {
		response, err := usecase.GetByID(context.Background(), patientClaims, created.PrescriptionID)
		require.NoError(t, err)
		assert.Equal(t, "migraine", response.Diagnosis)
		require.Len(t, response.Medicines, 1)
		assert.Equal(t, "Sumatriptan", response.Medicines[0].MedicineName)
	})

	t.Run("Other Patient Is Rejected", func(t *testing.T) {
		otherClaims, _ := seedRxPatient(t, db, "p2@example.com")
		_, err := usecase.GetByID(context.Background(), otherClaims, created.PrescriptionID)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Unknown Prescription", func(t *testing.T) {
		_, err := usecase.GetByID(context.Background(), patientClaims, 9999)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestListPrescriptions(t *testing.T) {
	usecase, db := setupPrescriptionTest(t)
	patientClaims, patient := seedRxPatient(t, db, "p1@example.com")
	doctorClaims, doctor := seedRxDoctor(t, db, "d1@example.com")

	for i := 0; i < 2; i++ {
		appointment := seedConsultation(t, db, patient.PatientID, doctor.DoctorID)
		_, err := usecase.Create(context.Background(), doctorClaims, &requests.CreatePrescription{
			AppointmentID: appointment.AppointmentID,
			Diagnosis:     "follow up",
		})
		require.NoError(t, err)
	}

	t.Run("Patient View", func(t *testing.T) {
		result, pagination, err := usecase.List(context.Background(), patientClaims, 1, 10)
		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, 2, pagination.Total)
	})

	t.Run("Doctor View", func(t *testing.T) {
		result, _, err := usecase.List(context.Background(), doctorClaims, 1, 10)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Shop Role Is Rejected", func(t *testing.T) {
		_, _, err := usecase.List(context.Background(), &utils.TokenClaims{UserID: 1, Role: constvars.RoleShop}, 1, 10)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

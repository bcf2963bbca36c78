package appointments

import (
	"context"
	"testing"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
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

type stubMailerService struct {
	queued []requests.EmailPayload
}

func (s *stubMailerService) QueueEmail(_ context.Context, payload *requests.EmailPayload) error {
	s.queued = append(s.queued, *payload)
	return nil
}

func setupAppointmentTest(t *testing.T) (contracts.AppointmentUsecase, *gorm.DB, *stubMailerService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
	))

	mailer := &stubMailerService{}
	usecase := NewAppointmentUsecase(
		NewAppointmentMySQLRepository(db),
		users.NewUserMySQLRepository(db),
		mailer,
		zap.NewNop(),
	)
	return usecase, db, mailer
}

func seedPatient(t *testing.T, db *gorm.DB, email string) (*utils.TokenClaims, *models.Patient) {
	user := &models.User{Name: "Patient " + email, Email: email, Password: "x", Role: constvars.RolePatient, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	patient := &models.Patient{UserID: user.UserID}
	require.NoError(t, db.Create(patient).Error)
	return &utils.TokenClaims{UserID: user.UserID, Email: email, Role: constvars.RolePatient}, patient
}

func seedDoctor(t *testing.T, db *gorm.DB, email string, fee float64) (*utils.TokenClaims, *models.Doctor) {
	user := &models.User{Name: "Doctor " + email, Email: email, Password: "x", Role: constvars.RoleDoctor, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	doctor := &models.Doctor{UserID: user.UserID, Specialization: "General", ConsultationFee: fee}
	require.NoError(t, db.Create(doctor).Error)
	return &utils.TokenClaims{UserID: user.UserID, Email: email, Role: constvars.RoleDoctor}, doctor
}

func TestBookAppointment(t *testing.T) {
	usecase, db, _ := setupAppointmentTest(t)
	patientClaims, _ := seedPatient(t, db, "p1@example.com")
	_, doctor := seedDoctor(t, db, "d1@example.com", 500)

	t.Run("Successful Booking Uses Doctor Fee", func(t *testing.T) {
		response, err := usecase.Book(context.Background(), patientClaims, &requests.BookAppointment{
			DoctorID:        doctor.DoctorID,
			AppointmentDate: "2026-09-01",
			AppointmentTime: "10:00",
			Symptoms:        "fever",
		})
		require.NoError(t, err)
		assert.NotZero(t, response.AppointmentID)
		assert.Equal(t, 500.0, response.ConsultationFee)
		assert.Equal(t, "Doctor d1@example.com", response.DoctorName)

		var appointment models.Appointment
		require.NoError(t, db.First(&appointment, response.AppointmentID).Error)
		assert.Equal(t, models.AppointmentStatusPending, appointment.Status)
		assert.Equal(t, models.PaymentStateUnpaid, appointment.PaymentStatus)
		assert.Equal(t, "in-person", appointment.ConsultationType)
	})

	t.Run("Same Slot Is Rejected", func(t *testing.T) {
		otherClaims, _ := seedPatient(t, db, "p2@example.com")
		_, err := usecase.Book(context.Background(), otherClaims, &requests.BookAppointment{
			DoctorID:        doctor.DoctorID,
			AppointmentDate: "2026-09-01",
			AppointmentTime: "10:00",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Different Time Same Day Is Fine", func(t *testing.T) {
		_, err := usecase.Book(context.Background(), patientClaims, &requests.BookAppointment{
			DoctorID:        doctor.DoctorID,
			AppointmentDate: "2026-09-01",
			AppointmentTime: "10:30",
		})
		require.NoError(t, err)
	})

	t.Run("Cancelled Slot Can Be Rebooked", func(t *testing.T) {
		response, err := usecase.Book(context.Background(), patientClaims, &requests.BookAppointment{
			DoctorID:        doctor.DoctorID,
			AppointmentDate: "2026-09-02",
			AppointmentTime: "11:00",
		})
		require.NoError(t, err)

		err = usecase.Cancel(context.Background(), patientClaims, response.AppointmentID, &requests.CancelAppointment{
			CancellationReason: "conflict",
		})
		require.NoError(t, err)

		_, err = usecase.Book(context.Background(), patientClaims, &requests.BookAppointment{
			DoctorID:        doctor.DoctorID,
			AppointmentDate: "2026-09-02",
			AppointmentTime: "11:00",
		})
		require.NoError(t, err)
	})

	t.Run("Schema Blocks A Duplicate That Slips Past The Availability Check", func(t *testing.T) {
		patient := &models.Patient{UserID: 900}
		require.NoError(t, db.Create(patient).Error)

		first := &models.Appointment{
			PatientID:       patient.PatientID,
			DoctorID:        doctor.DoctorID,
			AppointmentDate: "2026-09-04",
			AppointmentTime: "15:00",
			Status:          models.AppointmentStatusPending,
		}
		require.NoError(t, db.Create(first).Error)

		duplicate := &models.Appointment{
			PatientID:       patient.PatientID,
			DoctorID:        doctor.DoctorID,
			AppointmentDate: "2026-09-04",
			AppointmentTime: "15:00",
			Status:          models.AppointmentStatusPending,
		}
		err := db.Create(duplicate).Error
		require.Error(t, err, "two live appointments must never share a doctor slot")
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		_, err := usecase.Book(context.Background(), patientClaims, &requests.BookAppointment{
			DoctorID:        9999,
			AppointmentDate: "2026-09-03",
			AppointmentTime: "09:00",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestUpdateAppointmentStatus(t *testing.T) {
	usecase, db, mailer := setupAppointmentTest(t)
	patientClaims, _ := seedPatient(t, db, "p1@example.com")
	doctorClaims, doctor := seedDoctor(t, db, "d1@example.com", 400)

	booked, err := usecase.Book(context.Background(), patientClaims, &requests.BookAppointment{
		DoctorID:        doctor.DoctorID,
		AppointmentDate: "2026-09-05",
		AppointmentTime: "14:00",
	})
	require.NoError(t, err)

	t.Run("Only The Assigned Doctor May Update", func(t *testing.T) {
		otherDoctorClaims, _ := seedDoctor(t, db, "d2@example.com", 300)
		err := usecase.UpdateStatus(context.Background(), otherDoctorClaims, booked.AppointmentID, &requests.UpdateAppointmentStatus{
			Status: models.AppointmentStatusConfirmed,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Pending To Confirmed", func(t *testing.T) {
		err := usecase.UpdateStatus(context.Background(), doctorClaims, booked.AppointmentID, &requests.UpdateAppointmentStatus{
			Status: models.AppointmentStatusConfirmed,
			Notes:  "see you then",
		})
		require.NoError(t, err)

		var appointment models.Appointment
		require.NoError(t, db.First(&appointment, booked.AppointmentID).Error)
		assert.Equal(t, models.AppointmentStatusConfirmed, appointment.Status)
		assert.Equal(t, "see you then", appointment.DoctorNotes)

		require.Len(t, mailer.queued, 1)
		assert.Equal(t, "p1@example.com", mailer.queued[0].To)
		assert.Equal(t, "Appointment confirmed", mailer.queued[0].Subject)
	})

	t.Run("Confirmed To Confirmed Is Rejected", func(t *testing.T) {
		err := usecase.UpdateStatus(context.Background(), doctorClaims, booked.AppointmentID, &requests.UpdateAppointmentStatus{
			Status: models.AppointmentStatusConfirmed,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Confirmed To Completed", func(t *testing.T) {
		err := usecase.UpdateStatus(context.Background(), doctorClaims, booked.AppointmentID, &requests.UpdateAppointmentStatus{
			Status: models.AppointmentStatusCompleted,
		})
		require.NoError(t, err)
	})
}

func TestCancelAppointment(t *testing.T) {
	usecase, db, _ := setupAppointmentTest(t)
	patientClaims, _ := seedPatient(t, db, "p1@example.com")
	doctorClaims, doctor := seedDoctor(t, db, "d1@example.com", 400)

	booked, err := usecase.Book(context.Background(), patientClaims, &requests.BookAppointment{
		DoctorID:        doctor.DoctorID,
		AppointmentDate: "2026-09-06",
		AppointmentTime: "09:00",
	})
	require.NoError(t, err)

	t.Run("Other Patient Cannot Cancel", func(t *testing.T) {
		otherClaims, _ := seedPatient(t, db, "p2@example.com")
		err := usecase.Cancel(context.Background(), otherClaims, booked.AppointmentID, &requests.CancelAppointment{
			CancellationReason: "not mine",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Patient Cancels Own Appointment", func(t *testing.T) {
		err := usecase.Cancel(context.Background(), patientClaims, booked.AppointmentID, &requests.CancelAppointment{
			CancellationReason: "travel",
		})
		require.NoError(t, err)

		var appointment models.Appointment
		require.NoError(t, db.First(&appointment, booked.AppointmentID).Error)
		assert.Equal(t, models.AppointmentStatusCancelled, appointment.Status)
		assert.Equal(t, "travel", appointment.CancellationReason)
		assert.Equal(t, constvars.RolePatient, appointment.CancelledBy)
		assert.Equal(t, appointment.AppointmentID, appointment.CancelledSeq,
			"cancellation must release the slot in the unique index")
	})

	t.Run("Cancelling Twice Is Rejected", func(t *testing.T) {
		err := usecase.Cancel(context.Background(), patientClaims, booked.AppointmentID, &requests.CancelAppointment{
			CancellationReason: "again",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Completed Appointment Cannot Be Cancelled", func(t *testing.T) {
		completed, err := usecase.Book(context.Background(), patientClaims, &requests.BookAppointment{
			DoctorID:        doctor.DoctorID,
			AppointmentDate: "2026-09-07",
			AppointmentTime: "09:00",
		})
		require.NoError(t, err)
		require.NoError(t, usecase.UpdateStatus(context.Background(), doctorClaims, completed.AppointmentID, &requests.UpdateAppointmentStatus{
			Status: models.AppointmentStatusCompleted,
		}))

		err = usecase.Cancel(context.Background(), patientClaims, completed.AppointmentID, &requests.CancelAppointment{
			CancellationReason: "too late",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestListAppointments(t *testing.T) {
	usecase, db, _ := setupAppointmentTest(t)
	patientClaims, _ := seedPatient(t, db, "p1@example.com")
	doctorClaims, doctor := seedDoctor(t, db, "d1@example.com", 400)

	for _, slot := range []string{"09:00", "10:00", "11:00"} {
		_, err := usecase.Book(context.Background(), patientClaims, &requests.BookAppointment{
			DoctorID:        doctor.DoctorID,
			AppointmentDate: "2026-09-10",
			AppointmentTime: slot,
		})
		require.NoError(t, err)
	}

	t.Run("Patient Sees Own Appointments", func(t *testing.T) {
		result, pagination, err := usecase.List(context.Background(), patientClaims, &requests.ListAppointments{})
		require.NoError(t, err)
		assert.Len(t, result, 3)
		assert.Equal(t, 3, pagination.Total)
	})

	t.Run("Doctor Sees The Same Appointments", func(t *testing.T) {
		result, _, err := usecase.List(context.Background(), doctorClaims, &requests.ListAppointments{})
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("Status Filter", func(t *testing.T) {
		result, _, err := usecase.List(context.Background(), patientClaims, &requests.ListAppointments{
			Status: models.AppointmentStatusCancelled,
		})
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Shop Role Is Rejected", func(t *testing.T) {
		_, _, err := usecase.List(context.Background(), &utils.TokenClaims{UserID: 1, Role: constvars.RoleShop}, &requests.ListAppointments{})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

package orders

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

func setupOrderTest(t *testing.T) (contracts.OrderUsecase, *gorm.DB, *stubMailerService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.MedicalShop{},
		&models.Medicine{},
		&models.MedicineOrder{},
		&models.MedicineOrderItem{},
	))

	mailer := &stubMailerService{}
	usecase := NewOrderUsecase(
		NewOrderMySQLRepository(db),
		users.NewUserMySQLRepository(db),
		mailer,
		zap.NewNop(),
	)
	return usecase, db, mailer
}

func seedOrderPatient(t *testing.T, db *gorm.DB, email string) (*utils.TokenClaims, *models.Patient) {
	user := &models.User{Name: "Patient", Email: email, Password: "x", Role: constvars.RolePatient, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	patient := &models.Patient{UserID: user.UserID}
	require.NoError(t, db.Create(patient).Error)
	return &utils.TokenClaims{UserID: user.UserID, Email: email, Role: constvars.RolePatient}, patient
}

func seedShop(t *testing.T, db *gorm.DB, email string, deliveryCharges float64) (*utils.TokenClaims, *models.MedicalShop) {
	user := &models.User{Name: "Shop", Email: email, Password: "x", Role: constvars.RoleShop, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	shop := &models.MedicalShop{UserID: user.UserID, ShopName: "City Pharmacy", DeliveryCharges: deliveryCharges}
	require.NoError(t, db.Create(shop).Error)
	return &utils.TokenClaims{UserID: user.UserID, Email: email, Role: constvars.RoleShop}, shop
}

func seedMedicine(t *testing.T, db *gorm.DB, shopID uint, name string, price float64, stock int) *models.Medicine {
	medicine := &models.Medicine{ShopID: shopID, Name: name, Price: price, Stock: stock}
	require.NoError(t, db.Create(medicine).Error)
	return medicine
}

func medicineStock(t *testing.T, db *gorm.DB, medicineID uint) int {
	var medicine models.Medicine
	require.NoError(t, db.First(&medicine, medicineID).Error)
	return medicine.Stock
}

func TestCreateMedicineOrder(t *testing.T) {
	usecase, db, mailer := setupOrderTest(t)
	patientClaims, _ := seedOrderPatient(t, db, "p1@example.com")
	_, shop := seedShop(t, db, "s1@example.com", 40)
	paracetamol := seedMedicine(t, db, shop.ShopID, "Paracetamol", 20, 100)
	ibuprofen := seedMedicine(t, db, shop.ShopID, "Ibuprofen", 35, 5)

	t.Run("Totals Include Delivery Charges", func(t *testing.T) {
		response, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
			ShopID: shop.ShopID,
			Medicines: []requests.OrderMedicine{
				{MedicineID: paracetamol.MedicineID, MedicineName: "Paracetamol", Quantity: 3, Price: 20},
				{MedicineID: ibuprofen.MedicineID, MedicineName: "Ibuprofen", Quantity: 2, Price: 35},
			},
			DeliveryAddress: "12 MG Road",
		})
		require.NoError(t, err)
		assert.Equal(t, 130.0, response.TotalAmount)
		assert.Equal(t, 40.0, response.DeliveryCharges)
		assert.Equal(t, 170.0, response.FinalAmount)

		assert.Equal(t, 97, medicineStock(t, db, paracetamol.MedicineID))
		assert.Equal(t, 3, medicineStock(t, db, ibuprofen.MedicineID))

		require.Len(t, mailer.queued, 1)
		assert.Equal(t, "p1@example.com", mailer.queued[0].To)
		assert.Equal(t, "Order placed", mailer.queued[0].Subject)

		var order models.MedicineOrder
		require.NoError(t, db.First(&order, response.OrderID).Error)
		assert.Equal(t, "pending", order.Status, "new orders must be listable under the pending filter")
		assert.Equal(t, models.PaymentStateUnpaid, order.PaymentStatus)
	})

	t.Run("Insufficient Stock Rolls The Whole Order Back", func(t *testing.T) {
		stockBefore := medicineStock(t, db, paracetamol.MedicineID)

		_, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
			ShopID: shop.ShopID,
			Medicines: []requests.OrderMedicine{
				{MedicineID: paracetamol.MedicineID, MedicineName: "Paracetamol", Quantity: 5, Price: 20},
				{MedicineID: ibuprofen.MedicineID, MedicineName: "Ibuprofen", Quantity: 10, Price: 35},
			},
			DeliveryAddress: "12 MG Road",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

		assert.Equal(t, stockBefore, medicineStock(t, db, paracetamol.MedicineID),
			"stock taken for the first line must come back when a later line fails")

		var count int64
		require.NoError(t, db.Model(&models.MedicineOrder{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "only the first successful order may exist")
	})

	t.Run("Empty Order Is Rejected", func(t *testing.T) {
		_, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
			ShopID:          shop.ShopID,
			DeliveryAddress: "12 MG Road",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Unknown Shop", func(t *testing.T) {
		_, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
			ShopID: 9999,
			Medicines: []requests.OrderMedicine{
				{MedicineID: paracetamol.MedicineID, MedicineName: "Paracetamol", Quantity: 1, Price: 20},
			},
			DeliveryAddress: "12 MG Road",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	usecase, db, _ := setupOrderTest(t)
	patientClaims, _ := seedOrderPatient(t, db, "p1@example.com")
	shopClaims, shop := seedShop(t, db, "s1@example.com", 0)
	medicine := seedMedicine(t, db, shop.ShopID, "Paracetamol", 20, 50)

	created, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
		ShopID: shop.ShopID,
		Medicines: []requests.OrderMedicine{
			{MedicineID: medicine.MedicineID, MedicineName: "Paracetamol", Quantity: 2, Price: 20},
		},
		DeliveryAddress: "12 MG Road",
	})
	require.NoError(t, err)

	t.Run("Other Shop Cannot Update", func(t *testing.T) {
		otherShopClaims, _ := seedShop(t, db, "s2@example.com", 0)
		err := usecase.UpdateStatus(context.Background(), otherShopClaims, created.OrderID, &requests.UpdateOrderStatus{
			Status: models.OrderStatusProcessing,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Pending Straight To Delivered Is Rejected", func(t *testing.T) {
		err := usecase.UpdateStatus(context.Background(), shopClaims, created.OrderID, &requests.UpdateOrderStatus{
			Status: models.OrderStatusDelivered,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Full Lifecycle", func(t *testing.T) {
		for _, status := range []string{models.OrderStatusProcessing, models.OrderStatusReady, models.OrderStatusDelivered} {
			request := &requests.UpdateOrderStatus{Status: status}
			if status == models.OrderStatusDelivered {
				request.TrackingNumber = "TRK-100"
			}
			require.NoError(t, usecase.UpdateStatus(context.Background(), shopClaims, created.OrderID, request))
		}

		var order models.MedicineOrder
		require.NoError(t, db.First(&order, created.OrderID).Error)
		assert.Equal(t, models.OrderStatusDelivered, order.Status)
		assert.Equal(t, "TRK-100", order.TrackingNumber)
	})
}

func TestCancelOrder(t *testing.T) {
	usecase, db, _ := setupOrderTest(t)
	patientClaims, _ := seedOrderPatient(t, db, "p1@example.com")
	shopClaims, shop := seedShop(t, db, "s1@example.com", 0)
	medicine := seedMedicine(t, db, shop.ShopID, "Paracetamol", 20, 50)

	created, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
		ShopID: shop.ShopID,
		Medicines: []requests.OrderMedicine{
			{MedicineID: medicine.MedicineID, MedicineName: "Paracetamol", Quantity: 4, Price: 20},
		},
		DeliveryAddress: "12 MG Road",
	})
	require.NoError(t, err)
	require.Equal(t, 46, medicineStock(t, db, medicine.MedicineID))

	t.Run("Other Patient Cannot Cancel", func(t *testing.T) {
		otherClaims, _ := seedOrderPatient(t, db, "p2@example.com")
		err := usecase.Cancel(context.Background(), otherClaims, created.OrderID, &requests.CancelOrder{
			CancellationReason: "not mine",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Cancellation Restores Stock", func(t *testing.T) {
		err := usecase.Cancel(context.Background(), patientClaims, created.OrderID, &requests.CancelOrder{
			CancellationReason: "ordered by mistake",
		})
		require.NoError(t, err)
		assert.Equal(t, 50, medicineStock(t, db, medicine.MedicineID))

		var order models.MedicineOrder
		require.NoError(t, db.First(&order, created.OrderID).Error)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)
	})

	t.Run("Cancelling Twice Is Rejected", func(t *testing.T) {
		err := usecase.Cancel(context.Background(), patientClaims, created.OrderID, &requests.CancelOrder{
			CancellationReason: "again",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Shop Cancels An Order It Cannot Fulfil", func(t *testing.T) {
		shopCancelled, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
			ShopID: shop.ShopID,
			Medicines: []requests.OrderMedicine{
				{MedicineID: medicine.MedicineID, MedicineName: "Paracetamol", Quantity: 2, Price: 20},
			},
			DeliveryAddress: "12 MG Road",
		})
		require.NoError(t, err)

		err = usecase.Cancel(context.Background(), shopClaims, shopCancelled.OrderID, &requests.CancelOrder{
			CancellationReason: "out of stock at counter",
		})
		require.NoError(t, err)

		var order models.MedicineOrder
		require.NoError(t, db.First(&order, shopCancelled.OrderID).Error)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)
		assert.Equal(t, 50, medicineStock(t, db, medicine.MedicineID))
	})

	t.Run("Other Shop Cannot Cancel", func(t *testing.T) {
		another, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
			ShopID: shop.ShopID,
			Medicines: []requests.OrderMedicine{
				{MedicineID: medicine.MedicineID, MedicineName: "Paracetamol", Quantity: 1, Price: 20},
			},
			DeliveryAddress: "12 MG Road",
		})
		require.NoError(t, err)

		otherShopClaims, _ := seedShop(t, db, "s9@example.com", 0)
		err = usecase.Cancel(context.Background(), otherShopClaims, another.OrderID, &requests.CancelOrder{
			CancellationReason: "not ours",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)

		require.NoError(t, usecase.Cancel(context.Background(), patientClaims, another.OrderID, &requests.CancelOrder{
			CancellationReason: "cleanup",
		}))
	})

	t.Run("Delivered Order Cannot Be Cancelled", func(t *testing.T) {
		delivered, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
			ShopID: shop.ShopID,
			Medicines: []requests.OrderMedicine{
				{MedicineID: medicine.MedicineID, MedicineName: "Paracetamol", Quantity: 1, Price: 20},
			},
			DeliveryAddress: "12 MG Road",
		})
		require.NoError(t, err)
		for _, status := range []string{models.OrderStatusProcessing, models.OrderStatusReady, models.OrderStatusDelivered} {
			require.NoError(t, usecase.UpdateStatus(context.Background(), shopClaims, delivered.OrderID, &requests.UpdateOrderStatus{Status: status}))
		}

		err = usecase.Cancel(context.Background(), patientClaims, delivered.OrderID, &requests.CancelOrder{
			CancellationReason: "too late",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestListOrders(t *testing.T) {
	usecase, db, _ := setupOrderTest(t)
	patientClaims, _ := seedOrderPatient(t, db, "p1@example.com")
	shopClaims, shop := seedShop(t, db, "s1@example.com", 10)
	medicine := seedMedicine(t, db, shop.ShopID, "Paracetamol", 20, 50)

	for i := 0; i < 2; i++ {
		_, err := usecase.Create(context.Background(), patientClaims, &requests.CreateMedicineOrder{
			ShopID: shop.ShopID,
			Medicines: []requests.OrderMedicine{
				{MedicineID: medicine.MedicineID, MedicineName: "Paracetamol", Quantity: 1, Price: 20},
			},
			DeliveryAddress: "12 MG Road",
		})
		require.NoError(t, err)
	}

	t.Run("Patient View", func(t *testing.T) {
		result, pagination, err := usecase.List(context.Background(), patientClaims, &requests.ListOrders{})
		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, 2, pagination.Total)
		assert.Len(t, result[0].Items, 1)
	})

	t.Run("Shop View", func(t *testing.T) {
		result, _, err := usecase.List(context.Background(), shopClaims, &requests.ListOrders{})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Doctor Role Is Rejected", func(t *testing.T) {
		_, _, err := usecase.List(context.Background(), &utils.TokenClaims{UserID: 1, Role: constvars.RoleDoctor}, &requests.ListOrders{})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

package main

import (
	"log"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/drivers/database"
	"medibridge-service/internal/app/models"
)

func main() {
	driverConfig := config.NewDriverConfig()
	db := database.NewMySQLDB(driverConfig)

	err := db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.DiagnosticCenter{},
		&models.MedicalShop{},
		&models.Medicine{},
		&models.Appointment{},
		&models.MedicineOrder{},
		&models.MedicineOrderItem{},
		&models.Prescription{},
		&models.PrescriptionMedicine{},
		&models.PrescriptionTest{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Println("Migration applied successfully")
}

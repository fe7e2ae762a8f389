package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/studiosandyyasmin/salon-scheduler/internal/config"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Professional{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.Block{},
		&models.Holiday{},
		&models.AppointmentHistory{},
		&models.MessageTemplate{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Um horário só pode ter um agendamento não cancelado por
	// profissional; cancelados liberam a vaga.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_active_slot
        ON appointments (professional_id, data, hora)
        WHERE status <> 'cancelado'
    `)

	seedAdmin(db, cfg)

	return db
}

// seedAdmin garante o usuário administrador a partir do ambiente.
// Nenhuma credencial fica no código.
func seedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("[db] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[db] failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[db] failed to seed admin: %v", err)
	}
}

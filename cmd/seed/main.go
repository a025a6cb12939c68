// Наполняет базу демонстрационными записями на прием.
// Использование: go run ./cmd/seed [-count N]
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const (
	patientIDMin = 100
	patientIDMax = 200
	doctorIDMin  = 1
	doctorIDMax  = 20
)

func main() {
	count := flag.Int("count", 50, "количество создаваемых записей")
	flag.Parse()

	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	faker := gofakeit.New(0)

	statuses := []domain.AppointmentStatus{
		domain.StatusPending,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	created := 0
	for i := 0; i < *count; i++ {
		patientID := faker.Number(patientIDMin, patientIDMax)
		doctorID := faker.Number(doctorIDMin, doctorIDMax)

		// Даты в окне -7..+14 дней от сегодня, чтобы статистика
		// и список доступных слотов были наполнены
		date := time.Now().AddDate(0, 0, faker.Number(-domain.StatsTrailingDays, 14)).Format(domain.DateFormat)
		slot := domain.SlotCatalog[faker.Number(0, len(domain.SlotCatalog)-1)]
		status := statuses[faker.Number(0, len(statuses)-1)]

		// Занятый Pending-слот пропускаем, уникальный индекс не даст вставить дубль
		result, err := db.Exec(
			`INSERT INTO appointments (patient_id, doctor_id, date, time, status)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT DO NOTHING`,
			patientID, doctorID, date, string(slot), string(status),
		)
		if err != nil {
			fmt.Printf("Failed to insert appointment: %v\n", err)
			os.Exit(1)
		}

		// ON CONFLICT DO NOTHING молча пропускает дубли, считаем только
		// реально вставленные строки
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			fmt.Printf("Failed to get rows affected: %v\n", err)
			os.Exit(1)
		}
		created += int(rowsAffected)
	}

	fmt.Printf("Seeded %d appointments\n", created)
}

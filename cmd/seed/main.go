package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/uptrace/bun"

	"agendo/internal/domain"
	"agendo/internal/schedule"
	"agendo/internal/store/postgres"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("AGENDO_DATABASE_URL")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		log.Fatal("AGENDO_DATABASE_URL is required")
	}

	db, err := postgres.Open(dsn, postgres.PoolConfig{})
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer db.Close()

	gofakeit.Seed(time.Now().UnixNano())

	ctx := context.Background()
	professionals, clients, err := seedPeople(ctx, db, 12, 60)
	if err != nil {
		log.Fatalf("seed people: %v", err)
	}
	if err := seedAppointments(ctx, db, professionals, clients, 300); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	log.Println("seed complete")
}

var specialtyNames = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"Physiotherapy",
}

func seedPeople(ctx context.Context, db *bun.DB, professionalCount, clientCount int) ([]domain.Professional, []domain.Client, error) {
	log.Printf("seeding %d specialties", len(specialtyNames))
	specialties := make([]domain.Specialty, 0, len(specialtyNames))
	for _, name := range specialtyNames {
		specialties = append(specialties, domain.Specialty{Name: name})
	}
	if _, err := db.NewInsert().Model(&specialties).Exec(ctx); err != nil {
		return nil, nil, fmt.Errorf("insert specialties: %w", err)
	}

	log.Printf("seeding %d professionals", professionalCount)
	professionals := make([]domain.Professional, 0, professionalCount)
	for i := 0; i < professionalCount; i++ {
		spec := specialties[gofakeit.Number(0, len(specialties)-1)]
		professionals = append(professionals, domain.Professional{
			Name:        gofakeit.Name(),
			SpecialtyID: spec.ID,
		})
	}
	if _, err := db.NewInsert().Model(&professionals).Exec(ctx); err != nil {
		return nil, nil, fmt.Errorf("insert professionals: %w", err)
	}

	log.Printf("seeding %d clients", clientCount)
	clients := make([]domain.Client, 0, clientCount)
	for i := 0; i < clientCount; i++ {
		clients = append(clients, domain.Client{
			Name:  gofakeit.Name(),
			Email: gofakeit.Email(),
			Phone: gofakeit.Phone(),
		})
	}
	if _, err := db.NewInsert().Model(&clients).Exec(ctx); err != nil {
		return nil, nil, fmt.Errorf("insert clients: %w", err)
	}

	return professionals, clients, nil
}

// seedAppointments books random half-hour-aligned slots over the next few
// weeks, walking each professional's day grid so the generated data never
// contains an overlap.
func seedAppointments(ctx context.Context, db *bun.DB, professionals []domain.Professional, clients []domain.Client, target int) error {
	log.Printf("seeding up to %d appointments", target)

	grid := schedule.DailyGrid()
	today := time.Now().UTC()

	appts := make([]domain.Appointment, 0, target)
	for day := 0; day < 28 && len(appts) < target; day++ {
		date := today.AddDate(0, 0, day).Format("2006-01-02")
		for p := range professionals {
			if len(appts) >= target {
				break
			}
			// Walk the grid in order, booking a slot now and then. Skipping
			// at least one slot after each booking keeps them disjoint.
			for i := 0; i < len(grid)-1; i++ {
				if gofakeit.Number(0, 9) < 8 {
					continue
				}
				length := gofakeit.Number(1, 3)
				if i+length >= len(grid) {
					length = len(grid) - 1 - i
				}
				pid := professionals[p].ID
				client := clients[gofakeit.Number(0, len(clients)-1)]
				appts = append(appts, domain.Appointment{
					ProfessionalID: &pid,
					ClientID:       &client.ID,
					Date:           date,
					StartTime:      grid[i],
					EndTime:        grid[i+length],
					Title:          gofakeit.Sentence(3),
					Description:    gofakeit.Sentence(8),
				})
				i += length
			}
		}
	}

	if len(appts) > target {
		appts = appts[:target]
	}
	if len(appts) == 0 {
		return nil
	}
	if _, err := db.NewInsert().Model(&appts).Exec(ctx); err != nil {
		return fmt.Errorf("insert appointments: %w", err)
	}

	log.Printf("appointments seeded: %d", len(appts))
	return nil
}

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rtservizi/fieldtrack/internal/db"
	"github.com/rtservizi/fieldtrack/internal/models"
)

// openTestStore opens a fresh SQLite-backed store for one test.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "fieldtrack-test.db")
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return New(conn)
}

func seedUser(t *testing.T, st *Store, username, role string) *models.User {
	t.Helper()
	user, errCreate := st.CreateUser(context.Background(), UserParams{
		FirstName:   "Test",
		LastName:    "Operator",
		Email:       username + "@example.com",
		PhoneNumber: "555-0100",
		Username:    username,
		Role:        role,
		Password:    "password-" + username,
	})
	if errCreate != nil {
		t.Fatalf("seed user %s: %v", username, errCreate)
	}
	return user
}

func seedClient(t *testing.T, st *Store, name string) *models.Client {
	t.Helper()
	client, errCreate := st.CreateClient(context.Background(), ClientParams{
		Name: name,
		City: "Torino",
	})
	if errCreate != nil {
		t.Fatalf("seed client %s: %v", name, errCreate)
	}
	return client
}

func seedPlant(t *testing.T, st *Store, clientID uint64, name string) *models.Plant {
	t.Helper()
	plant, errCreate := st.CreatePlant(context.Background(), PlantParams{
		Name:     name,
		ClientID: clientID,
	})
	if errCreate != nil {
		t.Fatalf("seed plant %s: %v", name, errCreate)
	}
	return plant
}

func seedMachine(t *testing.T, st *Store, plantID uint64, name string) *models.Machine {
	t.Helper()
	machine, errCreate := st.CreateMachine(context.Background(), MachineParams{
		Name:    name,
		Code:    "M-" + name,
		PlantID: plantID,
	})
	if errCreate != nil {
		t.Fatalf("seed machine %s: %v", name, errCreate)
	}
	return machine
}

func seedCommission(t *testing.T, st *Store, clientID uint64, code string) *models.Commission {
	t.Helper()
	commission, errCreate := st.CreateCommission(context.Background(), CommissionParams{
		Code:        code,
		Description: "commission " + code,
		ClientID:    clientID,
	})
	if errCreate != nil {
		t.Fatalf("seed commission %s: %v", code, errCreate)
	}
	return commission
}

func seedReport(t *testing.T, st *Store, operatorID uint64, work WorkRef, date time.Time) *models.Report {
	t.Helper()
	report, errCreate := st.CreateReport(context.Background(), ReportParams{
		Date:                 date,
		InterventionDuration: "4h",
		InterventionType:     "maintenance",
		InterventionLocation: "on site",
		Description:          "scheduled intervention",
		TripKms:              "12.5",
		Cost:                 "150.0",
		Work:                 work,
	}, operatorID)
	if errCreate != nil {
		t.Fatalf("seed report: %v", errCreate)
	}
	return report
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

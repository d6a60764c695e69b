package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDeleteClient_BlockedByCommission(t *testing.T) {
	st := openTestStore(t)
	client := seedClient(t, st, "Acme SpA")
	commission := seedCommission(t, st, client.ID, "C-100")

	errDelete := st.DeleteClient(context.Background(), client.ID)
	if !errors.Is(errDelete, ErrConflict) {
		t.Fatalf("expected ErrConflict while commission exists, got %v", errDelete)
	}

	if errDrop := st.DeleteCommission(context.Background(), commission.ID); errDrop != nil {
		t.Fatalf("delete commission: %v", errDrop)
	}
	if errDelete = st.DeleteClient(context.Background(), client.ID); errDelete != nil {
		t.Fatalf("expected delete to succeed after commissions removed, got %v", errDelete)
	}
}

func TestDeleteClient_BlockedByPlant(t *testing.T) {
	st := openTestStore(t)
	client := seedClient(t, st, "Beta Srl")
	plant := seedPlant(t, st, client.ID, "Plant Nord")

	errDelete := st.DeleteClient(context.Background(), client.ID)
	if !errors.Is(errDelete, ErrConflict) {
		t.Fatalf("expected ErrConflict while plant exists, got %v", errDelete)
	}

	if errDrop := st.DeletePlant(context.Background(), plant.ID); errDrop != nil {
		t.Fatalf("delete plant: %v", errDrop)
	}
	if errDelete = st.DeleteClient(context.Background(), client.ID); errDelete != nil {
		t.Fatalf("expected delete to succeed after plants removed, got %v", errDelete)
	}
}

func TestDeleteClient_NotFound(t *testing.T) {
	st := openTestStore(t)

	if errDelete := st.DeleteClient(context.Background(), 42); !errors.Is(errDelete, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", errDelete)
	}
}

func TestDeletePlant_BlockedByMachine(t *testing.T) {
	st := openTestStore(t)
	client := seedClient(t, st, "Acme SpA")
	plant := seedPlant(t, st, client.ID, "Plant Nord")
	machine := seedMachine(t, st, plant.ID, "Press 01")

	errDelete := st.DeletePlant(context.Background(), plant.ID)
	if !errors.Is(errDelete, ErrConflict) {
		t.Fatalf("expected ErrConflict while machine exists, got %v", errDelete)
	}

	if errDrop := st.DeleteMachine(context.Background(), machine.ID); errDrop != nil {
		t.Fatalf("delete machine: %v", errDrop)
	}
	if errDelete = st.DeletePlant(context.Background(), plant.ID); errDelete != nil {
		t.Fatalf("expected delete to succeed after machines removed, got %v", errDelete)
	}
}

func TestDeleteCommission_BlockedByReport(t *testing.T) {
	st := openTestStore(t)
	operator := seedUser(t, st, "mario", "Operatore")
	client := seedClient(t, st, "Acme SpA")
	commission := seedCommission(t, st, client.ID, "C-100")
	report := seedReport(t, st, operator.ID, CommissionRef(commission.ID), date(2024, time.June, 1))

	errDelete := st.DeleteCommission(context.Background(), commission.ID)
	if !errors.Is(errDelete, ErrConflict) {
		t.Fatalf("expected ErrConflict while report exists, got %v", errDelete)
	}

	if errDrop := st.DeleteReport(context.Background(), report.ID, operator.ID); errDrop != nil {
		t.Fatalf("delete report: %v", errDrop)
	}
	if errDelete = st.DeleteCommission(context.Background(), commission.ID); errDelete != nil {
		t.Fatalf("expected delete to succeed after reports removed, got %v", errDelete)
	}
}

func TestDeleteMachine_BlockedOnlyByMachineTypedReports(t *testing.T) {
	st := openTestStore(t)
	operator := seedUser(t, st, "mario", "Operatore")
	client := seedClient(t, st, "Acme SpA")
	plant := seedPlant(t, st, client.ID, "Plant Nord")
	machine := seedMachine(t, st, plant.ID, "Press 01")

	// A commission-typed report sharing the machine's numeric ID must not
	// block the delete: the probe matches on work type too. Both rows are
	// the first in their tables, so the IDs collide by construction.
	commission := seedCommission(t, st, client.ID, "C-100")
	if commission.ID != machine.ID {
		t.Fatalf("fixture expects colliding ids, got machine=%d commission=%d", machine.ID, commission.ID)
	}
	seedReport(t, st, operator.ID, CommissionRef(commission.ID), date(2024, time.June, 1))

	if errDelete := st.DeleteMachine(context.Background(), machine.ID); errDelete != nil {
		t.Fatalf("expected commission-typed report not to block machine delete, got %v", errDelete)
	}

	second := seedMachine(t, st, plant.ID, "Press 02")
	seedReport(t, st, operator.ID, MachineRef(second.ID), date(2024, time.June, 2))
	if errDelete := st.DeleteMachine(context.Background(), second.ID); !errors.Is(errDelete, ErrConflict) {
		t.Fatalf("expected ErrConflict while machine-typed report exists, got %v", errDelete)
	}
}

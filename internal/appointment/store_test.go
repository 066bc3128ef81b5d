package appointment

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pawmate/petcare-backend/internal/snapshot"
)

func newTestStore(t *testing.T, snaps snapshot.Store) *Store {
	t.Helper()
	return New(context.Background(), snaps, time.Second, zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestAddAppointmentGeneratesUniqueIDs(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())

	a := s.AddAppointment(Input{Date: "2025-06-01", Time: "09:00", Reason: "Vaccination", PetID: "pet-1"})
	b := s.AddAppointment(Input{Date: "2025-06-02", Time: "10:30", Reason: "Checkup", PetID: "pet-1"})

	if a.ID == "" || b.ID == "" {
		t.Fatalf("empty appointment ID")
	}
	if a.ID == b.ID {
		t.Fatalf("duplicate appointment ID %q", a.ID)
	}

	appts := s.Appointments()
	if len(appts) != 2 {
		t.Fatalf("appointments = %d, want 2", len(appts))
	}
	// Append order is preserved.
	if appts[0].ID != a.ID || appts[1].ID != b.ID {
		t.Fatalf("order not preserved: %+v", appts)
	}
}

func TestAddAppointmentDoesNotValidate(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())

	// The store accepts empty fields; callers validate before committing.
	appt := s.AddAppointment(Input{})
	if appt.ID == "" {
		t.Fatalf("empty ID")
	}
	if got := len(s.Appointments()); got != 1 {
		t.Fatalf("appointments = %d, want 1", got)
	}
}

func TestCancelAppointment(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	a := s.AddAppointment(Input{Date: "2025-06-01", Time: "09:00", Reason: "Checkup", PetID: "pet-1"})
	b := s.AddAppointment(Input{Date: "2025-06-02", Time: "10:30", Reason: "Checkup", PetID: "pet-1"})

	s.CancelAppointment(a.ID)

	appts := s.Appointments()
	if len(appts) != 1 || appts[0].ID != b.ID {
		t.Fatalf("appointments = %+v, want only %s", appts, b.ID)
	}
}

func TestCancelUnknownAppointmentIsNoop(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	s.AddAppointment(Input{Date: "2025-06-01", Time: "09:00", Reason: "Checkup", PetID: "pet-1"})

	s.CancelAppointment("does-not-exist")
	s.CancelAppointment("does-not-exist")

	if got := len(s.Appointments()); got != 1 {
		t.Fatalf("appointments = %d, want 1", got)
	}
}

func TestRemovePetLeavesAppointmentsDangling(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	p := s.AddPet(PetInput{Name: "Milo", Type: PetTypeDog})
	s.AddAppointment(Input{Date: "2025-06-01", Time: "09:00", Reason: "Checkup", PetID: p.ID})

	s.RemovePet(p.ID)

	if got := len(s.Pets()); got != 0 {
		t.Fatalf("pets = %d, want 0", got)
	}
	// No cascade: the appointment survives with a dangling reference.
	if got := len(s.Appointments()); got != 1 {
		t.Fatalf("appointments = %d, want 1", got)
	}
	if _, ok := s.PetByID(p.ID); ok {
		t.Fatalf("removed pet still resolvable")
	}

	// Booking against the removed pet still succeeds.
	appt := s.AddAppointment(Input{Date: "2025-06-02", Time: "10:30", Reason: "Checkup", PetID: p.ID})
	if appt.PetID != p.ID {
		t.Fatalf("PetID = %q, want %q", appt.PetID, p.ID)
	}
}

func TestRemoveUnknownPetIsNoop(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	s.AddPet(PetInput{Name: "Milo", Type: PetTypeDog})

	s.RemovePet("does-not-exist")

	if got := len(s.Pets()); got != 1 {
		t.Fatalf("pets = %d, want 1", got)
	}
}

func TestDraftSettersAreIndependent(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())

	// Selecting a time with no date selected is allowed; ordering is the
	// caller's responsibility.
	s.SetSelectedTime(strPtr("10:30"))

	d := s.Draft()
	if d.SelectedDate != nil {
		t.Fatalf("SelectedDate = %v, want nil", *d.SelectedDate)
	}
	if d.SelectedTime == nil || *d.SelectedTime != "10:30" {
		t.Fatalf("SelectedTime = %v, want 10:30", d.SelectedTime)
	}

	s.SetSelectedDate(strPtr("2025-06-01"))
	s.SetAddress("12 Main St")
	s.SetHomeVisit(true)

	d = s.Draft()
	if *d.SelectedTime != "10:30" {
		t.Fatalf("SetSelectedDate touched SelectedTime")
	}
	if d.Address != "12 Main St" || !d.HomeVisit {
		t.Fatalf("draft = %+v", d)
	}
}

func TestResetFormRestoresDefaults(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())

	s.SetSelectedDate(strPtr("2025-06-01"))
	s.SetSelectedTime(strPtr("09:00"))
	s.SetSelectedReason(strPtr("Vaccination"))
	s.SetSelectedPet(strPtr("pet-1"))
	s.SetAddress("12 Main St")
	s.SetNotes("ring the bell")
	s.SetHomeVisit(true)

	s.ResetForm()

	d := s.Draft()
	if d.SelectedDate != nil || d.SelectedTime != nil || d.SelectedReason != nil || d.SelectedPet != nil {
		t.Fatalf("selections not cleared: %+v", d)
	}
	if d.Address != "" || d.Notes != "" || d.HomeVisit {
		t.Fatalf("fields not cleared: %+v", d)
	}
}

func TestRoundTripThroughSnapshot(t *testing.T) {
	snaps := snapshot.NewMemory()

	s := newTestStore(t, snaps)
	p1 := s.AddPet(PetInput{Name: "Milo", Type: PetTypeDog, Breed: "beagle"})
	p2 := s.AddPet(PetInput{Name: "Luna", Type: PetTypeCat})
	a1 := s.AddAppointment(Input{Date: "2025-06-01", Time: "09:00", Reason: "Checkup", PetID: p1.ID})
	s.SetSelectedDate(strPtr("2025-06-02"))
	s.SetNotes("nervous around strangers")
	s.Flush()

	restored := newTestStore(t, snaps)

	pets := restored.Pets()
	if len(pets) != 2 || pets[0].ID != p1.ID || pets[1].ID != p2.ID {
		t.Fatalf("pets = %+v", pets)
	}
	appts := restored.Appointments()
	if len(appts) != 1 || appts[0] != a1 {
		t.Fatalf("appointments = %+v, want %+v", appts, a1)
	}
	d := restored.Draft()
	if d.SelectedDate == nil || *d.SelectedDate != "2025-06-02" {
		t.Fatalf("SelectedDate = %v, want 2025-06-02", d.SelectedDate)
	}
	if d.Notes != "nervous around strangers" {
		t.Fatalf("Notes = %q", d.Notes)
	}
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	snaps := snapshot.NewMemory()
	if err := snaps.Save(context.Background(), StorageName, []byte(`[1,2,3`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	s := newTestStore(t, snaps)

	if got := len(s.Pets()); got != 0 {
		t.Fatalf("pets = %d, want 0", got)
	}
	if got := len(s.Appointments()); got != 0 {
		t.Fatalf("appointments = %d, want 0", got)
	}
	if d := s.Draft(); d != (Draft{}) {
		t.Fatalf("draft = %+v, want zero", d)
	}
}

func TestSubscribeFiresAfterMutation(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.AddPet(PetInput{Name: "Milo", Type: PetTypeDog})
	s.SetNotes("hi")
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}

	unsubscribe()
	s.ResetForm()
	if calls != 2 {
		t.Fatalf("subscriber ran after unsubscribe")
	}
}

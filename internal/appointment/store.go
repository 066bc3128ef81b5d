package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawmate/petcare-backend/internal/snapshot"
)

// StorageName is the fixed snapshot key for this store.
const StorageName = "appointment-storage"

type state struct {
	Appointments []Appointment `json:"appointments"`
	Pets         []Pet         `json:"pets"`
	Draft        Draft         `json:"draft"`
}

func defaultState() state {
	return state{
		Appointments: []Appointment{},
		Pets:         []Pet{},
	}
}

// Store owns the registered pets, the booked appointments and the single
// in-flight booking draft. Mutations update memory synchronously and write
// the full state snapshot through to durable storage on a best-effort basis.
type Store struct {
	mu     sync.RWMutex
	st     state
	subs   map[int]func()
	nextID int

	writer *snapshot.Writer
	log    *zap.Logger
}

// New creates the store and rehydrates it from snaps. A missing snapshot
// means a first run; a corrupt one falls back to defaults rather than
// failing startup.
func New(ctx context.Context, snaps snapshot.Store, saveTimeout time.Duration, log *zap.Logger) *Store {
	s := &Store{
		st:     defaultState(),
		subs:   make(map[int]func()),
		writer: snapshot.NewWriter(snaps, StorageName, saveTimeout, log),
		log:    log,
	}
	s.rehydrate(ctx, snaps)
	return s
}

func (s *Store) rehydrate(ctx context.Context, snaps snapshot.Store) {
	data, err := snaps.Load(ctx, StorageName)
	if err != nil {
		if !errors.Is(err, snapshot.ErrNotFound) {
			s.log.Warn("snapshot load failed, starting empty",
				zap.String("name", StorageName),
				zap.Error(err))
		}
		return
	}

	st := defaultState()
	if err := json.Unmarshal(data, &st); err != nil {
		s.log.Warn("corrupt snapshot, starting empty",
			zap.String("name", StorageName),
			zap.Error(err))
		return
	}
	if st.Appointments == nil {
		st.Appointments = []Appointment{}
	}
	if st.Pets == nil {
		st.Pets = []Pet{}
	}
	s.st = st
}

// AddAppointment generates an ID, appends and persists. No validation of
// field presence happens here; callers validate before committing a draft.
func (s *Store) AddAppointment(in Input) Appointment {
	s.mu.Lock()
	appt := Appointment{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Time:      in.Time,
		Reason:    in.Reason,
		PetID:     in.PetID,
		Address:   in.Address,
		Notes:     in.Notes,
		HomeVisit: in.HomeVisit,
	}
	s.st.Appointments = append(s.st.Appointments, appt)
	data := s.encode()
	s.mu.Unlock()

	s.mutated(data)
	return appt
}

// CancelAppointment removes the matching appointment. Unknown IDs are a
// silent no-op.
func (s *Store) CancelAppointment(id string) {
	s.mu.Lock()
	kept := s.st.Appointments[:0]
	for _, a := range s.st.Appointments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.st.Appointments = kept
	data := s.encode()
	s.mu.Unlock()

	s.mutated(data)
}

func (s *Store) AddPet(in PetInput) Pet {
	s.mu.Lock()
	p := Pet{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Type:  in.Type,
		Breed: in.Breed,
		Age:   in.Age,
	}
	s.st.Pets = append(s.st.Pets, p)
	data := s.encode()
	s.mu.Unlock()

	s.mutated(data)
	return p
}

// RemovePet removes the matching pet. Appointments referencing it are left
// in place with a dangling PetID.
func (s *Store) RemovePet(id string) {
	s.mu.Lock()
	kept := s.st.Pets[:0]
	for _, p := range s.st.Pets {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.st.Pets = kept
	data := s.encode()
	s.mu.Unlock()

	s.mutated(data)
}

// Draft setters. Each one replaces exactly one field with no cross-field
// checks; step ordering is the caller's concern.

func (s *Store) SetSelectedDate(date *string) {
	s.setDraft(func(d *Draft) { d.SelectedDate = date })
}

func (s *Store) SetSelectedTime(t *string) {
	s.setDraft(func(d *Draft) { d.SelectedTime = t })
}

func (s *Store) SetSelectedReason(reason *string) {
	s.setDraft(func(d *Draft) { d.SelectedReason = reason })
}

func (s *Store) SetSelectedPet(petID *string) {
	s.setDraft(func(d *Draft) { d.SelectedPet = petID })
}

func (s *Store) SetAddress(address string) {
	s.setDraft(func(d *Draft) { d.Address = address })
}

func (s *Store) SetNotes(notes string) {
	s.setDraft(func(d *Draft) { d.Notes = notes })
}

func (s *Store) SetHomeVisit(homeVisit bool) {
	s.setDraft(func(d *Draft) { d.HomeVisit = homeVisit })
}

// ResetForm restores all seven draft fields to their defaults in one update.
func (s *Store) ResetForm() {
	s.setDraft(func(d *Draft) { *d = Draft{} })
}

func (s *Store) setDraft(apply func(*Draft)) {
	s.mu.Lock()
	apply(&s.st.Draft)
	data := s.encode()
	s.mu.Unlock()

	s.mutated(data)
}

// Accessors return copies; callers cannot mutate store state through them.

func (s *Store) Appointments() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Appointment, len(s.st.Appointments))
	copy(out, s.st.Appointments)
	return out
}

func (s *Store) Pets() []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Pet, len(s.st.Pets))
	copy(out, s.st.Pets)
	return out
}

func (s *Store) Draft() Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Draft
}

// PetByID reports the pet and whether it still exists.
func (s *Store) PetByID(id string) (Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.st.Pets {
		if p.ID == id {
			return p, true
		}
	}
	return Pet{}, false
}

// Subscribe registers fn to run after every mutation, once the new state is
// observable. Returns an unsubscribe func.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Flush waits for pending snapshot writes. Used on shutdown and in tests.
func (s *Store) Flush() {
	s.writer.Flush()
}

// encode must be called with mu held.
func (s *Store) encode() []byte {
	data, err := json.Marshal(s.st)
	if err != nil {
		// state is plain data; marshal cannot realistically fail
		s.log.Error("encode state failed", zap.Error(err))
		return nil
	}
	return data
}

func (s *Store) mutated(data []byte) {
	if data != nil {
		s.writer.Write(data)
	}

	s.mu.RLock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}

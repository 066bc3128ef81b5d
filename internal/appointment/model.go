package appointment

type PetType string

const (
	PetTypeDog   PetType = "dog"
	PetTypeCat   PetType = "cat"
	PetTypeOther PetType = "other"
)

type Pet struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  PetType `json:"type"`
	Breed string  `json:"breed,omitempty"`
	Age   *int    `json:"age,omitempty"`
}

// Appointment is a confirmed booking. Immutable once created; the only
// lifecycle operation after creation is cancellation. PetID is not checked
// against the pet list; a pet removed later leaves a dangling reference
// that consumers resolve to a display fallback.
type Appointment struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // ISO calendar date, YYYY-MM-DD
	Time      string `json:"time"` // HH:MM, 24h
	Reason    string `json:"reason"`
	PetID     string `json:"petId"`
	Address   string `json:"address,omitempty"`
	Notes     string `json:"notes,omitempty"`
	HomeVisit bool   `json:"isHomeVisit"`
}

// Draft is the in-progress booking form. Each field is set independently
// during the multi-step flow; nothing here becomes an Appointment until the
// caller explicitly commits.
type Draft struct {
	SelectedDate   *string `json:"selectedDate"`
	SelectedTime   *string `json:"selectedTime"`
	SelectedReason *string `json:"selectedReason"`
	SelectedPet    *string `json:"selectedPet"`
	Address        string  `json:"address"`
	Notes          string  `json:"notes"`
	HomeVisit      bool    `json:"isHomeVisit"`
}

// PetInput is a Pet without its generated ID.
type PetInput struct {
	Name  string
	Type  PetType
	Breed string
	Age   *int
}

// Input is an Appointment without its generated ID. The store performs no
// field validation; callers validate before committing.
type Input struct {
	Date      string
	Time      string
	Reason    string
	PetID     string
	Address   string
	Notes     string
	HomeVisit bool
}

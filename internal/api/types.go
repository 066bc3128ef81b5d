package api

import (
	"bytes"
	"encoding/json"

	"github.com/pawmate/petcare-backend/internal/appointment"
	"github.com/pawmate/petcare-backend/internal/cart"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Pets

type createPetRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Breed string `json:"breed"`
	Age   *int   `json:"age"`
}

// Appointments

type appointmentRequest struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
	PetID     string `json:"petId"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
	HomeVisit bool   `json:"isHomeVisit"`
}

// appointmentView augments an appointment with the display name of its pet,
// resolved at read time so a removed pet degrades to a fallback instead of
// breaking the list.
type appointmentView struct {
	appointment.Appointment
	PetName string `json:"petName"`
}

// Booking draft

// optionalString distinguishes an absent PATCH field from an explicit null:
// absent leaves the draft field alone, null clears it.
type optionalString struct {
	set   bool
	value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.set = true
	if bytes.Equal(b, []byte("null")) {
		o.value = nil
		return nil
	}
	return json.Unmarshal(b, &o.value)
}

type draftPatchRequest struct {
	SelectedDate   optionalString `json:"selectedDate"`
	SelectedTime   optionalString `json:"selectedTime"`
	SelectedReason optionalString `json:"selectedReason"`
	SelectedPet    optionalString `json:"selectedPet"`
	Address        *string        `json:"address"`
	Notes          *string        `json:"notes"`
	HomeVisit      *bool          `json:"isHomeVisit"`
}

// Cart

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"` // omitted means 1
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items     []cart.Item `json:"items"`
	ItemCount int         `json:"itemCount"`
	Total     float64     `json:"total"`
}

package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pawmate/petcare-backend/internal/appointment"
	"github.com/pawmate/petcare-backend/internal/catalog"
)

// unknownPetName is the display fallback for appointments whose pet has
// been removed.
const unknownPetName = "Unknown pet"

func createPetHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "invalid_pet", "name is required")
			return
		}

		petType := appointment.PetType(req.Type)
		switch petType {
		case appointment.PetTypeDog, appointment.PetTypeCat, appointment.PetTypeOther:
		default:
			writeError(w, http.StatusBadRequest, "invalid_pet", "type must be dog, cat or other")
			return
		}

		if req.Age != nil && *req.Age < 0 {
			writeError(w, http.StatusBadRequest, "invalid_pet", "age must not be negative")
			return
		}

		p := store.AddPet(appointment.PetInput{
			Name:  strings.TrimSpace(req.Name),
			Type:  petType,
			Breed: strings.TrimSpace(req.Breed),
			Age:   req.Age,
		})

		writeJSON(w, http.StatusCreated, p)
	}
}

func listPetsHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Pets())
	}
}

func deletePetHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Removing an unknown pet is a no-op, so this is idempotent.
		store.RemovePet(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// createAppointmentHandler commits an appointment directly, bypassing the
// draft. The store accepts whatever fields it is given; screens that want
// validation go through /booking/confirm instead.
func createAppointmentHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		appt := store.AddAppointment(appointment.Input{
			Date:      req.Date,
			Time:      req.Time,
			Reason:    req.Reason,
			PetID:     req.PetID,
			Address:   req.Address,
			Notes:     req.Notes,
			HomeVisit: req.HomeVisit,
		})

		writeJSON(w, http.StatusCreated, appt)
	}
}

func listAppointmentsHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appts := store.Appointments()

		out := make([]appointmentView, 0, len(appts))
		for _, a := range appts {
			name := unknownPetName
			if p, ok := store.PetByID(a.PetID); ok {
				name = p.Name
			}
			out = append(out, appointmentView{Appointment: a, PetName: name})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func cancelAppointmentHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.CancelAppointment(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func getDraftHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Draft())
	}
}

// patchDraftHandler applies any subset of the seven draft fields. Each
// field maps to one independent setter; there is no cross-field checking
// here, matching the step-by-step booking flow.
func patchDraftHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req draftPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if req.SelectedDate.set {
			store.SetSelectedDate(req.SelectedDate.value)
		}
		if req.SelectedTime.set {
			store.SetSelectedTime(req.SelectedTime.value)
		}
		if req.SelectedReason.set {
			store.SetSelectedReason(req.SelectedReason.value)
		}
		if req.SelectedPet.set {
			store.SetSelectedPet(req.SelectedPet.value)
		}
		if req.Address != nil {
			store.SetAddress(*req.Address)
		}
		if req.Notes != nil {
			store.SetNotes(*req.Notes)
		}
		if req.HomeVisit != nil {
			store.SetHomeVisit(*req.HomeVisit)
		}

		writeJSON(w, http.StatusOK, store.Draft())
	}
}

func resetDraftHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ResetForm()
		writeJSON(w, http.StatusOK, store.Draft())
	}
}

// confirmDraftHandler is the one place that turns a draft into an
// appointment. Completeness is checked here, on the caller side, so a
// partial draft can never silently become an appointment.
func confirmDraftHandler(store *appointment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := store.Draft()

		missing := draftMissingFields(d)
		if len(missing) > 0 {
			writeError(w, http.StatusUnprocessableEntity, "incomplete_draft",
				"missing: "+strings.Join(missing, ", "))
			return
		}

		appt := store.AddAppointment(appointment.Input{
			Date:      *d.SelectedDate,
			Time:      *d.SelectedTime,
			Reason:    *d.SelectedReason,
			PetID:     *d.SelectedPet,
			Address:   d.Address,
			Notes:     d.Notes,
			HomeVisit: d.HomeVisit,
		})
		store.ResetForm()

		writeJSON(w, http.StatusCreated, appt)
	}
}

func draftMissingFields(d appointment.Draft) []string {
	var missing []string
	if d.SelectedDate == nil || *d.SelectedDate == "" {
		missing = append(missing, "date")
	}
	if d.SelectedTime == nil || *d.SelectedTime == "" {
		missing = append(missing, "time")
	}
	if d.SelectedReason == nil || *d.SelectedReason == "" {
		missing = append(missing, "reason")
	}
	if d.SelectedPet == nil || *d.SelectedPet == "" {
		missing = append(missing, "pet")
	}
	if d.HomeVisit && strings.TrimSpace(d.Address) == "" {
		missing = append(missing, "address")
	}
	return missing
}

func listReasonsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.ConsultationReasons())
	}
}

func listRegionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.DeliveryRegions())
	}
}

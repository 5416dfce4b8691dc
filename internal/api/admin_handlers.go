package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentacar/internal/db"
	"rentacar/internal/repository"
	"rentacar/internal/service"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	Service *service.BookingService
}

func NewAdminHandler(svc *service.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	var f repository.BookingFilter
	if v := r.URL.Query().Get("vehicle_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid vehicle_id", http.StatusBadRequest)
			return
		}
		f.VehicleID = id
	}
	f.CustomerID = r.URL.Query().Get("customer_id")

	list, err := h.Service.ListBookings(f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if _, err := h.Service.CancelBooking(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Booking deleted"})
}

func (h *AdminHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v db.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	v.ID = 0
	v.Available = true
	if err := h.Service.SaveVehicle(&v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *AdminHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var v db.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	v.ID = id
	if err := h.Service.SaveVehicle(&v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

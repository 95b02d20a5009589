package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Aishwarya-Deepak/FSD/internal/domain"
	"github.com/Aishwarya-Deepak/FSD/internal/repository"
)

type ContactHandler struct {
	repo repository.ContactRepository
}

func NewContactHandler(repo repository.ContactRepository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

type ContactRequestDTO struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	City     string `json:"city"`
}

// Get is a sanity endpoint; it never touches the store.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, MessageResponse{Message: "This is the contact page"})
}

// Save persists a contact-form submission. Any subset of fields is accepted;
// only the JSON itself has to parse.
func (h *ContactHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req ContactRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	submission := &domain.ContactSubmission{
		FullName: req.FullName,
		Email:    req.Email,
		Message:  req.Message,
		City:     req.City,
	}

	if err := h.repo.SaveContact(r.Context(), submission); err != nil {
		log.Printf("error saving contact: %v", err)
		respondError(w, http.StatusInternalServerError, "", "Failed to save contact")
		return
	}

	log.Println("new contact has been saved")
	respondJSON(w, http.StatusCreated, MessageResponse{Message: "Contact saved successfully"})
}

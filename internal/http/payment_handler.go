package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Aishwarya-Deepak/FSD/internal/payment"
)

type PaymentHandler struct {
	charger payment.Charger
}

func NewPaymentHandler(charger payment.Charger) *PaymentHandler {
	return &PaymentHandler{charger: charger}
}

type PaymentRequestDTO struct {
	Product string   `json:"product"`
	Token   TokenDTO `json:"token"`
	Price   float64  `json:"price"`
}

type TokenDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Charge proxies the posted payment straight to the processor. All processor
// failures collapse to one generic 500 body; callers cannot tell a declined
// card from an outage.
func (h *PaymentHandler) Charge(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	charge, err := h.charger.ChargeCard(r.Context(), &payment.ChargeRequest{
		Product:    req.Product,
		TokenID:    req.Token.ID,
		TokenEmail: req.Token.Email,
		Price:      req.Price,
	})
	if err != nil {
		log.Printf("stripe payment error: %v", err)
		respondError(w, http.StatusInternalServerError, "", "Payment failed")
		return
	}

	respondJSON(w, http.StatusOK, charge)
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Aishwarya-Deepak/FSD/internal/domain"
)

type ContactRepoMock struct {
	saved []*domain.ContactSubmission
	err   error
}

func (m *ContactRepoMock) SaveContact(_ context.Context, submission *domain.ContactSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, submission)
	return nil
}

func TestContactGet_SanityMessage(t *testing.T) {
	handler := NewContactHandler(&ContactRepoMock{})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/contact", nil)

	handler.Get(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response MessageResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Message != "This is the contact page" {
		t.Errorf("Expected sanity message, got '%s'", response.Message)
	}
}

func TestContactSave_Success(t *testing.T) {
	repo := &ContactRepoMock{}
	handler := NewContactHandler(repo)
	recorder := httptest.NewRecorder()

	body := `{"fullName":"Jane Doe","email":"jane@example.com","message":"hello","city":"Pune"}`
	request := httptest.NewRequest("POST", "/contact", strings.NewReader(body))

	handler.Save(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("Expected exactly 1 saved submission, got %d", len(repo.saved))
	}

	got := repo.saved[0]
	if got.FullName != "Jane Doe" || got.Email != "jane@example.com" || got.Message != "hello" || got.City != "Pune" {
		t.Errorf("Saved submission does not match posted fields: %+v", got)
	}

	var response MessageResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Message != "Contact saved successfully" {
		t.Errorf("Expected success message, got '%s'", response.Message)
	}
}

func TestContactSave_PartialFields(t *testing.T) {
	repo := &ContactRepoMock{}
	handler := NewContactHandler(repo)
	recorder := httptest.NewRecorder()

	// No field is required; whatever subset arrives is stored.
	request := httptest.NewRequest("POST", "/contact", strings.NewReader(`{"email":"x@y.z"}`))

	handler.Save(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("Expected 1 saved submission, got %d", len(repo.saved))
	}
	if repo.saved[0].Email != "x@y.z" || repo.saved[0].FullName != "" {
		t.Errorf("Unexpected saved submission: %+v", repo.saved[0])
	}
}

func TestContactSave_StoreFailure(t *testing.T) {
	repo := &ContactRepoMock{err: errors.New("store outage")}
	handler := NewContactHandler(repo)
	recorder := httptest.NewRecorder()

	body := `{"fullName":"Jane Doe"}`
	request := httptest.NewRequest("POST", "/contact", strings.NewReader(body))

	handler.Save(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
	if len(repo.saved) != 0 {
		t.Errorf("Expected no saved submission, got %d", len(repo.saved))
	}

	var response ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Error != "Failed to save contact" {
		t.Errorf("Expected generic error body, got '%s'", response.Error)
	}
}

func TestContactSave_MalformedJSON(t *testing.T) {
	repo := &ContactRepoMock{}
	handler := NewContactHandler(repo)
	recorder := httptest.NewRecorder()

	request := httptest.NewRequest("POST", "/contact", strings.NewReader(`{not json`))

	handler.Save(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	if len(repo.saved) != 0 {
		t.Errorf("Expected no saved submission, got %d", len(repo.saved))
	}
}

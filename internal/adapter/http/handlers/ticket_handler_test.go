package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/http/handlers/mocks"
	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTicketHandler_CreateTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets", h.CreateTicket)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets", h.CreateTicket)

		uc.EXPECT().
			CreateTicket(gomock.Any(), usecase.CreateTicketInput{ClientID: "c-1", Title: "Server down", Priority: entities.TicketPriorityHigh}).
			Return(entities.Ticket{ID: "t-1", ClientID: "c-1", Title: "Server down", Status: entities.TicketStatusOpen, Priority: entities.TicketPriorityHigh}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets", bytes.NewBufferString(`{"client_id":"c-1","title":"Server down","priority":"high"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.POST("/v1/tickets", h.CreateTicket)

		uc.EXPECT().
			CreateTicket(gomock.Any(), gomock.Any()).
			Return(entities.Ticket{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/tickets", bytes.NewBufferString(`{"client_id":"ghost","title":"Server down"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTicketHandler_UpdateTicketStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("closed ticket maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:ticket_id", h.UpdateTicketStatus)

		uc.EXPECT().
			UpdateStatus(gomock.Any(), "t-1", entities.TicketStatusInProgress).
			Return(entities.Ticket{}, usecase.ErrTicketAlreadyClosed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-1", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["code"] != "TICKET_CLOSED" {
			t.Fatalf("expected TICKET_CLOSED, got %v", body["code"])
		}
	})

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:ticket_id", h.UpdateTicketStatus)

		uc.EXPECT().
			UpdateStatus(gomock.Any(), "t-1", entities.TicketStatus("frozen")).
			Return(entities.Ticket{}, usecase.ErrInvalidTicketStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-1", bytes.NewBufferString(`{"status":"frozen"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTicketHandler_CloseTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITicketUseCase(ctrl)
	h := NewTicketHandler(uc)

	r := gin.New()
	r.POST("/v1/tickets/:ticket_id/close", h.CloseTicket)

	uc.EXPECT().
		CloseTicket(gomock.Any(), "t-1").
		Return(entities.Ticket{ID: "t-1", Status: entities.TicketStatusClosed, PrebillingQueued: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/tickets/t-1/close", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "closed" || body["prebilling_queued"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestTicketHandler_PrebillingQueue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITicketUseCase(ctrl)
	h := NewTicketHandler(uc)

	r := gin.New()
	r.GET("/v1/billing/prebilling-queue", h.PrebillingQueue)

	uc.EXPECT().
		PrebillingQueue(gomock.Any()).
		Return([]string{"t-2", "t-1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/billing/prebilling-queue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		TicketIDs []string `json:"ticket_ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.TicketIDs) != 2 || body.TicketIDs[0] != "t-2" {
		t.Fatalf("unexpected queue: %v", body.TicketIDs)
	}
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acctfirm/backoffice-go/internal/domain/payroll"
	"github.com/acctfirm/backoffice-go/internal/handler/http/response"
	"github.com/acctfirm/backoffice-go/internal/pkg/jwt"
	snapshotService "github.com/acctfirm/backoffice-go/internal/service/snapshot"
)

type SnapshotHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetLatest(w http.ResponseWriter, r *http.Request)
	GetVersion(w http.ResponseWriter, r *http.Request)
}

type finalizeRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type snapshotHandlerImpl struct {
	service *snapshotService.Service
	jwt     jwt.Service
}

func NewSnapshotHandler(service *snapshotService.Service, jwtService jwt.Service) SnapshotHandler {
	return &snapshotHandlerImpl{service: service, jwt: jwtService}
}

func monthParam(r *http.Request) (payroll.Month, error) {
	return payroll.ParseMonth(chi.URLParam(r, "month"))
}

func (h *snapshotHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	m, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.service.Preview(r.Context(), m)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *snapshotHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	m, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req finalizeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	actor := h.jwt.ActorFromContext(r.Context())
	snap, err := h.service.Finalize(r.Context(), m, req.Notes, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll snapshot finalized", snap)
}

func (h *snapshotHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	m, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summaries, err := h.service.List(r.Context(), m)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

func (h *snapshotHandlerImpl) GetLatest(w http.ResponseWriter, r *http.Request) {
	m, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	snap, err := h.service.Latest(r.Context(), m)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snap)
}

func (h *snapshotHandlerImpl) GetVersion(w http.ResponseWriter, r *http.Request) {
	m, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	version, err := strconv.Atoi(chi.URLParam(r, "version"))
	if err != nil || version < 1 {
		response.BadRequest(w, "Version must be a positive integer", nil)
		return
	}

	snap, err := h.service.Get(r.Context(), m, version)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snap)
}

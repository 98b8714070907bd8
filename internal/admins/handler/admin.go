package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Vinaypenke01/Elite-Cars/internal/admins/service"
	httputil "github.com/Vinaypenke01/Elite-Cars/pkg/http"
	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

type AdminHandler struct {
	service service.AdminService
	guard   func(httprouter.Handle) httprouter.Handle
	log     *logger.Logger
}

func NewAdminHandler(service service.AdminService, guard func(httprouter.Handle) httprouter.Handle, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

func (h *AdminHandler) Upsert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var profile model.AdminProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Upsert", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Upsert(r.Context(), &profile); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upsert", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, profile); err != nil {
		h.log.Error("failed to write created response", "handler", "Upsert", "operation", "WriteCreated", "error", err)
	}
}

func (h *AdminHandler) GetByUID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	uid := ps.ByName("uid")

	profile, err := h.service.GetByUID(r.Context(), uid)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByUID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, profile); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByUID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AdminHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/admins", h.guard(h.Upsert))
	router.GET("/api/v1/admins/id/:uid", h.guard(h.GetByUID))
}

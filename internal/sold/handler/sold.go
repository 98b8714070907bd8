package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/Vinaypenke01/Elite-Cars/internal/sold/service"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	httputil "github.com/Vinaypenke01/Elite-Cars/pkg/http"
	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
)

type SoldHandler struct {
	service service.SoldService
	log     *logger.Logger
}

func NewSoldHandler(service service.SoldService, log *logger.Logger) *SoldHandler {
	return &SoldHandler{
		service: service,
		log:     log,
	}
}

func (h *SoldHandler) GetRecent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid limit parameter: %s", limitStr))); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "GetRecent", "operation", "WriteError", "error", writeErr)
			}
			return
		}
	}

	records, err := h.service.GetRecent(r.Context(), limit)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetRecent", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, records); err != nil {
		h.log.Error("failed to write success response", "handler", "GetRecent", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SoldHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/sold", h.GetRecent)
}

package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/Vinaypenke01/Elite-Cars/internal/vehicles/service"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	httputil "github.com/Vinaypenke01/Elite-Cars/pkg/http"
	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
	"github.com/Vinaypenke01/Elite-Cars/pkg/storage"
)

// formField is the multipart field carrying the image files.
const formField = "images"

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

type ImageHandler struct {
	store    *storage.ImageStore
	vehicles service.VehicleService
	guard    func(httprouter.Handle) httprouter.Handle
	log      *logger.Logger
}

func NewImageHandler(store *storage.ImageStore, vehicles service.VehicleService, guard func(httprouter.Handle) httprouter.Handle, log *logger.Logger) *ImageHandler {
	return &ImageHandler{
		store:    store,
		vehicles: vehicles,
		guard:    guard,
		log:      log,
	}
}

// Upload fans a multipart image batch out to object storage and returns
// the public URLs in the order the files were attached.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vehicleID := ps.ByName("id")

	// Uploading against a deleted or bogus vehicle would strand blobs
	// under a key nobody references.
	if _, err := h.vehicles.GetByID(r.Context(), vehicleID); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid multipart form")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	fileHeaders := r.MultipartForm.File[formField]
	if len(fileHeaders) == 0 {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("No image files attached")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	files := make([]storage.ImageFile, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
		if !allowedExtensions[ext] {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Unsupported image type: "+header.Filename)); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
			}
			return
		}

		file, err := header.Open()
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Unreadable image file: "+header.Filename)); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
			}
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Unreadable image file: "+header.Filename)); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
			}
			return
		}

		files = append(files, storage.ImageFile{
			Data:        data,
			Ext:         ext,
			ContentType: header.Header.Get("Content-Type"),
		})
	}

	urls, err := h.store.UploadMany(r.Context(), files, vehicleID)
	if err != nil {
		h.log.Error("Image batch upload failed", "vehicle_id", vehicleID, "count", len(files), "error", err)
		if writeErr := httputil.WriteError(w, apperrors.Internal("Failed to upload images", err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, map[string]any{"urls": urls}); err != nil {
		h.log.Error("failed to write created response", "handler", "Upload", "operation", "WriteCreated", "error", err)
	}
}

func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	imageURL := r.URL.Query().Get("url")
	if imageURL == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("The 'url' query parameter is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := h.store.DeleteByURL(r.Context(), imageURL); err != nil {
		if errors.Is(err, storage.ErrBadObjectURL) {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("URL does not reference a stored image")); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
			}
			return
		}
		h.log.Error("Image delete failed", "url", imageURL, "error", err)
		if writeErr := httputil.WriteError(w, apperrors.Internal("Failed to delete image", err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ImageHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/vehicles/id/:id/images", h.guard(h.Upload))
	router.DELETE("/api/v1/images", h.guard(h.Delete))
}

package http

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tugasgi/attendance-backend-go/internal/domain/fieldvisit"
	"github.com/tugasgi/attendance-backend-go/internal/handler/http/response"
)

type FieldVisitHandler interface {
	CreateFieldVisit(w http.ResponseWriter, r *http.Request)
	GetFieldVisit(w http.ResponseWriter, r *http.Request)
	ListFieldVisits(w http.ResponseWriter, r *http.Request)
}

type FieldVisitHandlerImpl struct {
	fieldVisitService fieldvisit.FieldVisitService
}

func NewFieldVisitHandler(fieldVisitService fieldvisit.FieldVisitService) FieldVisitHandler {
	return &FieldVisitHandlerImpl{
		fieldVisitService: fieldVisitService,
	}
}

func decodeFieldVisit(r *http.Request) (fieldvisit.CreateFieldVisitRequest, error) {
	var req fieldvisit.CreateFieldVisitRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		// Parse multipart form (max 10MB)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return req, err
		}

		if data := r.FormValue("data"); data != "" {
			if err := json.Unmarshal([]byte(data), &req); err != nil {
				return req, err
			}
		}

		file, header, err := r.FormFile("photo")
		if err == nil {
			req.File = file
			req.FileHeader = header
		} else if err != http.ErrMissingFile {
			return req, err
		}

		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	return req, nil
}

// CreateFieldVisit implements FieldVisitHandler.
func (h *FieldVisitHandlerImpl) CreateFieldVisit(w http.ResponseWriter, r *http.Request) {
	req, err := decodeFieldVisit(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.File != nil {
		defer func(f multipart.File) { _ = f.Close() }(req.File)
	}

	userID, ok := resolveTargetUser(r, req.UserID)
	if !ok {
		response.Forbidden(w, "Cannot record a field visit for another user")
		return
	}
	req.UserID = userID

	result, err := h.fieldVisitService.CreateFieldVisit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Field visit recorded", result)
}

// GetFieldVisit implements FieldVisitHandler.
func (h *FieldVisitHandlerImpl) GetFieldVisit(w http.ResponseWriter, r *http.Request) {
	result, err := h.fieldVisitService.GetFieldVisit(r.Context(), chi.URLParam(r, "visitID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListFieldVisits implements FieldVisitHandler. Non-admins only ever see their
// own visits; admins may filter by user or list everyone's.
func (h *FieldVisitHandlerImpl) ListFieldVisits(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := callerClaims(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	filter := fieldvisit.ListFieldVisitFilter{
		UserID: r.URL.Query().Get("user_id"),
		Date:   r.URL.Query().Get("date"),
	}
	if !role.IsAdmin() {
		filter.UserID = callerID
	}

	result, err := h.fieldVisitService.ListFieldVisits(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

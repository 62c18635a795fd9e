package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/usecase"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PackageHandler struct {
	service usecase.PackageService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "package")),
	}
}

// List handles GET /api/packages (public)
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	orderBy := r.URL.Query().Get("order_by")

	packages, err := h.service.ListPackages(r.Context(), search, orderBy)
	if err != nil {
		handleServiceError(w, h.log, err, "list packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// Get handles GET /api/packages/{id} (public)
func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pkg, err := h.service.GetPackage(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get package")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// Create handles POST /api/packages (admin)
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create package")
		return
	}

	utils.ResponseCreated(w, "success", pkg)
}

// Update handles PUT /api/packages/{id} (admin)
func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.UpdatePackage(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update package")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// Delete handles DELETE /api/packages/{id} (admin)
func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeletePackage(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete package")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// AddSafari handles POST /api/packages/{id}/safaris (admin)
func (h *PackageHandler) AddSafari(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.PackageSafariRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AddSafariToPackage(r.Context(), id, &req); err != nil {
		handleServiceError(w, h.log, err, "add safari to package")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// RemoveSafari handles DELETE /api/packages/{id}/safaris/{safariId} (admin)
func (h *PackageHandler) RemoveSafari(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	safariID := chi.URLParam(r, "safariId")

	if err := h.service.RemoveSafariFromPackage(r.Context(), id, safariID); err != nil {
		handleServiceError(w, h.log, err, "remove safari from package")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

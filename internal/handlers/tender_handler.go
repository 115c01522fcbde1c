package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/procureflow/procurement-service/internal/models"
	"github.com/procureflow/procurement-service/internal/services"
	"github.com/procureflow/procurement-service/internal/utils"

	"github.com/sirupsen/logrus"
)

// TenderHandler - структура для обработки HTTP-запросов по тендерам.
type TenderHandler struct {
	Service *services.TenderService
	Logger  *logrus.Logger
	Timeout time.Duration
}

// NewTenderHandler создаёт новый экземпляр TenderHandler.
func NewTenderHandler(service *services.TenderService, logger *logrus.Logger, timeout time.Duration) *TenderHandler {
	return &TenderHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

// GetTenders обрабатывает запросы для получения списка тендеров.
func (h *TenderHandler) GetTenders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limit, offset, err := utils.ParseLimitOffset(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	serviceTypes := r.URL.Query()["service_type"]
	for _, serviceType := range serviceTypes {
		if !models.ValidTenderServiceType(models.TenderServiceType(serviceType)) {
			utils.SendErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("unsupported service type: %s", serviceType))
			return
		}
	}

	tenders, err := h.Service.GetTenders(ctx, limit, offset, serviceTypes)
	if err != nil {
		h.Logger.WithError(err).Error("failed to fetch tenders")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, tenders)
}

// CreateTender обрабатывает запросы для создания тендера.
func (h *TenderHandler) CreateTender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var tenderReq models.TenderRequest
	if err := json.NewDecoder(r.Body).Decode(&tenderReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if tenderReq.Name == "" || tenderReq.Description == "" || tenderReq.OrganizationID == "" || tenderReq.CreatorUsername == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if !models.ValidTenderServiceType(tenderReq.ServiceType) {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid service type")
		return
	}
	if tenderReq.Status == "" {
		tenderReq.Status = models.CreatedTender
	}
	if !models.ValidTenderStatus(tenderReq.Status) {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid tender status")
		return
	}

	tender, err := h.Service.CreateTender(ctx, tenderReq)
	if err != nil {
		h.Logger.WithError(err).Error("failed to create tender")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, tender)
}

// GetUserTender обрабатывает запросы для получения списка тендеров пользователя.
func (h *TenderHandler) GetUserTender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limit, offset, err := utils.ParseLimitOffset(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tenders, err := h.Service.GetUserTenders(ctx, r.URL.Query().Get("username"), limit, offset)
	if err != nil {
		h.Logger.WithError(err).Error("failed to fetch user tenders")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, tenders)
}

// GetTenderStatus обрабатывает запросы для получения статуса тендера.
func (h *TenderHandler) GetTenderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	tenderID := r.PathValue("tenderId")
	username := r.URL.Query().Get("username")

	status, err := h.Service.GetTenderStatus(ctx, tenderID, username)
	if err != nil {
		h.Logger.WithError(err).Error("failed to get tender status")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, status)
}

// UpdateTenderStatus обрабатывает запросы для изменения статуса тендера.
func (h *TenderHandler) UpdateTenderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	tenderID := r.PathValue("tenderId")
	status := r.URL.Query().Get("status")
	username := r.URL.Query().Get("username")

	if status == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "missing required query parameter: status")
		return
	}
	if !models.ValidTenderStatus(models.TenderStatus(status)) {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid tender status")
		return
	}

	tender, err := h.Service.UpdateTenderStatus(ctx, tenderID, models.TenderStatus(status), username)
	if err != nil {
		h.Logger.WithError(err).Error("failed to update tender status")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, tender)
}

// EditTender обрабатывает запросы для изменения тендера.
func (h *TenderHandler) EditTender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PATCH is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	tenderID := r.PathValue("tenderId")
	username := r.URL.Query().Get("username")

	var editReq models.EditTenderRequest
	if err := json.NewDecoder(r.Body).Decode(&editReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if editReq.Name == "" && editReq.Description == "" && editReq.ServiceType == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "no valid fields to update")
		return
	}
	if editReq.ServiceType != "" && !models.ValidTenderServiceType(editReq.ServiceType) {
		utils.SendErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid service_type parameter: %s", editReq.ServiceType))
		return
	}

	tender, err := h.Service.EditTender(ctx, tenderID, username, editReq)
	if err != nil {
		h.Logger.WithError(err).Error("failed to edit tender")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, tender)
}

// RollbackTender обрабатывает запросы для отката версии тендера.
func (h *TenderHandler) RollbackTender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	tenderID := r.PathValue("tenderId")
	username := r.URL.Query().Get("username")

	version, err := strconv.ParseInt(r.PathValue("version"), 10, 32)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid version number")
		return
	}

	tender, err := h.Service.RollbackTender(ctx, tenderID, int32(version), username)
	if err != nil {
		h.Logger.WithError(err).Error("failed to rollback tender")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, tender)
}

func (h *TenderHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.WithError(err).Error("failed to encode response")
	}
}

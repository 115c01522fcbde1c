package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/procureflow/procurement-service/internal/models"
	"github.com/procureflow/procurement-service/internal/services"
	"github.com/procureflow/procurement-service/internal/utils"

	"github.com/sirupsen/logrus"
)

// BidHandler - структура для обработки HTTP-запросов по предложениям.
type BidHandler struct {
	Service   *services.BidService
	Decisions *services.DecisionAggregator
	Logger    *logrus.Logger
	Timeout   time.Duration
}

// NewBidHandler создаёт новый экземпляр BidHandler.
func NewBidHandler(service *services.BidService, decisions *services.DecisionAggregator, logger *logrus.Logger, timeout time.Duration) *BidHandler {
	return &BidHandler{
		Service:   service,
		Decisions: decisions,
		Logger:    logger,
		Timeout:   timeout,
	}
}

// CreateBid обрабатывает запросы для создания предложения.
func (h *BidHandler) CreateBid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var bidReq models.BidRequest
	if err := json.NewDecoder(r.Body).Decode(&bidReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if bidReq.Name == "" || bidReq.Description == "" || bidReq.TenderID == "" || bidReq.CreatorUsername == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if bidReq.Status == "" {
		bidReq.Status = models.CreatedBid
	}
	if !models.ValidBidStatus(bidReq.Status) {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid bid status")
		return
	}

	bid, err := h.Service.CreateBid(ctx, bidReq)
	if err != nil {
		h.Logger.WithError(err).Error("failed to create bid")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, bid)
}

// GetUserBid обрабатывает запросы для получения списка предложений пользователя.
func (h *BidHandler) GetUserBid(w http.ResponseWriter, r *http.Request) {
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

	bids, err := h.Service.GetUserBids(ctx, r.URL.Query().Get("username"), limit, offset)
	if err != nil {
		h.Logger.WithError(err).Error("failed to fetch user bids")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, bids)
}

// GetTenderBid обрабатывает запросы для получения списка предложений тендера.
func (h *BidHandler) GetTenderBid(w http.ResponseWriter, r *http.Request) {
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

	tenderID := r.PathValue("tenderId")
	username := r.URL.Query().Get("username")

	bids, err := h.Service.GetTenderBids(ctx, tenderID, username, limit, offset)
	if err != nil {
		h.Logger.WithError(err).Error("failed to fetch tender bids")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, bids)
}

// GetBidStatus обрабатывает запросы для получения статуса предложения.
func (h *BidHandler) GetBidStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	bidID := r.PathValue("bidId")
	username := r.URL.Query().Get("username")

	status, err := h.Service.GetBidStatus(ctx, bidID, username)
	if err != nil {
		h.Logger.WithError(err).Error("failed to get bid status")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, status)
}

// UpdateBidStatus обрабатывает запросы для изменения статуса предложения.
func (h *BidHandler) UpdateBidStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	bidID := r.PathValue("bidId")
	status := r.URL.Query().Get("status")
	username := r.URL.Query().Get("username")

	if status == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "missing required query parameter: status")
		return
	}
	if !models.ValidBidStatus(models.BidStatus(status)) {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid bid status")
		return
	}

	bid, err := h.Service.UpdateBidStatus(ctx, bidID, models.BidStatus(status), username)
	if err != nil {
		h.Logger.WithError(err).Error("failed to update bid status")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, bid)
}

// EditBid обрабатывает запросы для изменения предложения.
func (h *BidHandler) EditBid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PATCH is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	bidID := r.PathValue("bidId")
	username := r.URL.Query().Get("username")

	var editReq models.EditBidRequest
	if err := json.NewDecoder(r.Body).Decode(&editReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if editReq.Name == "" && editReq.Description == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "no valid fields to update")
		return
	}

	bid, err := h.Service.EditBid(ctx, bidID, username, editReq)
	if err != nil {
		h.Logger.WithError(err).Error("failed to edit bid")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, bid)
}

// RollbackBid обрабатывает запросы для отката версии предложения.
func (h *BidHandler) RollbackBid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	bidID := r.PathValue("bidId")
	username := r.URL.Query().Get("username")

	version, err := strconv.ParseInt(r.PathValue("version"), 10, 32)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid version number")
		return
	}

	bid, err := h.Service.RollbackBid(ctx, bidID, int32(version), username)
	if err != nil {
		h.Logger.WithError(err).Error("failed to rollback bid")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, bid)
}

// SubmitBidDecision обрабатывает запросы с решением по предложению.
func (h *BidHandler) SubmitBidDecision(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	bidID := r.PathValue("bidId")
	decision := r.URL.Query().Get("decision")
	username := r.URL.Query().Get("username")

	if decision == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "missing required query parameter: decision")
		return
	}
	if !models.ValidBidDecision(models.BidDecision(decision)) {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid decision, must be either 'Approved' or 'Rejected'")
		return
	}

	bid, err := h.Decisions.SubmitDecision(ctx, bidID, models.BidDecision(decision), username)
	if err != nil {
		h.Logger.WithError(err).Error("failed to submit bid decision")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, bid)
}

// SubmitBidFeedback обрабатывает запросы с отзывом на предложение.
func (h *BidHandler) SubmitBidFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	bidID := r.PathValue("bidId")
	bidFeedback := r.URL.Query().Get("bidFeedback")
	username := r.URL.Query().Get("username")

	if bidFeedback == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "missing required query parameter: bidFeedback")
		return
	}

	bid, err := h.Service.SubmitBidFeedback(ctx, bidID, bidFeedback, username)
	if err != nil {
		h.Logger.WithError(err).Error("failed to submit bid feedback")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, bid)
}

// GetBidReviews обрабатывает запросы для получения отзывов на предложения автора.
func (h *BidHandler) GetBidReviews(w http.ResponseWriter, r *http.Request) {
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

	tenderID := r.PathValue("tenderId")
	authorUsername := r.URL.Query().Get("authorUsername")
	requesterUsername := r.URL.Query().Get("requesterUsername")

	if authorUsername == "" {
		utils.SendErrorResponse(w, http.StatusBadRequest, "missing required query parameter: authorUsername")
		return
	}

	reviews, err := h.Service.GetBidReviews(ctx, tenderID, authorUsername, requesterUsername, limit, offset)
	if err != nil {
		h.Logger.WithError(err).Error("failed to fetch bid reviews")
		utils.SendServiceError(w, err)
		return
	}

	h.writeJSON(w, reviews)
}

func (h *BidHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.WithError(err).Error("failed to encode response")
	}
}

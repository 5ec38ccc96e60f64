package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/beastfit-api/internal/models"
)

func (h *Handler) CreateMembershipInquiry(c *gin.Context) {
	var req models.MembershipInquiryRequest
	if !h.bindJSON(c, &req, "Invalid inquiry data") {
		return
	}

	inquiry, err := h.Store.CreateMembershipInquiry(c.Request.Context(), req.ToNewInquiry())
	if err != nil {
		h.serverError(c, "Failed to create inquiry", err)
		return
	}
	h.Log.Info(c.Request.Context(), "membership inquiry received", "inquiry_id", inquiry.ID)

	h.NotificationSvc.MembershipInquiryReceived(inquiry)

	c.JSON(http.StatusCreated, inquiry)
}

func (h *Handler) CreateContactMessage(c *gin.Context) {
	var req models.ContactMessageRequest
	if !h.bindJSON(c, &req, "Invalid message data") {
		return
	}

	msg, err := h.Store.CreateContactMessage(c.Request.Context(), req.ToNewContactMessage())
	if err != nil {
		h.serverError(c, "Failed to send message", err)
		return
	}
	h.Log.Info(c.Request.Context(), "contact message received", "message_id", msg.ID)

	h.NotificationSvc.ContactMessageReceived(msg)

	c.JSON(http.StatusCreated, msg)
}

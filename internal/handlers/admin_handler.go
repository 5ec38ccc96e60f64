package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/beastfit-api/internal/export"
)

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Store.GetSiteStats(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to fetch stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Store.GetAllUsers(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetInquiries(c *gin.Context) {
	ctx := c.Request.Context()
	inquiries, err := h.Store.GetAllMembershipInquiries(ctx)
	if err != nil {
		h.serverError(c, "Failed to fetch inquiries", err)
		return
	}
	messages, err := h.Store.GetAllContactMessages(ctx)
	if err != nil {
		h.serverError(c, "Failed to fetch inquiries", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"membershipInquiries": inquiries,
		"contactMessages":     messages,
	})
}

func (h *Handler) ExportUsers(c *gin.Context) {
	users, err := h.Store.GetAllUsers(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to export users", err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteUsers(&buf, users); err != nil {
		h.serverError(c, "Failed to export users", err)
		return
	}
	sendCSV(c, "beastfit-users.csv", buf.Bytes())
}

func (h *Handler) ExportInquiries(c *gin.Context) {
	inquiries, err := h.Store.GetAllMembershipInquiries(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to export inquiries", err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteInquiries(&buf, inquiries); err != nil {
		h.serverError(c, "Failed to export inquiries", err)
		return
	}
	sendCSV(c, "beastfit-inquiries.csv", buf.Bytes())
}

func (h *Handler) ExportReviews(c *gin.Context) {
	reviews, err := h.Store.GetAllReviews(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to export reviews", err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteReviews(&buf, reviews); err != nil {
		h.serverError(c, "Failed to export reviews", err)
		return
	}
	sendCSV(c, "beastfit-reviews.csv", buf.Bytes())
}

func sendCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

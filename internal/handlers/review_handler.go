package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/beastfit-api/internal/models"
)

func (h *Handler) CreateReview(c *gin.Context) {
	var req models.ReviewRequest
	if !h.bindJSON(c, &req, "Invalid review data") {
		return
	}

	review, err := h.Store.CreateReview(c.Request.Context(), req.ToNewReview())
	if err != nil {
		h.serverError(c, "Failed to create review", err)
		return
	}
	h.Log.Info(c.Request.Context(), "review created", "review_id", review.ID, "rating", review.Rating)

	c.JSON(http.StatusCreated, review)
}

// GetReviews lists every review with its author's current display name.
func (h *Handler) GetReviews(c *gin.Context) {
	reviews, err := h.Store.GetAllReviews(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to fetch reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) GetUserReviews(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	reviews, err := h.Store.GetReviewsByUser(c.Request.Context(), userID)
	if err != nil {
		h.serverError(c, "Failed to fetch reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

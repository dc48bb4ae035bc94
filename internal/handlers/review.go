package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReview dépose un avis sur un produit (note 1 à 5, 5 par défaut)
func CreateReview(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	review, err := Reviews.CreateReview(c.Request.Context(), productID, customerID, input.Rating, input.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetProductReviews liste les avis d'un produit, les plus récents d'abord
func GetProductReviews(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	reviews, err := Reviews.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"usedphoneshop/internal/model"
	"usedphoneshop/internal/service"

	"github.com/gin-gonic/gin"
)

// PhoneHandler handles catalog requests
type PhoneHandler struct {
	service service.PhoneService
}

// NewPhoneHandler creates a new PhoneHandler
func NewPhoneHandler(s service.PhoneService) *PhoneHandler {
	return &PhoneHandler{service: s}
}

func (h *PhoneHandler) ListPhones(c *gin.Context) {
	phones, err := h.service.ListPhones(c.Request.Context())
	if err != nil {
		log.Printf("Error listing phones: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve phones"})
		return
	}
	c.JSON(http.StatusOK, phones)
}

func (h *PhoneHandler) GetPhoneByID(c *gin.Context) {
	phoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone ID"})
		return
	}

	phone, err := h.service.GetPhoneByID(c.Request.Context(), phoneID)
	if err != nil {
		if errors.Is(err, service.ErrPhoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting phone by ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve phone"})
		return
	}
	c.JSON(http.StatusOK, phone)
}

func (h *PhoneHandler) CreatePhone(c *gin.Context) {
	var req model.CreatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	phone, err := h.service.CreatePhone(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating phone: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create phone"})
		return
	}
	c.JSON(http.StatusCreated, phone)
}

func (h *PhoneHandler) UpdatePhone(c *gin.Context) {
	phoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone ID"})
		return
	}

	var req model.UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	phone, err := h.service.UpdatePhone(c.Request.Context(), phoneID, req)
	if err != nil {
		if errors.Is(err, service.ErrPhoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating phone: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update phone"})
		return
	}
	c.JSON(http.StatusOK, phone)
}

func (h *PhoneHandler) DeletePhone(c *gin.Context) {
	phoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone ID"})
		return
	}

	if err := h.service.DeletePhone(c.Request.Context(), phoneID); err != nil {
		if errors.Is(err, service.ErrPhoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting phone: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete phone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Phone deleted successfully"})
}

// RegisterPhoneRoutes registers catalog routes. Reads are public; writes
// require an Admin token.
func (h *PhoneHandler) RegisterPhoneRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	phoneGroup := rg.Group("/phones")
	{
		phoneGroup.GET("", h.ListPhones)
		phoneGroup.GET("/:id", h.GetPhoneByID)
		phoneGroup.POST("", authMW, adminMW, h.CreatePhone)
		phoneGroup.PUT("/:id", authMW, adminMW, h.UpdatePhone)
		phoneGroup.DELETE("/:id", authMW, adminMW, h.DeletePhone)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// PolicyHandler handles authorization policy administration
type PolicyHandler struct {
	policyService domain.PolicyService
}

// NewPolicyHandler creates new policy handler
func NewPolicyHandler(policyService domain.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

// PolicyRequest represents a policy rule in request bodies
type PolicyRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// List returns all stored policy rules
func (h *PolicyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"policies": h.policyService.GetPolicies()})
}

// Add stores a new policy rule
func (h *PolicyHandler) Add(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.policyService.AddPolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Policy added"})
}

// Remove deletes a policy rule
func (h *PolicyHandler) Remove(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.policyService.RemovePolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Policy removed"})
}

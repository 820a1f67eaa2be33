package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProductReports rebuilds and returns the product 360 views.
func (s *Server) GetProductReports(c *gin.Context) {
	resp, err := s.reportSvc.BuildProductReports(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetCustomerReports rebuilds and returns the customer 360 views.
func (s *Server) GetCustomerReports(c *gin.Context) {
	resp, err := s.reportSvc.BuildCustomerReports(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

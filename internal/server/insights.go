package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetTopProducts(c *gin.Context) {
	n, err := parseLimit(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.insightSvc.TopProductsBySales(c.Request.Context(), n)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBottomProducts(c *gin.Context) {
	n, err := parseLimit(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.insightSvc.BottomProductsBySales(c.Request.Context(), n)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetTopCustomers(c *gin.Context) {
	n, err := parseLimit(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.insightSvc.TopCustomersBySales(c.Request.Context(), n)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCustomersByFewestOrders(c *gin.Context) {
	n, err := parseLimit(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.insightSvc.CustomersByFewestOrders(c.Request.Context(), n)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetYearlySales(c *gin.Context) {
	resp, err := s.insightSvc.YearlySales(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetMonthlySales(c *gin.Context) {
	resp, err := s.insightSvc.MonthlySales(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetRunningYearlySales(c *gin.Context) {
	resp, err := s.insightSvc.RunningYearlySales(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProductPerformance(c *gin.Context) {
	resp, err := s.insightSvc.ProductYearlyPerformance(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCategoryShare(c *gin.Context) {
	resp, err := s.insightSvc.CategoryShare(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

package server

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

func (s *Server) handleGuardian(c *gin.Context) {
	var req struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	analysis, err := s.analyze.Run(c.Request.Context(), req.Description)
	if err != nil {
		s.log.Error("risk analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

func (s *Server) handleMintRequest(c *gin.Context) {
	var req struct {
		Amount          string `json:"amount"`
		CampaignAddress string `json:"campaignAddress"`
		ExpiryHours     int    `json:"expiryHours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount == "" || req.CampaignAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount and campaignAddress are required"})
		return
	}
	if !common.IsHexAddress(req.CampaignAddress) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign address"})
		return
	}

	result, err := s.payment.Run(c.Request.Context(), usecase.RequestPaymentParams{
		Amount:   req.Amount,
		Campaign: common.HexToAddress(req.CampaignAddress),
		TTLHours: req.ExpiryHours,
	})
	if err != nil {
		s.log.Error("mint request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mint request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentUrl": result.PaymentURL,
		"reference":  result.Reference,
		"amount":     result.Amount,
	})
}

func (s *Server) handleTransactionHistory(c *gin.Context) {
	params := usecase.PaymentHistoryParams{
		Reference: c.Query("reference"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	if take, err := strconv.Atoi(c.Query("take")); err == nil {
		params.Take = take
	}
	if campaign := c.Query("campaignAddress"); campaign != "" {
		if !common.IsHexAddress(campaign) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign address"})
			return
		}
		addr := common.HexToAddress(campaign)
		params.Campaign = &addr
	}

	result, err := s.history.Run(c.Request.Context(), params)
	if err != nil {
		s.log.Error("history query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": result.Records})
}

func (s *Server) handleUploadMetadata(c *gin.Context) {
	var metadata domain.CampaignMetadata
	if err := c.ShouldBindJSON(&metadata); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid metadata"})
		return
	}
	if metadata.Name == "" || metadata.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and description are required"})
		return
	}

	hash, err := s.metadata.PinJSON(c.Request.Context(), &metadata)
	if err != nil {
		s.log.Error("metadata pinning failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pinning failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ipfsHash": hash})
}

func (s *Server) handleUploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	hash, url, err := s.metadata.PinFile(c.Request.Context(), header.Filename, file)
	if err != nil {
		s.log.Error("image pinning failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pinning failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ipfsHash": hash, "url": url})
}

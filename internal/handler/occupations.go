package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/open-salary/salary-board/internal/logger"
	"github.com/open-salary/salary-board/internal/usecase"
)

// OccupationHandlerは、職種一覧のJSON APIです。
type OccupationHandler struct {
	service usecase.QueryService
	logger  logger.AppLogger
}

func NewOccupationHandler(service usecase.QueryService, appLogger logger.AppLogger) *OccupationHandler {
	return &OccupationHandler{
		service: service,
		logger:  appLogger,
	}
}

// Listは GET /api/occupations を処理し、名前の昇順で全職種を返します。
func (h *OccupationHandler) List(c *gin.Context) {
	occupations, err := h.service.ListOccupations(c.Request.Context())
	if err != nil {
		h.logger.Error("職種一覧の取得に失敗しました", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch occupations"})
		return
	}

	c.JSON(http.StatusOK, occupations)
}

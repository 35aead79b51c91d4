package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/open-salary/salary-board/internal/logger"
	"github.com/open-salary/salary-board/internal/usecase"
)

const (
	defaultPage  = 1
	defaultLimit = 1000
)

// CompensationHandlerは、給与一覧のJSON APIです。
type CompensationHandler struct {
	service usecase.QueryService
	logger  logger.AppLogger
}

func NewCompensationHandler(service usecase.QueryService, appLogger logger.AppLogger) *CompensationHandler {
	return &CompensationHandler{
		service: service,
		logger:  appLogger,
	}
}

// Listは GET /api/compensation を処理します。
// 不正なページング値はエラーにせず既定値へ丸めます。
func (h *CompensationHandler) List(c *gin.Context) {
	params := usecase.CompensationParams{
		Page:          parseIntOr(c.Query("page"), defaultPage),
		Limit:         parseIntOr(c.Query("limit"), defaultLimit),
		Sort:          c.Query("sort"),
		Order:         c.Query("order"),
		OccupationIDs: parseIDList(c.Query("occupations")),
		AgeFrom:       parseOptionalInt(c.Query("ageFrom")),
		AgeTo:         parseOptionalInt(c.Query("ageTo")),
	}

	result, err := h.service.ListCompensation(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("給与一覧の取得に失敗しました", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch compensation data"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseIntOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func parseIDList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

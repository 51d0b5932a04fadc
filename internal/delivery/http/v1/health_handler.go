package v1

import (
	"net/http"
	"strconv"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(api *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	api.GET("/", handler.Root)
	api.GET("/health", handler.Health)
}

// Root godoc
// @Summary      API info
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.healthUC.Info())
}

// Health godoc
// @Summary      Health check
// @Description  With deep=true the database is pinged and 503 is returned when it is unreachable
// @Tags         system
// @Produce      json
// @Param        deep  query     bool  false  "Ping the database"
// @Success      200   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	deep, _ := strconv.ParseBool(c.Query("deep"))

	status, ok := h.healthUC.Check(c.Request.Context(), deep)
	if !ok {
		response.JSON(c, http.StatusServiceUnavailable, status)
		return
	}
	response.JSON(c, http.StatusOK, status)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/skinsage/skinsage-backend/internal/domain"
	"github.com/skinsage/skinsage-backend/internal/http/response"
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
	"github.com/skinsage/skinsage-backend/internal/services"
)

type RoutineHandler struct {
	log            *logger.Logger
	routineService services.RoutineService
}

func NewRoutineHandler(log *logger.Logger, routineService services.RoutineService) *RoutineHandler {
	return &RoutineHandler{
		log:            log.With("handler", "RoutineHandler"),
		routineService: routineService,
	}
}

// POST /api/routine/select
// body: SelectionProfile; every field optional. Unknown vocabulary values
// widen the selection instead of failing it, so the only error responses are
// malformed JSON and repository failures.
func (rh *RoutineHandler) SelectRoutine(c *gin.Context) {
	var profile types.SelectionProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := rh.routineService.SelectRoutine(c.Request.Context(), profile)
	if err != nil {
		rh.log.Error("Routine selection failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "selection_failed", err)
		return
	}

	response.RespondOK(c, result)
}

package app

import (
	httpH "github.com/skinsage/skinsage-backend/internal/http/handlers"
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	Routine *httpH.RoutineHandler
	Product *httpH.ProductHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(),
		Routine: httpH.NewRoutineHandler(log, serviceset.Routine),
		Product: httpH.NewProductHandler(log, serviceset.Product),
	}
}

package app

import (
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
	"github.com/skinsage/skinsage-backend/internal/services"
)

type Services struct {
	Routine services.RoutineService
	Product services.ProductService
}

func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Routine: services.NewRoutineService(log, reposet.Product),
		Product: services.NewProductService(log, reposet.Product),
	}
}

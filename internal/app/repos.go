package app

import (
	"gorm.io/gorm"

	"github.com/skinsage/skinsage-backend/internal/data/repos"
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
)

type Repos struct {
	Product repos.ProductRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Product: repos.NewProductRepo(db, log),
	}
}

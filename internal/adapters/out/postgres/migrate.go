package postgres

import (
	"courier/internal/adapters/out/postgres/accountrepo"
	"courier/internal/adapters/out/postgres/agentrepo"
	"courier/internal/adapters/out/postgres/deliveryrepo"
	"courier/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every aggregate table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&agentrepo.AgentDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
}

package migration

import (
	"devdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProfileModel{},
		&models.ProjectModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.ActivityModel{},
	}
}

package ticket

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"devdesk/internal/domain/ticket/valueobjects"
)

// Enum checks run at the binding layer so a typo in status or priority
// fails fast with a 400 instead of reaching the use case.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
		return valueobjects.TicketStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("ticketpriority", func(fl validator.FieldLevel) bool {
		return valueobjects.Priority(fl.Field().String()).IsValid()
	})
}

package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"seminarhall/services/schedule"
)

// RegisterValidators installs the custom binding validators used by the
// availability request fields. Call once before the router starts.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, ok := schedule.ParseTimeOfDay(fl.Field().String())
		return ok
	})
	v.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		// Timestamps like "2025-03-10T00:00:00Z" are accepted; only the
		// date part is used downstream.
		if i := strings.Index(value, "T"); i >= 0 {
			value = value[:i]
		}
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	})
}

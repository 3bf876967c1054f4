package handlers

import (
	"github.com/gin-gonic/gin"

	"seminarhall/services/hall"
	"seminarhall/services/notification"
	"seminarhall/services/seminar"
	"seminarhall/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	CheckAvailabilityHandler gin.HandlerFunc
	DayAvailabilityHandler   gin.HandlerFunc
	MonthSummaryHandler      gin.HandlerFunc

	// Seminar workflow endpoints
	SubmitSeminarHandler       gin.HandlerFunc
	ListSeminarsHandler        gin.HandlerFunc
	UpdateSeminarStatusHandler gin.HandlerFunc
	DeleteSeminarHandler       gin.HandlerFunc

	// Hall directory endpoints
	ListHallsHandler  gin.HandlerFunc
	GetHallHandler    gin.HandlerFunc
	CreateHallHandler gin.HandlerFunc
	UpdateHallHandler gin.HandlerFunc
	DeleteHallHandler gin.HandlerFunc

	// Account endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
}

// NewHandlerBundle wires the services into concrete handlers.
func NewHandlerBundle(
	seminarSvc seminar.SeminarService,
	hallSvc hall.HallService,
	userSvc user.UserService,
	notifSvc notification.NotificationService,
) *HandlerBundle {
	return &HandlerBundle{
		CheckAvailabilityHandler: CheckAvailabilityHandler(seminarSvc),
		DayAvailabilityHandler:   DayAvailabilityHandler(seminarSvc),
		MonthSummaryHandler:      MonthSummaryHandler(seminarSvc),

		SubmitSeminarHandler:       SubmitSeminarHandler(seminarSvc),
		ListSeminarsHandler:        ListSeminarsHandler(seminarSvc),
		UpdateSeminarStatusHandler: UpdateSeminarStatusHandler(seminarSvc),
		DeleteSeminarHandler:       DeleteSeminarHandler(seminarSvc),

		ListHallsHandler:  ListHallsHandler(hallSvc),
		GetHallHandler:    GetHallHandler(hallSvc),
		CreateHallHandler: CreateHallHandler(hallSvc),
		UpdateHallHandler: UpdateHallHandler(hallSvc),
		DeleteHallHandler: DeleteHallHandler(hallSvc),

		RegisterHandler: RegisterHandler(userSvc),
		LoginHandler:    LoginHandler(userSvc),

		ListNotificationsHandler: ListNotificationsHandler(notifSvc),
	}
}

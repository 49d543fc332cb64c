package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vinaythakkar13/yatra-backend/config"
	_ "github.com/vinaythakkar13/yatra-backend/docs"
	"github.com/vinaythakkar13/yatra-backend/internal/assignment"
	"github.com/vinaythakkar13/yatra-backend/internal/auditlog"
	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
	"github.com/vinaythakkar13/yatra-backend/internal/notification"
	"github.com/vinaythakkar13/yatra-backend/internal/pilgrim"
	"github.com/vinaythakkar13/yatra-backend/internal/registration"
	"github.com/vinaythakkar13/yatra-backend/internal/reports"
	"github.com/vinaythakkar13/yatra-backend/internal/yatra"
	"github.com/vinaythakkar13/yatra-backend/middleware"
)

// Deps are the process-wide resources the handlers are built from.
type Deps struct {
	DB *gorm.DB
	// Redis may be nil; live streaming is then unavailable.
	Redis *redis.Client
	// Notifier may be nil; lifecycle events are then not published.
	Notifier registration.Notifier
}

func Setup(r *gin.Engine, cfg *config.Config, deps Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With", "Cache-Control", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter(cfg))
	api.Use(middleware.AuditMiddleware())

	public := api.Group("")
	public.Use(middleware.OptionalAuth(cfg))

	operator := api.Group("")
	operator.Use(middleware.AuthMiddleware(cfg), middleware.RequireOperator())

	// ========== Yatras ==========
	yatraHandler := yatra.NewHandler(yatra.NewService(yatra.NewRepository(deps.DB)))
	public.GET("/yatras", yatraHandler.ListYatras)
	public.GET("/yatras/:id", yatraHandler.GetYatra)
	operator.POST("/yatras", yatraHandler.CreateYatra)
	operator.PUT("/yatras/:id", yatraHandler.UpdateYatra)

	// ========== Hotels & rooms ==========
	hotelHandler := hotel.NewHandler(hotel.NewService(hotel.NewRepository(deps.DB)))
	operator.POST("/hotels", hotelHandler.CreateHotel)
	operator.GET("/hotels", hotelHandler.ListHotels)
	operator.GET("/hotels/:id", hotelHandler.GetHotel)
	operator.PUT("/hotels/:id", hotelHandler.UpdateHotel)
	operator.PUT("/hotels/:id/layout", hotelHandler.UpdateLayout)
	operator.DELETE("/hotels/:id", hotelHandler.DeleteHotel)
	operator.PUT("/rooms/:id", hotelHandler.UpdateRoom)

	// ========== Pilgrims ==========
	pilgrimHandler := pilgrim.NewHandler(pilgrim.NewService(pilgrim.NewRepository(deps.DB)))
	operator.GET("/pilgrims", pilgrimHandler.ListPersons)
	operator.GET("/pilgrims/:id", pilgrimHandler.GetPerson)
	operator.GET("/pilgrims/pnr/:pnr", pilgrimHandler.GetPersonByPNR)

	// ========== Room assignment ==========
	assignmentHandler := assignment.NewHandler(assignment.NewService(assignment.NewRepository(deps.DB)))
	operator.POST("/pilgrims/:id/rooms", assignmentHandler.Assign)
	operator.PUT("/pilgrims/:id/rooms", assignmentHandler.Reassign)
	operator.DELETE("/pilgrims/:id/rooms", assignmentHandler.Release)
	operator.POST("/yatras/:id/assignments/finalize", assignmentHandler.FinalizeDraftAssignments)
	operator.POST("/hotels/:id/recompute", assignmentHandler.RecomputeHotelAggregates)

	// ========== Registrations ==========
	registrationSvc := registration.NewService(registration.NewRepository(deps.DB))
	if deps.Notifier != nil {
		registrationSvc.SetNotifier(deps.Notifier)
	}
	registrationHandler := registration.NewHandler(registrationSvc)
	public.POST("/registrations", registrationHandler.Create)
	public.PUT("/registrations/:id", registrationHandler.Update)
	public.POST("/registrations/:id/cancel", registrationHandler.Cancel)
	public.GET("/pnr/:pnr", registrationHandler.ResolveByPnr)

	operator.GET("/registrations", registrationHandler.List)
	operator.GET("/registrations/:id", registrationHandler.GetByID)
	operator.POST("/registrations/split", registrationHandler.CreateSplit)
	operator.POST("/registrations/:id/approve", registrationHandler.Approve)
	operator.POST("/registrations/:id/reject", registrationHandler.Reject)
	operator.POST("/registrations/:id/documents/approve", registrationHandler.ApproveDocument)
	operator.POST("/registrations/:id/documents/reject", registrationHandler.RejectDocument)
	operator.PATCH("/registrations/:id/ticket-type", registrationHandler.UpdateTicketType)
	operator.GET("/pnr/:pnr/splits", registrationHandler.CountSplits)

	// ========== Registration logs ==========
	auditHandler := auditlog.NewHandler(auditlog.NewService(auditlog.NewRepository(deps.DB)))
	operator.GET("/registrations/:id/logs", auditHandler.GetRegistrationLogs)
	operator.GET("/registration-logs/:id", auditHandler.GetLogByID)

	// ========== Reports ==========
	reportHandler := reports.NewHandler(reports.NewReportService(reports.NewReportRepository(deps.DB), reports.NewReportExporter()))
	operator.GET("/hotels/:id/rooming-list", reportHandler.GetRoomingList)
	operator.GET("/yatras/:id/registrations/export", reportHandler.GetRoster)

	// ========== Live registration feed ==========
	streamHandler := notification.NewHandler(deps.Redis)
	stream := api.Group("")
	stream.Use(middleware.AuthFromQuery(cfg), middleware.RequireOperator())
	stream.GET("/yatras/:id/registrations/stream", streamHandler.StreamRegistrations)
}

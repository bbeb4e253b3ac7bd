package routes

import (
	"servibook/configs"
	"servibook/controllers"
	"servibook/entity"
	"servibook/middlewares"
	"servibook/notifications"
	"servibook/repository"
	"servibook/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	users := repository.NewUserRepository(db)
	applications := repository.NewOwnerApplicationRepository(db)
	businesses := repository.NewBusinessRepository(db)
	employees := repository.NewEmployeeRepository(db)
	appointments := repository.NewAppointmentRepository(db)
	reviews := repository.NewReviewRepository(db)
	categories := repository.NewCategoryRepository(db)
	categoryRequests := repository.NewCategoryRequestRepository(db)

	mailer := notifications.New(notifications.Config{
		Host:          cfg.MailHost,
		Port:          cfg.MailPort,
		Username:      cfg.MailUsername,
		Password:      cfg.MailPassword,
		From:          cfg.MailFrom,
		VerifyBaseURL: cfg.VerifyBaseURL,
	}, configs.Log)

	// Services
	authSvc := services.NewAuthService(users, applications, cfg.JWTSecret, cfg.JWTTTL)
	businessSvc := services.NewBusinessService(businesses, categories)
	employeeSvc := services.NewEmployeeService(employees, businesses)
	availabilitySvc := services.NewAvailabilityService(businesses, employees, appointments, configs.Log)
	appointmentSvc := services.NewAppointmentService(appointments, businesses, employees, users, mailer, configs.Log)
	reviewSvc := services.NewReviewService(reviews, appointments, businesses)
	categorySvc := services.NewCategoryService(categories, categoryRequests)
	applicationSvc := services.NewOwnerApplicationService(applications, users)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	bizCtrl := controllers.NewBusinessController(businessSvc, availabilitySvc, appointmentSvc)
	apptCtrl := controllers.NewAppointmentController(appointmentSvc)
	empCtrl := controllers.NewEmployeeController(employeeSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	catCtrl := controllers.NewCategoryController(categorySvc)
	adminCtrl := controllers.NewAdminController(applicationSvc, categorySvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/me/request-owner", authCtrl.RequestOwner)
	}

	// Public catalogue
	r.GET("/categories", catCtrl.List)
	r.GET("/businesses", bizCtrl.List)
	r.GET("/businesses/:id", bizCtrl.Detail)
	r.GET("/businesses/:id/employees", empCtrl.ListForBusiness)
	r.GET("/businesses/:id/available-slots", bizCtrl.AvailableSlots)
	r.GET("/businesses/:id/reviews", reviewCtrl.ListForBusiness)

	// Appointments (user)
	u := r.Group("/appointments", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("", apptCtrl.Create)
		u.GET("/me", apptCtrl.MyAppointments)
		u.POST("/:id/cancel", apptCtrl.Cancel)
	}

	// Reviews (user; reply is re-checked against owner/admin in the service)
	rv := r.Group("/reviews", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		rv.GET("/eligibility/:businessId", reviewCtrl.Eligibility)
		rv.POST("", reviewCtrl.Create)
		rv.PATCH("/:id", reviewCtrl.Update)
		rv.DELETE("/:id", reviewCtrl.Delete)
		rv.POST("/:id/reply", reviewCtrl.Reply)
	}

	// Partner (owner/admin)
	partner := r.Group("/partner", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner, entity.RoleAdmin))
	{
		partner.POST("/business", bizCtrl.Register)
		partner.GET("/business", bizCtrl.MyBusiness)
		partner.PATCH("/business", bizCtrl.Update)
		partner.POST("/business/publish", bizCtrl.Publish)
		partner.PUT("/business/schedule", bizCtrl.UpdateSchedule)
		partner.GET("/business/appointments", bizCtrl.BusinessAppointments)
		partner.POST("/business/employees", empCtrl.Create)
		partner.PATCH("/employees/:id", empCtrl.Update)
		partner.DELETE("/employees/:id", empCtrl.Delete)
		partner.PUT("/employees/:id/allowed-slots", empCtrl.SetAllowedSlots)
	}
	r.POST("/category-requests", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner, entity.RoleAdmin), catCtrl.RequestCategory)

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/owner-requests", adminCtrl.OwnerRequests)
		admin.POST("/owner-requests/:id/approve", adminCtrl.ApproveOwner)
		admin.POST("/owner-requests/:id/reject", adminCtrl.RejectOwner)
		admin.GET("/owners", adminCtrl.Owners)
		admin.GET("/category-requests", adminCtrl.CategoryRequests)
		admin.POST("/category-requests/:id/approve", adminCtrl.ApproveCategoryRequest)
		admin.POST("/categories", adminCtrl.CreateCategory)
	}
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/PriyancySingal/group-travel-final-sub002/cmd/fx/account_fx"
	"github.com/PriyancySingal/group-travel-final-sub002/cmd/fx/booking_fx"
	"github.com/PriyancySingal/group-travel-final-sub002/cmd/fx/controllers_fx"
	"github.com/PriyancySingal/group-travel-final-sub002/cmd/fx/db_fx"
	"github.com/PriyancySingal/group-travel-final-sub002/cmd/fx/hotel_fx"
	"github.com/PriyancySingal/group-travel-final-sub002/cmd/fx/member_fx"
	"github.com/PriyancySingal/group-travel-final-sub002/cmd/fx/pricing_fx"
	"github.com/PriyancySingal/group-travel-final-sub002/cmd/fx/suitability_fx"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/api/controllers"
	"github.com/PriyancySingal/group-travel-final-sub002/internal/infra"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		pricing_fx.Module,
		suitability_fx.Module,
		account_fx.Module,
		hotel_fx.Module,
		booking_fx.Module,
		member_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", os.Getenv("PORT"))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	hotelController *controllers.HotelController,
	pricingController *controllers.PricingController,
	bookingController *controllers.BookingController,
	memberController *controllers.MemberController) *gin.Engine {

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, hotelController, pricingController, bookingController, memberController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	hotelController *controllers.HotelController,
	pricingController *controllers.PricingController,
	bookingController *controllers.BookingController,
	memberController *controllers.MemberController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.GetProfile)

	pricingGroup := r.Group("/pricing")
	pricingGroup.POST("/quote", pricingController.Quote)
	pricingGroup.GET("/surge", pricingController.SurgeQuote)
	pricingGroup.GET("/occupancy", pricingController.OccupancyQuote)

	hotelGroup := r.Group("/hotels")
	hotelGroup.GET("", hotelController.ListHotels)
	hotelGroup.GET("/:hotelId", hotelController.GetHotelById)
	hotelGroup.GET("/:hotelId/suitability", hotelController.ScoreForEvent)
	hotelGroup.GET("/:hotelId/compare", hotelController.CompareCategories)
	hotelGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), hotelController.CreateHotel)

	bookingGroup := r.Group("/bookings")
	bookingGroup.Use(middleware.JWTAuthMiddleware())
	bookingGroup.POST("", bookingController.CreateBooking)
	bookingGroup.GET("", bookingController.ListMyBookings)
	bookingGroup.GET("/:bookingId", bookingController.GetBookingById)
	bookingGroup.GET("/:bookingId/split", bookingController.GetEqualSplit)
	bookingGroup.POST("/:bookingId/split", bookingController.ApplyCustomSplit)
	bookingGroup.POST("/:bookingId/invites", memberController.InviteMember)
	bookingGroup.GET("/:bookingId/members", memberController.ListMembers)
	bookingGroup.DELETE("/:bookingId/members/:memberId", memberController.RemoveMember)

	inviteGroup := r.Group("/invites")
	inviteGroup.Use(middleware.JWTAuthMiddleware())
	inviteGroup.POST("/accept", memberController.AcceptInvite)
}

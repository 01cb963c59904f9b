package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotelpms/internal/database"
	"hotelpms/internal/domain"
	"hotelpms/internal/middleware"
	"hotelpms/internal/modules/auth"
	"hotelpms/internal/modules/booking"
	"hotelpms/internal/modules/catalog"
	"hotelpms/internal/modules/customer"
	"hotelpms/internal/modules/events"
	"hotelpms/internal/modules/frontdesk"
	"hotelpms/internal/modules/invoice"
	"hotelpms/internal/modules/payment"
	"hotelpms/internal/modules/promotion"
	jwtsvc "hotelpms/internal/pkg/jwt"
	"hotelpms/internal/repository"
)

func main() {
	_ = godotenv.Load()
	initLogger()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelpms.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal().Msg("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	itemRepo := repository.NewServiceItemRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := events.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, roomRepo, itemRepo, promotionRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	frontdeskService := frontdesk.NewService(bookingRepo, invoiceRepo, hub)
	frontdeskHandler := frontdesk.NewHandler(frontdeskService)

	invoiceService := invoice.NewService(invoiceRepo)
	invoiceHandler := invoice.NewHandler(invoiceService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, frontdeskService)
	paymentHandler := payment.NewHandler(paymentService)

	catalogService := catalog.NewService(roomTypeRepo, roomRepo, itemRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	customerService := customer.NewService(customerRepo)
	customerHandler := customer.NewHandler(customerService)

	promotionService := promotion.NewService(promotionRepo)
	promotionHandler := promotion.NewHandler(promotionService)

	eventsHandler := events.NewHandler(hub, j)

	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@every 10m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if n, err := bookingService.SweepStale(ctx); err != nil {
			log.Error().Err(err).Msg("stale booking sweep failed")
		} else if n > 0 {
			log.Info().Int("cancelled", n).Msg("stale bookings swept")
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("cron setup failed")
	}
	sweeper.Start()
	defer sweeper.Stop()

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		paymentHandler.RegisterPublicRoutes(api)
		eventsHandler.RegisterRoutes(api)

		// staff
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			frontdeskHandler.RegisterRoutes(protected)
			invoiceHandler.RegisterRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			customerHandler.RegisterRoutes(protected)
			promotionHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.RequireRole(domain.RoleAdmin))
			{
				authHandler.RegisterAdminRoutes(admin)
				promotionHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func initLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	if os.Getenv("LOG_FORMAT") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
}

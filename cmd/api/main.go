package main

import (
	"log"
	"time"

	"github.com/fortistravel/fortis-tourism-backend/internal/config"
	"github.com/fortistravel/fortis-tourism-backend/internal/media"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/memory"
	miniorepo "github.com/fortistravel/fortis-tourism-backend/internal/repository/minio"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/postgres"
	"github.com/fortistravel/fortis-tourism-backend/internal/service"
	transport "github.com/fortistravel/fortis-tourism-backend/internal/transport/http"
	"github.com/fortistravel/fortis-tourism-backend/internal/util"
)

func main() {
	cfg := config.Load()

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		log.Printf("invalid SESSION_TTL %q, using 24h", cfg.SessionTTL)
		sessionTTL = 24 * time.Hour
	}

	var (
		userRepo        ports.UserRepository
		destinationRepo ports.DestinationRepository
		bookingRepo     ports.BookingRepository
		wishlistRepo    ports.WishlistRepository
		sessionRepo     ports.SessionRepository
	)

	switch cfg.StorageBackend {
	case "memory":
		store := memory.NewSeededStore()
		userRepo = store.Users()
		destinationRepo = store.Destinations()
		bookingRepo = store.Bookings()
		wishlistRepo = store.Wishlist()
		sessionRepo = store.Sessions()
		log.Println("storage backend: memory (seeded)")
	default:
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("connect to postgres: %v", err)
		}
		defer db.Close()
		userRepo = postgres.NewUserRepo(db)
		destinationRepo = postgres.NewDestinationRepo(db)
		bookingRepo = postgres.NewBookingRepo(db)
		wishlistRepo = postgres.NewWishlistRepo(db)
		sessionRepo = postgres.NewSessionRepo(db)
		log.Println("storage backend: postgres")
	}

	var objectStorage ports.ObjectStorage
	if cfg.MinIOEndpoint != "" {
		client, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			log.Fatalf("connect to minio: %v", err)
		}
		objectStorage = miniorepo.NewObjectStorage(client, cfg.MinIOPublicURL, cfg.MinIOUseSSL)
	}

	jwtManager := util.NewJWTManager(cfg.JWTSecret, sessionTTL)

	authService := service.NewAuthService(userRepo, sessionRepo, jwtManager, sessionTTL, cfg.GoogleAudience)
	destinationService := service.NewDestinationService(destinationRepo, objectStorage, service.DestinationServiceConfig{
		ImageBucket:    cfg.MinIOBucketDestinations,
		MaxImageBytes:  cfg.DestinationImageMaxBytes,
		ImageProcessor: media.NewFFMPEGProcessor(cfg.FFMPEGPath, 1920),
	})
	bookingService := service.NewBookingService(bookingRepo, destinationRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, destinationRepo)
	statsService := service.NewStatsService(bookingRepo, userRepo)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterPages(e, cfg.FrontendBaseURL)
	transport.RegisterSwagger(e)
	transport.RegisterAuth(e, authService)
	transport.RegisterDestinations(e, authService, destinationService)
	transport.RegisterBookings(e, authService, bookingService)
	transport.RegisterWishlist(e, authService, wishlistService)
	transport.RegisterStats(e, authService, statsService)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/halya-h/MovieMapUA/internal/cache"
	domainrepo "github.com/halya-h/MovieMapUA/internal/domain/repository"
	"github.com/halya-h/MovieMapUA/internal/domain/service"
	"github.com/halya-h/MovieMapUA/internal/handler"
	"github.com/halya-h/MovieMapUA/internal/infrastructure/database"
	fsinfra "github.com/halya-h/MovieMapUA/internal/infrastructure/firestore"
	"github.com/halya-h/MovieMapUA/internal/infrastructure/maps"
	"github.com/halya-h/MovieMapUA/internal/infrastructure/translate"
	"github.com/halya-h/MovieMapUA/internal/infrastructure/tripadvisor"
	"github.com/halya-h/MovieMapUA/internal/repository"
	"github.com/halya-h/MovieMapUA/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	required := []string{
		"SUPABASE_URL",
		"SUPABASE_ANON_KEY",
		"TRIPADVISOR_KEY",
		"GOOGLE_TRANSLATE_API_KEY",
		"MAPBOX_TOKEN",
		"FIRESTORE_PROJECT_ID",
	}
	for _, name := range required {
		if os.Getenv(name) == "" {
			log.Fatalf("Environment variable %s is not set", name)
		}
	}

	ctx := context.Background()

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabase health check failed: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	moviesRepo := repository.NewSupabaseMoviesRepository(supabaseClient)
	locationsRepo := repository.NewSupabaseLocationsRepository(supabaseClient)
	commentsRepo := repository.NewSupabaseCommentsRepository(supabaseClient)

	// The PostGIS radius search needs a direct connection; without the
	// database password the endpoint is served as unavailable.
	var nearbyRepo domainrepo.NearbyLocationsRepository
	if os.Getenv("SUPABASE_DB_PASSWORD") != "" {
		pgClient, err := database.NewPostgreSQLClient()
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
		}
		defer pgClient.Close()
		nearbyRepo = repository.NewPostgresLocationsRepository(pgClient)
		fmt.Println("✅ PostgreSQL connection successful!")
	} else {
		fmt.Println("Warning: SUPABASE_DB_PASSWORD not set, nearby search disabled")
	}

	firestoreClient, err := fsinfra.NewFirestoreClient(ctx, os.Getenv("FIRESTORE_PROJECT_ID"))
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	favoritesRepo := repository.NewFirestoreFavoritesRepository(firestoreClient.GetClient())

	var (
		detailStore      cache.DetailStore      = cache.NewMemoryDetailStore()
		translationStore cache.TranslationStore = cache.NewMemoryTranslationStore()
	)
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisClient, err := cache.Connect(ctx, redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		detailStore = cache.NewRedisDetailStore(redisClient)
		translationStore = cache.NewRedisTranslationStore(redisClient)
		fmt.Println("✅ Redis connection successful!")
	}

	placesClient := tripadvisor.NewClient(os.Getenv("TRIPADVISOR_KEY"))
	translateClient := translate.NewClient(os.Getenv("GOOGLE_TRANSLATE_API_KEY"))
	directionsProvider := maps.NewMapboxDirectionsProvider(os.Getenv("MAPBOX_TOKEN"))

	suggestionService := service.NewSuggestionService(placesClient, translateClient, detailStore, translationStore)
	routeService := service.NewFavoriteRouteService(
		service.NewRouteClusterer(), favoritesRepo, directionsProvider, suggestionService)

	itineraryUseCase := usecase.NewItineraryUseCase(moviesRepo, locationsRepo, favoritesRepo, routeService)
	favoritesUseCase := usecase.NewFavoritesUseCase(moviesRepo, favoritesRepo, routeService)

	r := gin.Default()
	handler.RegisterRoutes(r, &handler.Handlers{
		Movies:      handler.NewMoviesHandler(moviesRepo),
		Locations:   handler.NewLocationsHandler(locationsRepo, nearbyRepo),
		Comments:    handler.NewCommentsHandler(commentsRepo),
		Favorites:   handler.NewFavoritesHandler(favoritesUseCase),
		Itinerary:   handler.NewItineraryHandler(itineraryUseCase),
		Suggestions: handler.NewSuggestionsHandler(suggestionService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("MovieMapUA server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

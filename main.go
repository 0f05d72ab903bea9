package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/api"
	api_i "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/api/i"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/api/identity"
	mapapi "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/api/maps"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/config"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/infrastruture/cache"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/infrastruture/lock"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/infrastruture/repo"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/infrastruture/token"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/logging"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/service"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mapCollectionName = "maps"

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mapRepo        i.MapRepo
	mapCache       i.MapCache
	locker         i.Locker
	mapService     i.MapService
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	mapController  api_i.Controller
	authController api_i.Controller
	router         *api.Router
	appLogger      *logging.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMapRepo() {
	mapRepo = repo.NewMapRepo(mongoClient, config.Envs.DBName, mapCollectionName)
	appLogger.Info("Map repository initialized")
}

func initMapCache() {
	var err error
	mapCache, err = cache.NewRedisMapCache(redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating map cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Map cache initialized")
}

func initLocker() {
	var err error
	locker, err = lock.NewRedsyncLocker(redisClient)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating locker: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Locker initialized")
}

func initMapService() {
	genLogger, err := logging.New("MAP-GEN", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating map generator logger: %v", err))
		os.Exit(1)
	}

	mapService, err = service.NewMapGenerator(&service.MapGeneratorConfig{
		Repo:   mapRepo,
		Cache:  mapCache,
		Locker: locker,
		Logger: genLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating map generator: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Map generator initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAdminAuth(config.Envs.AdminKeyHash, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	var err error
	mapController, err = mapapi.NewMapController(mapService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating map controller: %v", err))
		os.Exit(1)
	}
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mapController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	appLogger, _ = logging.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initMapRepo()
	initMapCache()
	initLocker()
	initMapService()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

package api

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/frontiertower/floorfinder-sub000/api/controllers"
	"github.com/frontiertower/floorfinder-sub000/api/transport"
	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/frontiertower/floorfinder-sub000/ratings"
	"github.com/frontiertower/floorfinder-sub000/scoring"
	"github.com/frontiertower/floorfinder-sub000/storage"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	roomStorage := &storage.DynamoRoomStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameRooms,
	}
	kvStorage := s.keyValueStorage(dynamoClient)

	juryService := ratings.NewService(ratings.Config{
		Rooms:              roomStorage,
		Remote:             kvStorage,
		Rules:              scoring.Rules{Variant: scoring.ParseVariant(s.config.ScoringVariant)},
		Judges:             s.config.Judges,
		MaxConcurrentReads: s.config.MaxConcurrentReads,
		Metrics:            ratings.NewMetrics(prometheus.DefaultRegisterer),
	})

	//Register controllers
	roomController := controllers.NewRoomController(roomStorage)
	roomController.RegisterRoutes(r)
	juryController := controllers.NewJuryController(juryService)
	juryController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(juryService)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) keyValueStorage(dynamoClient *dynamodb.Client) storage.KeyValueStorage {
	if s.config.Backend == BackendRedis {
		kv, err := storage.NewRedisKeyValueStorage(context.Background(), s.config.RedisAddr, s.config.RedisPrefix)
		if err != nil {
			logging.Log.Errorf("failed to connect to redis at %s: %v", s.config.RedisAddr, err)
			panic("failed to connect to redis")
		}
		logging.Log.Infof("Using redis key-value storage at %s", s.config.RedisAddr)
		return kv
	}

	logging.Log.Infof("Using dynamo key-value storage table %s", s.config.TableNameKV)
	return &storage.DynamoKeyValueStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameKV,
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}

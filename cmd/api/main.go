package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/order-intake-service/internal/aws"
	"github.com/example/order-intake-service/internal/config"
	"github.com/example/order-intake-service/internal/handlers"
	"github.com/example/order-intake-service/internal/logger"
	"github.com/example/order-intake-service/internal/orders"
)

func setupRouter(zlog *zap.Logger, hcfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger(zlog))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterOrderRoutes(r, hcfg)

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	hcfg := handlers.HandlerConfig{
		Store: orders.NewSimulatedStore(zlog),
		Log:   zlog,
	}

	// AWS-backed collaborators are only wired when configured; the service
	// runs self-contained otherwise.
	if cfg.OrdersTable != "" || cfg.QueueURL != "" || cfg.MetricsNamespace != "" {
		clients, err := aws.NewAWSClients(context.Background())
		if err != nil {
			zlog.Fatal("failed to init aws clients", zap.Error(err))
		}
		if cfg.OrdersTable != "" {
			hcfg.Store = orders.NewDynamoStore(clients.DynamoDB, cfg.OrdersTable)
		}
		if cfg.QueueURL != "" {
			hcfg.Publisher = aws.NewPublisher(clients.SQS, cfg.QueueURL)
		}
		if cfg.MetricsNamespace != "" {
			hcfg.Metrics = aws.NewMetrics(clients.CloudWatch, cfg.MetricsNamespace)
		}
	}

	r := setupRouter(zlog, hcfg)

	if cfg.RunLocal {
		zlog.Info("running local server", zap.String("addr", cfg.ListenAddr))
		if err := r.Run(cfg.ListenAddr); err != nil {
			zlog.Fatal("server exited", zap.Error(err))
		}
		return
	}

	adapter := ginadapter.New(r)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

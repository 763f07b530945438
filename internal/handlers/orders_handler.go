package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/order-intake-service/internal/aws"
	"github.com/example/order-intake-service/internal/orders"
	"github.com/example/order-intake-service/internal/payload"
)

// HandlerConfig groups dependencies for the orders handler. Publisher and
// Metrics are optional; Store is required.
type HandlerConfig struct {
	Store     orders.Store
	Publisher *aws.Publisher
	Metrics   *aws.Metrics
	Log       *zap.Logger
}

// RegisterOrderRoutes registers the order intake endpoint. Any method other
// than POST on the endpoint gets a 405 with a fixed body.
func RegisterOrderRoutes(r *gin.Engine, cfg HandlerConfig) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	v := payload.New(log)

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		log.Warn("only POST allowed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Use POST"})
	})

	r.POST("/orders", func(c *gin.Context) {
		ctx := c.Request.Context()
		log.Info("received request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)

		// Decode with json.Number so integer quantities stay distinguishable
		// from floats and booleans.
		dec := json.NewDecoder(c.Request.Body)
		dec.UseNumber()
		var data map[string]any
		if err := dec.Decode(&data); err != nil || len(data) == 0 {
			log.Error("no JSON body", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}

		if err := v.Validate(data); err != nil {
			log.Error("validation failed", zap.Error(err))
			countOrder(c, cfg, aws.OutcomeRejected)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rec := orders.FromPayload(data, payload.NewMetadata())
		if err := cfg.Store.Save(ctx, rec); err != nil {
			log.Error("error saving to DB", zap.Error(err),
				zap.String("order_id", rec.OrderID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}

		if cfg.Publisher != nil {
			if err := cfg.Publisher.PublishOrderCreated(ctx, rec.OrderID, rec.ProcessingID); err != nil {
				log.Warn("order.created publish failed", zap.Error(err),
					zap.String("order_id", rec.OrderID),
				)
			}
		}
		countOrder(c, cfg, aws.OutcomeAccepted)

		items, _ := data["items"].([]any)
		c.JSON(http.StatusOK, gin.H{
			"status":           "processed",
			"order_id":         data["order_id"],
			"items_count":      len(items),
			"total_amount":     data["total_amount"],
			"payment_method":   data["payment_method"],
			"shipping_address": data["shipping_address"],
			"message":          "Order received and stored.",
		})
		log.Info("order processed", zap.Any("order_id", data["order_id"]),
			zap.String("processing_id", rec.ProcessingID),
		)
	})
}

func countOrder(c *gin.Context, cfg HandlerConfig, outcome string) {
	if cfg.Metrics == nil {
		return
	}
	if err := cfg.Metrics.CountOrder(c.Request.Context(), outcome); err != nil && cfg.Log != nil {
		cfg.Log.Warn("metric emission failed", zap.Error(err))
	}
}

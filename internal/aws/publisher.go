package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// Publisher emits order.created events to SQS after a successful save.
// Publishing is best-effort: the caller logs failures and the HTTP response
// is unaffected.
type Publisher struct {
	SQS      SQSAPI
	QueueURL string
}

// NewPublisher returns a Publisher bound to a queue URL.
func NewPublisher(sqsClient SQSAPI, queueURL string) *Publisher {
	return &Publisher{
		SQS:      sqsClient,
		QueueURL: queueURL,
	}
}

type orderCreatedEvent struct {
	Event        string `json:"event"`
	OrderID      string `json:"order_id"`
	ProcessingID string `json:"processing_id,omitempty"`
}

// PublishOrderCreated sends one order.created message referencing the stored
// order.
func (p *Publisher) PublishOrderCreated(ctx context.Context, orderID, processingID string) error {
	body, err := json.Marshal(orderCreatedEvent{
		Event:        "order.created",
		OrderID:      orderID,
		ProcessingID: processingID,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := string(body)
	input := &sqs.SendMessageInput{
		QueueUrl:    &p.QueueURL,
		MessageBody: &msg,
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"event": {
				DataType:    strPtr("String"),
				StringValue: strPtr("order.created"),
			},
		},
	}

	if _, err := p.SQS.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func strPtr(s string) *string { return &s }

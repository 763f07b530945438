package aws

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, params)
	return &sqs.SendMessageOutput{}, nil
}

func TestPublishOrderCreated(t *testing.T) {
	fake := &fakeSQS{}
	p := NewPublisher(fake, "https://sqs.example/orders")

	if err := p.PublishOrderCreated(context.Background(), "order-1", "proc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.inputs) != 1 {
		t.Fatalf("expected one message, got %d", len(fake.inputs))
	}

	in := fake.inputs[0]
	if *in.QueueUrl != "https://sqs.example/orders" {
		t.Fatalf("queue url mismatch: %s", *in.QueueUrl)
	}

	var event orderCreatedEvent
	if err := json.Unmarshal([]byte(*in.MessageBody), &event); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if event.Event != "order.created" || event.OrderID != "order-1" || event.ProcessingID != "proc-1" {
		t.Fatalf("unexpected event: %+v", event)
	}

	attr, ok := in.MessageAttributes["event"]
	if !ok || *attr.StringValue != "order.created" {
		t.Fatalf("event attribute missing or wrong: %+v", in.MessageAttributes)
	}
}

package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
)

type fakeCloudWatch struct {
	inputs []*cloudwatch.PutMetricDataInput
}

func (f *fakeCloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, params)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestCountOrder(t *testing.T) {
	fake := &fakeCloudWatch{}
	m := NewMetrics(fake, "OrderIntake")

	if err := m.CountOrder(context.Background(), OutcomeAccepted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.inputs) != 1 {
		t.Fatalf("expected one put, got %d", len(fake.inputs))
	}

	in := fake.inputs[0]
	if *in.Namespace != "OrderIntake" {
		t.Fatalf("namespace mismatch: %s", *in.Namespace)
	}
	if len(in.MetricData) != 1 {
		t.Fatalf("expected one datum, got %d", len(in.MetricData))
	}
	datum := in.MetricData[0]
	if *datum.MetricName != "OrdersProcessed" || *datum.Value != 1 {
		t.Fatalf("unexpected datum: %+v", datum)
	}
	if len(datum.Dimensions) != 1 || *datum.Dimensions[0].Value != OutcomeAccepted {
		t.Fatalf("unexpected dimensions: %+v", datum.Dimensions)
	}
}

package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Outcome dimension values for the intake counter.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Metrics publishes order intake counters to CloudWatch. Emission is
// best-effort; callers log and move on when it fails.
type Metrics struct {
	CW        CloudWatchAPI
	Namespace string
}

// NewMetrics returns a Metrics emitter for the given namespace.
func NewMetrics(cw CloudWatchAPI, namespace string) *Metrics {
	return &Metrics{
		CW:        cw,
		Namespace: namespace,
	}
}

// CountOrder increments the OrdersProcessed counter for one outcome.
func (m *Metrics) CountOrder(ctx context.Context, outcome string) error {
	one := 1.0
	_, err := m.CW.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &m.Namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: strPtr("OrdersProcessed"),
				Unit:       cwtypes.StandardUnitCount,
				Value:      &one,
				Dimensions: []cwtypes.Dimension{
					{Name: strPtr("Outcome"), Value: &outcome},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	submissionCounter    metric.Int64Counter
	notificationCounter  metric.Int64Counter
	notificationDuration metric.Float64Histogram
)

// InitIntakeMetrics creates the instruments against the current global meter provider.
// Record calls before init are dropped.
func InitIntakeMetrics() error {
	meter := otel.Meter("dohapopular.intake")

	var err error
	submissionCounter, err = meter.Int64Counter(
		"intake.submissions",
		metric.WithDescription("Public form submissions stored"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return err
	}

	notificationCounter, err = meter.Int64Counter(
		"intake.notifications",
		metric.WithDescription("Admin notification mail attempts"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return err
	}

	notificationDuration, err = meter.Float64Histogram(
		"intake.notification.duration",
		metric.WithDescription("Time spent handing a notification to the mail transport"),
		metric.WithUnit("ms"),
	)
	return err
}

// RecordSubmission counts one stored submission of kind (inquiry, application, testimonial).
func RecordSubmission(ctx context.Context, kind string) {
	if submissionCounter != nil {
		submissionCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// RecordNotification counts one notification attempt and its outcome.
func RecordNotification(ctx context.Context, kind string, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(attribute.String("kind", kind), attribute.String("status", status))
	if notificationCounter != nil {
		notificationCounter.Add(ctx, 1, attrs)
	}
	if notificationDuration != nil {
		notificationDuration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	}
}

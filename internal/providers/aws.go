package providers

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/cloudsentry/cloudsentry/internal/config"
	"github.com/cloudsentry/cloudsentry/internal/domain/monitoring"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/metrics"
)

// CloudWatch query parameters for EC2 CPU utilization: the last hour at
// five minute resolution, averaged.
const (
	cloudwatchWindow = 60 * time.Minute
	cloudwatchPeriod = int32(300)
)

// loadAWSConfig builds the SDK config, preferring static credentials when
// both halves are configured and falling back to the default chain.
func loadAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		return awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		)
	}
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
}

// CloudWatchFetcher retrieves CPU utilization for EC2-backed resources
// from the CloudWatch statistics API.
type CloudWatchFetcher struct {
	cfg config.AWSConfig
	log *logger.Logger

	// newClient is swappable for tests
	newClient func(ctx context.Context) (cloudwatchAPI, error)
}

type cloudwatchAPI interface {
	GetMetricStatistics(ctx context.Context, params *cloudwatch.GetMetricStatisticsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricStatisticsOutput, error)
}

// NewCloudWatchFetcher creates a CloudWatch-backed metrics fetcher
func NewCloudWatchFetcher(cfg config.AWSConfig, log *logger.Logger) *CloudWatchFetcher {
	f := &CloudWatchFetcher{cfg: cfg, log: log}
	f.newClient = func(ctx context.Context) (cloudwatchAPI, error) {
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return cloudwatch.NewFromConfig(awsCfg), nil
	}
	return f
}

// FetchMetrics queries AWS/EC2 CPUUtilization for the resource's external
// id. Any failure degrades to an empty slice.
func (f *CloudWatchFetcher) FetchMetrics(ctx context.Context, res *resource.Resource) []monitoring.MetricPoint {
	client, err := f.newClient(ctx)
	if err != nil {
		f.log.WithError(err).Warnf("cloudwatch client init failed for %s", res.ResourceID)
		metrics.RecordMetricFetch("aws", false)
		return []monitoring.MetricPoint{}
	}

	end := time.Now().UTC()
	start := end.Add(-cloudwatchWindow)

	out, err := client.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String("AWS/EC2"),
		MetricName: aws.String("CPUUtilization"),
		Dimensions: []cwtypes.Dimension{
			{Name: aws.String("InstanceId"), Value: aws.String(res.ResourceID)},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(cloudwatchPeriod),
		Statistics: []cwtypes.Statistic{cwtypes.StatisticAverage},
	})
	if err != nil {
		f.log.WithError(err).Warnf("cloudwatch fetch failed for %s", res.ResourceID)
		metrics.RecordMetricFetch("aws", false)
		return []monitoring.MetricPoint{}
	}

	points := make([]monitoring.MetricPoint, 0, len(out.Datapoints))
	for _, dp := range out.Datapoints {
		if dp.Timestamp == nil || dp.Average == nil {
			continue
		}
		cpu := *dp.Average
		points = append(points, monitoring.MetricPoint{
			Timestamp: *dp.Timestamp,
			CPU:       &cpu,
		})
	}

	// CloudWatch returns datapoints in arbitrary order
	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})

	metrics.RecordMetricFetch("aws", true)
	return points
}

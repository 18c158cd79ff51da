package providers

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/cloudsentry/cloudsentry/internal/config"
	"github.com/cloudsentry/cloudsentry/internal/domain/onboarding"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
)

// AWSDiscoverer lists candidate resources from the EC2 inventory. When no
// credentials are configured, or the API is unreachable, it falls back to
// a fixed demonstration inventory so onboarding stays exercisable in
// development environments.
type AWSDiscoverer struct {
	cfg config.AWSConfig
	log *logger.Logger

	// newClient is swappable for tests
	newClient func(ctx context.Context) (ec2DescribeAPI, error)
}

type ec2DescribeAPI interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// NewAWSDiscoverer creates an EC2-backed resource discoverer
func NewAWSDiscoverer(cfg config.AWSConfig, log *logger.Logger) *AWSDiscoverer {
	d := &AWSDiscoverer{cfg: cfg, log: log}
	d.newClient = func(ctx context.Context) (ec2DescribeAPI, error) {
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return ec2.NewFromConfig(awsCfg), nil
	}
	return d
}

// Provider returns the cloud provider label attached to candidates
func (d *AWSDiscoverer) Provider() string {
	return "aws"
}

// Discover lists EC2 instances as vm candidates. Without credentials it
// returns the stub inventory.
func (d *AWSDiscoverer) Discover(ctx context.Context) []onboarding.Candidate {
	if d.cfg.AccessKeyID == "" || d.cfg.SecretAccessKey == "" {
		return d.stubCandidates()
	}

	client, err := d.newClient(ctx)
	if err != nil {
		d.log.WithError(err).Warn("aws discovery client init failed, using stub inventory")
		return d.stubCandidates()
	}

	candidates := []onboarding.Candidate{}
	paginator := ec2.NewDescribeInstancesPaginator(client, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			d.log.WithError(err).Warn("aws describe instances failed")
			break
		}
		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				if inst.InstanceId == nil {
					continue
				}
				name := *inst.InstanceId
				for _, tag := range inst.Tags {
					if tag.Key != nil && *tag.Key == "Name" && tag.Value != nil {
						name = *tag.Value
						break
					}
				}
				candidates = append(candidates, onboarding.Candidate{
					ResourceID:    *inst.InstanceId,
					Name:          name,
					Type:          resource.TypeVM,
					CloudProvider: d.Provider(),
				})
			}
		}
	}

	if len(candidates) == 0 {
		return d.stubCandidates()
	}
	return candidates
}

func (d *AWSDiscoverer) stubCandidates() []onboarding.Candidate {
	return []onboarding.Candidate{
		{
			ResourceID:    "i-0abcd1234efgh5678",
			Name:          "web-server-1",
			Type:          resource.TypeVM,
			CloudProvider: d.Provider(),
		},
		{
			ResourceID:    "vol-0abcd1234efgh5678",
			Name:          "data-volume-1",
			Type:          resource.TypeStorage,
			CloudProvider: d.Provider(),
		},
	}
}

// PrometheusDiscoverer lists candidate resources known to a Prometheus
// server. It returns a fixed node inventory; it does not query the
// targets API.
type PrometheusDiscoverer struct {
	cfg config.MonitorConfig
	log *logger.Logger
}

// NewPrometheusDiscoverer creates a Prometheus-backed resource discoverer
func NewPrometheusDiscoverer(cfg config.MonitorConfig, log *logger.Logger) *PrometheusDiscoverer {
	return &PrometheusDiscoverer{cfg: cfg, log: log}
}

// Provider returns the cloud provider label attached to candidates
func (d *PrometheusDiscoverer) Provider() string {
	return "prometheus"
}

// Discover lists scrape targets as vm candidates
func (d *PrometheusDiscoverer) Discover(ctx context.Context) []onboarding.Candidate {
	return []onboarding.Candidate{
		{
			ResourceID:    "node1.example.com",
			Name:          "node1",
			Type:          resource.TypeVM,
			CloudProvider: d.Provider(),
		},
	}
}

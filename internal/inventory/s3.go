package inventory

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/ShifengHuGit/AWSResourceCollection/internal/log"
	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// CollectBuckets lists the account's buckets and resolves each bucket's
// region. Location lookups are best-effort: a denied GetBucketLocation
// leaves the region empty rather than failing the run.
func (g *Globals) CollectBuckets(ctx context.Context) ([]models.Bucket, []types.Bucket, error) {
	output, err := g.S3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, nil, handleAWSError(err, "listing S3 buckets")
	}

	buckets := make([]models.Bucket, 0, len(output.Buckets))
	for _, raw := range output.Buckets {
		bucket := models.Bucket{
			Name:   aws.ToString(raw.Name),
			Region: g.bucketRegion(ctx, aws.ToString(raw.Name)),
		}
		if raw.CreationDate != nil {
			bucket.Created = *raw.CreationDate
		}
		buckets = append(buckets, bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Name < buckets[j].Name
	})

	return buckets, output.Buckets, nil
}

func (g *Globals) bucketRegion(ctx context.Context, name string) string {
	output, err := g.S3.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(name),
	})
	if err != nil {
		log.Debugf("bucket location lookup failed for %s: %v", name, err)
		return ""
	}
	// us-east-1 is reported as an empty location constraint.
	if output.LocationConstraint == "" {
		return "us-east-1"
	}
	return string(output.LocationConstraint)
}

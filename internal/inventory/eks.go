package inventory

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// CollectClusters lists the region's EKS clusters and describes each one to
// pick up version, status and API endpoint.
func (c *Clients) CollectClusters(ctx context.Context) ([]models.EKSCluster, []types.Cluster, error) {
	var names []string

	input := &eks.ListClustersInput{}
	for {
		output, err := c.EKS.ListClusters(ctx, input)
		if err != nil {
			return nil, nil, handleAWSError(err, "listing EKS clusters")
		}
		names = append(names, output.Clusters...)
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	sort.Strings(names)

	clusters := make([]models.EKSCluster, 0, len(names))
	raw := make([]types.Cluster, 0, len(names))
	for _, name := range names {
		output, err := c.EKS.DescribeCluster(ctx, &eks.DescribeClusterInput{
			Name: aws.String(name),
		})
		if err != nil {
			return nil, nil, handleAWSError(err, "describing EKS cluster "+name)
		}
		if output.Cluster == nil {
			continue
		}
		raw = append(raw, *output.Cluster)
		clusters = append(clusters, models.EKSCluster{
			Name:     aws.ToString(output.Cluster.Name),
			Version:  aws.ToString(output.Cluster.Version),
			Status:   string(output.Cluster.Status),
			Endpoint: aws.ToString(output.Cluster.Endpoint),
		})
	}

	return clusters, raw, nil
}

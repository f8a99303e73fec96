package inventory

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecr/types"

	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// CollectRepositories lists the region's ECR repositories.
func (c *Clients) CollectRepositories(ctx context.Context) ([]models.ECRRepository, []types.Repository, error) {
	var raw []types.Repository

	input := &ecr.DescribeRepositoriesInput{}
	for {
		output, err := c.ECR.DescribeRepositories(ctx, input)
		if err != nil {
			return nil, nil, handleAWSError(err, "describing ECR repositories")
		}
		raw = append(raw, output.Repositories...)
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	repositories := make([]models.ECRRepository, 0, len(raw))
	for _, repository := range raw {
		repo := models.ECRRepository{
			Name: aws.ToString(repository.RepositoryName),
			URI:  aws.ToString(repository.RepositoryUri),
		}
		if repository.CreatedAt != nil {
			repo.Created = *repository.CreatedAt
		}
		repositories = append(repositories, repo)
	}

	sort.Slice(repositories, func(i, j int) bool {
		return repositories[i].Name < repositories[j].Name
	})

	return repositories, raw, nil
}

package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// CollectDBInstances lists every RDS instance in the region. Aurora cluster
// members show up here as regular instances, so no separate cluster call is
// needed.
func (c *Clients) CollectDBInstances(ctx context.Context) ([]models.RDSInstance, []types.DBInstance, error) {
	var raw []types.DBInstance

	input := &rds.DescribeDBInstancesInput{}
	for {
		output, err := c.RDS.DescribeDBInstances(ctx, input)
		if err != nil {
			return nil, nil, handleAWSError(err, "describing RDS instances")
		}
		raw = append(raw, output.DBInstances...)
		if output.Marker == nil {
			break
		}
		input.Marker = output.Marker
	}

	instances := make([]models.RDSInstance, 0, len(raw))
	for _, db := range raw {
		instance := models.RDSInstance{
			Identifier:    aws.ToString(db.DBInstanceIdentifier),
			Engine:        aws.ToString(db.Engine),
			EngineVersion: aws.ToString(db.EngineVersion),
			Class:         aws.ToString(db.DBInstanceClass),
			Status:        aws.ToString(db.DBInstanceStatus),
			MultiAZ:       aws.ToBool(db.MultiAZ),
		}
		// Instances still being created have no endpoint yet.
		if db.Endpoint != nil && db.Endpoint.Address != nil {
			instance.Endpoint = fmt.Sprintf("%s:%d", aws.ToString(db.Endpoint.Address), aws.ToInt32(db.Endpoint.Port))
		}
		instances = append(instances, instance)
	}

	sort.Slice(instances, func(i, j int) bool {
		return instances[i].Identifier < instances[j].Identifier
	})

	return instances, raw, nil
}

package inventory

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/ShifengHuGit/AWSResourceCollection/internal/log"
	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// CollectLoadBalancers lists every ELBv2 load balancer together with its
// target groups. The returned map holds the raw target groups keyed by load
// balancer name for the snapshot.
func (c *Clients) CollectLoadBalancers(ctx context.Context) ([]models.LoadBalancer, []types.LoadBalancer, map[string][]types.TargetGroup, error) {
	var raw []types.LoadBalancer

	input := &elbv2.DescribeLoadBalancersInput{}
	for {
		output, err := c.ELB.DescribeLoadBalancers(ctx, input)
		if err != nil {
			return nil, nil, nil, handleAWSError(err, "describing load balancers")
		}
		raw = append(raw, output.LoadBalancers...)
		if output.NextMarker == nil {
			break
		}
		input.Marker = output.NextMarker
	}

	balancers := make([]models.LoadBalancer, 0, len(raw))
	rawGroups := make(map[string][]types.TargetGroup)
	for _, balancer := range raw {
		lb := models.LoadBalancer{
			Name:    aws.ToString(balancer.LoadBalancerName),
			ARN:     aws.ToString(balancer.LoadBalancerArn),
			Type:    string(balancer.Type),
			Scheme:  string(balancer.Scheme),
			VPCID:   aws.ToString(balancer.VpcId),
			DNSName: aws.ToString(balancer.DNSName),
			Targets: make(map[string][]string),
		}
		if balancer.State != nil {
			lb.State = string(balancer.State.Code)
		}

		groups, err := c.targetGroupsFor(ctx, lb.ARN)
		if err != nil {
			return nil, nil, nil, err
		}
		rawGroups[lb.Name] = groups

		for _, group := range groups {
			name := aws.ToString(group.TargetGroupName)
			lb.TargetGroups = append(lb.TargetGroups, name)
			if group.TargetType != types.TargetTypeEnumInstance {
				continue
			}
			lb.Targets[name] = c.registeredInstances(ctx, group)
		}

		balancers = append(balancers, lb)
	}

	sort.Slice(balancers, func(i, j int) bool {
		return balancers[i].Name < balancers[j].Name
	})

	return balancers, raw, rawGroups, nil
}

func (c *Clients) targetGroupsFor(ctx context.Context, lbARN string) ([]types.TargetGroup, error) {
	var groups []types.TargetGroup

	input := &elbv2.DescribeTargetGroupsInput{
		LoadBalancerArn: aws.String(lbARN),
	}
	for {
		output, err := c.ELB.DescribeTargetGroups(ctx, input)
		if err != nil {
			return nil, handleAWSError(err, "describing target groups")
		}
		groups = append(groups, output.TargetGroups...)
		if output.NextMarker == nil {
			break
		}
		input.Marker = output.NextMarker
	}

	return groups, nil
}

// registeredInstances resolves which instances a target group currently
// routes to. Failures here only cost topology edges, so they are logged and
// swallowed.
func (c *Clients) registeredInstances(ctx context.Context, group types.TargetGroup) []string {
	output, err := c.ELB.DescribeTargetHealth(ctx, &elbv2.DescribeTargetHealthInput{
		TargetGroupArn: group.TargetGroupArn,
	})
	if err != nil {
		log.Debugf("target health lookup failed for %s: %v", aws.ToString(group.TargetGroupName), err)
		return nil
	}

	var instances []string
	for _, desc := range output.TargetHealthDescriptions {
		if desc.Target == nil || desc.Target.Id == nil {
			continue
		}
		instances = append(instances, aws.ToString(desc.Target.Id))
	}
	return instances
}

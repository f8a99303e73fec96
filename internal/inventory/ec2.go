package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

const TagName = "Name"

// CollectInstances returns one flat record per instance plus the verbatim
// reservations for the snapshot. Missing optional fields stay empty; the
// renderer substitutes the placeholder.
func (c *Clients) CollectInstances(ctx context.Context) ([]models.EC2Instance, []types.Reservation, error) {
	var reservations []types.Reservation

	input := &ec2.DescribeInstancesInput{}
	for {
		output, err := c.EC2.DescribeInstances(ctx, input)
		if err != nil {
			return nil, nil, handleAWSError(err, "describing EC2 instances")
		}
		reservations = append(reservations, output.Reservations...)
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	var instances []models.EC2Instance
	for _, reservation := range reservations {
		for _, instance := range reservation.Instances {
			if instance.InstanceId == nil {
				continue
			}
			instances = append(instances, flattenInstance(instance))
		}
	}

	sort.Slice(instances, func(i, j int) bool {
		if instances[i].Name == instances[j].Name {
			return instances[i].InstanceID < instances[j].InstanceID
		}
		return instances[i].Name < instances[j].Name
	})

	return instances, reservations, nil
}

func flattenInstance(instance types.Instance) models.EC2Instance {
	inst := models.EC2Instance{
		InstanceID: aws.ToString(instance.InstanceId),
		Type:       string(instance.InstanceType),
		PublicIP:   aws.ToString(instance.PublicIpAddress),
		PrivateIP:  aws.ToString(instance.PrivateIpAddress),
		VPCID:      aws.ToString(instance.VpcId),
		SubnetID:   aws.ToString(instance.SubnetId),
		Tags:       make(map[string]string),
	}

	if instance.State != nil {
		inst.State = string(instance.State.Name)
	}
	if instance.Placement != nil {
		inst.AZ = aws.ToString(instance.Placement.AvailabilityZone)
	}
	if instance.LaunchTime != nil {
		inst.LaunchTime = *instance.LaunchTime
	}

	// Instance-store mappings carry no Ebs block; skip them.
	for _, mapping := range instance.BlockDeviceMappings {
		if mapping.Ebs == nil || mapping.Ebs.VolumeId == nil {
			continue
		}
		inst.Volumes = append(inst.Volumes, aws.ToString(mapping.Ebs.VolumeId))
	}

	for _, tag := range instance.Tags {
		if tag.Key == nil || tag.Value == nil {
			continue
		}
		key := aws.ToString(tag.Key)
		inst.Tags[key] = aws.ToString(tag.Value)
		if key == TagName {
			inst.Name = aws.ToString(tag.Value)
		}
	}

	return inst
}

// CollectVolumes returns every EBS volume in the region, attached or not.
func (c *Clients) CollectVolumes(ctx context.Context) ([]models.Volume, []types.Volume, error) {
	var raw []types.Volume

	input := &ec2.DescribeVolumesInput{}
	for {
		output, err := c.EC2.DescribeVolumes(ctx, input)
		if err != nil {
			return nil, nil, handleAWSError(err, "describing EBS volumes")
		}
		raw = append(raw, output.Volumes...)
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	volumes := make([]models.Volume, 0, len(raw))
	for _, volume := range raw {
		vol := models.Volume{
			VolumeID:  aws.ToString(volume.VolumeId),
			SizeGiB:   aws.ToInt32(volume.Size),
			Type:      string(volume.VolumeType),
			State:     string(volume.State),
			AZ:        aws.ToString(volume.AvailabilityZone),
			Encrypted: aws.ToBool(volume.Encrypted),
			Name:      nameTag(volume.Tags),
		}
		if volume.CreateTime != nil {
			vol.Created = *volume.CreateTime
		}
		for _, attachment := range volume.Attachments {
			if attachment.InstanceId != nil {
				vol.Attachments = append(vol.Attachments, aws.ToString(attachment.InstanceId))
			}
		}
		volumes = append(volumes, vol)
	}

	sort.Slice(volumes, func(i, j int) bool {
		return volumes[i].VolumeID < volumes[j].VolumeID
	})

	return volumes, raw, nil
}

func (c *Clients) CollectVpcs(ctx context.Context) ([]models.VPC, []types.Vpc, error) {
	var raw []types.Vpc

	input := &ec2.DescribeVpcsInput{}
	for {
		output, err := c.EC2.DescribeVpcs(ctx, input)
		if err != nil {
			return nil, nil, handleAWSError(err, "describing VPCs")
		}
		raw = append(raw, output.Vpcs...)
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	vpcs := make([]models.VPC, 0, len(raw))
	for _, vpc := range raw {
		vpcs = append(vpcs, models.VPC{
			VPCID:     aws.ToString(vpc.VpcId),
			Name:      nameTag(vpc.Tags),
			CIDR:      aws.ToString(vpc.CidrBlock),
			State:     string(vpc.State),
			IsDefault: aws.ToBool(vpc.IsDefault),
		})
	}

	sort.Slice(vpcs, func(i, j int) bool {
		return vpcs[i].VPCID < vpcs[j].VPCID
	})

	return vpcs, raw, nil
}

func (c *Clients) CollectSubnets(ctx context.Context) ([]models.Subnet, []types.Subnet, error) {
	var raw []types.Subnet

	input := &ec2.DescribeSubnetsInput{}
	for {
		output, err := c.EC2.DescribeSubnets(ctx, input)
		if err != nil {
			return nil, nil, handleAWSError(err, "describing subnets")
		}
		raw = append(raw, output.Subnets...)
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	subnets := make([]models.Subnet, 0, len(raw))
	for _, subnet := range raw {
		subnets = append(subnets, models.Subnet{
			SubnetID: aws.ToString(subnet.SubnetId),
			VPCID:    aws.ToString(subnet.VpcId),
			Name:     nameTag(subnet.Tags),
			CIDR:     aws.ToString(subnet.CidrBlock),
			AZ:       aws.ToString(subnet.AvailabilityZone),
			Public:   aws.ToBool(subnet.MapPublicIpOnLaunch),
		})
	}

	sort.Slice(subnets, func(i, j int) bool {
		return subnets[i].SubnetID < subnets[j].SubnetID
	})

	return subnets, raw, nil
}

func (c *Clients) CollectSecurityGroups(ctx context.Context) ([]models.SecurityGroup, []types.SecurityGroup, error) {
	var raw []types.SecurityGroup

	input := &ec2.DescribeSecurityGroupsInput{}
	for {
		output, err := c.EC2.DescribeSecurityGroups(ctx, input)
		if err != nil {
			return nil, nil, handleAWSError(err, "describing security groups")
		}
		raw = append(raw, output.SecurityGroups...)
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	groups := make([]models.SecurityGroup, 0, len(raw))
	for _, group := range raw {
		sg := models.SecurityGroup{
			GroupID:     aws.ToString(group.GroupId),
			GroupName:   aws.ToString(group.GroupName),
			VPCID:       aws.ToString(group.VpcId),
			Description: aws.ToString(group.Description),
		}
		for _, perm := range group.IpPermissions {
			sg.Rules = append(sg.Rules, formatPermission("ingress", perm)...)
		}
		for _, perm := range group.IpPermissionsEgress {
			sg.Rules = append(sg.Rules, formatPermission("egress", perm)...)
		}
		groups = append(groups, sg)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].GroupID < groups[j].GroupID
	})

	return groups, raw, nil
}

// formatPermission renders one rule line per CIDR range or peered group.
func formatPermission(direction string, perm types.IpPermission) []string {
	proto := aws.ToString(perm.IpProtocol)
	if proto == "-1" {
		proto = "all"
	}

	ports := ""
	if perm.FromPort != nil {
		from := aws.ToInt32(perm.FromPort)
		to := aws.ToInt32(perm.ToPort)
		if to != 0 && to != from {
			ports = fmt.Sprintf(" %d-%d", from, to)
		} else {
			ports = fmt.Sprintf(" %d", from)
		}
	}

	peer := "from"
	if direction == "egress" {
		peer = "to"
	}

	var rules []string
	for _, ipRange := range perm.IpRanges {
		rules = append(rules, fmt.Sprintf("%s %s%s %s %s", direction, proto, ports, peer, aws.ToString(ipRange.CidrIp)))
	}
	for _, ipRange := range perm.Ipv6Ranges {
		rules = append(rules, fmt.Sprintf("%s %s%s %s %s", direction, proto, ports, peer, aws.ToString(ipRange.CidrIpv6)))
	}
	for _, pair := range perm.UserIdGroupPairs {
		rules = append(rules, fmt.Sprintf("%s %s%s %s %s", direction, proto, ports, peer, aws.ToString(pair.GroupId)))
	}
	return rules
}

func nameTag(tags []types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == TagName {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}

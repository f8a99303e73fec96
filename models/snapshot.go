package models

import (
	"time"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	ecrtypes "github.com/aws/aws-sdk-go-v2/service/ecr/types"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// RunMetadata describes the run that produced a snapshot. Identity fields
// hold the placeholder when the STS lookup failed.
type RunMetadata struct {
	Tool        string    `json:"tool"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	AccountID   string    `json:"accountId"`
	CallerARN   string    `json:"callerArn"`
	Hostname    string    `json:"hostname"`
	Platform    string    `json:"platform"`
	Regions     []string  `json:"regions"`
}

// RegionDump holds the verbatim API responses collected in one region, with
// paginated calls merged into a single slice per call.
type RegionDump struct {
	Reservations   []ec2types.Reservation            `json:"reservations,omitempty"`
	Volumes        []ec2types.Volume                 `json:"volumes,omitempty"`
	VPCs           []ec2types.Vpc                    `json:"vpcs,omitempty"`
	Subnets        []ec2types.Subnet                 `json:"subnets,omitempty"`
	SecurityGroups []ec2types.SecurityGroup          `json:"securityGroups,omitempty"`
	DBInstances    []rdstypes.DBInstance             `json:"dbInstances,omitempty"`
	LoadBalancers  []elbtypes.LoadBalancer           `json:"loadBalancers,omitempty"`
	TargetGroups   map[string][]elbtypes.TargetGroup `json:"targetGroups,omitempty"`
	Clusters       []ekstypes.Cluster                `json:"clusters,omitempty"`
	Repositories   []ecrtypes.Repository             `json:"repositories,omitempty"`
}

// Snapshot is the persisted raw-response artifact for a whole run.
type Snapshot struct {
	Metadata RunMetadata            `json:"metadata"`
	Regions  map[string]*RegionDump `json:"regions"`
	Buckets  []s3types.Bucket       `json:"buckets,omitempty"`
}

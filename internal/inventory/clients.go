package inventory

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Clients bundles the service clients one regional collection pass uses.
type Clients struct {
	EC2 EC2API
	RDS RDSAPI
	ELB ELBAPI
	EKS EKSAPI
	ECR ECRAPI
}

func NewClients(cfg aws.Config) *Clients {
	return &Clients{
		EC2: ec2.NewFromConfig(cfg),
		RDS: rds.NewFromConfig(cfg),
		ELB: elbv2.NewFromConfig(cfg),
		EKS: eks.NewFromConfig(cfg),
		ECR: ecr.NewFromConfig(cfg),
	}
}

// Globals bundles the clients that are not bound to a selected region:
// region discovery, caller identity and the global S3 namespace.
type Globals struct {
	EC2 EC2API
	S3  S3API
	STS STSAPI
	SSM SSMAPI
}

func NewGlobals(cfg aws.Config) *Globals {
	return &Globals{
		EC2: ec2.NewFromConfig(cfg),
		S3:  s3.NewFromConfig(cfg),
		STS: sts.NewFromConfig(cfg),
		SSM: ssm.NewFromConfig(cfg),
	}
}

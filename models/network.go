package models

type VPC struct {
	VPCID     string
	Name      string
	CIDR      string
	State     string
	IsDefault bool
}

type Subnet struct {
	SubnetID string
	VPCID    string
	Name     string
	CIDR     string
	AZ       string
	Public   bool
}

type SecurityGroup struct {
	GroupID     string
	GroupName   string
	VPCID       string
	Description string
	Rules       []string
}

type LoadBalancer struct {
	Name         string
	ARN          string
	Type         string
	Scheme       string
	State        string
	VPCID        string
	DNSName      string
	TargetGroups []string
	// Targets maps a target group name to the instance IDs registered with
	// it; used for topology edges only.
	Targets map[string][]string
}

package models

// RegionInventory aggregates every flattened record collected in a single
// region. Global categories (S3) are tracked on the run, not here.
type RegionInventory struct {
	Region         string
	Instances      []EC2Instance
	Volumes        []Volume
	VPCs           []VPC
	Subnets        []Subnet
	SecurityGroups []SecurityGroup
	DBInstances    []RDSInstance
	LoadBalancers  []LoadBalancer
	Clusters       []EKSCluster
	Repositories   []ECRRepository
}

// Empty reports whether nothing at all was found in the region.
func (inv *RegionInventory) Empty() bool {
	return len(inv.Instances) == 0 &&
		len(inv.Volumes) == 0 &&
		len(inv.VPCs) == 0 &&
		len(inv.Subnets) == 0 &&
		len(inv.SecurityGroups) == 0 &&
		len(inv.DBInstances) == 0 &&
		len(inv.LoadBalancers) == 0 &&
		len(inv.Clusters) == 0 &&
		len(inv.Repositories) == 0
}

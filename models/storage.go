package models

import "time"

// Bucket is global to the account; Region is resolved per bucket via
// GetBucketLocation and degrades to the placeholder when the lookup fails.
type Bucket struct {
	Name    string
	Region  string
	Created time.Time
}

type EKSCluster struct {
	Name     string
	Version  string
	Status   string
	Endpoint string
}

type ECRRepository struct {
	Name    string
	URI     string
	Created time.Time
}

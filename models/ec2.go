package models

import "time"

// Placeholder is rendered wherever a field is absent on the source resource
// or a best-effort lookup failed.
const Placeholder = "N/A"

type EC2Instance struct {
	Name       string
	InstanceID string
	Type       string
	State      string
	PublicIP   string
	PrivateIP  string
	VPCID      string
	SubnetID   string
	AZ         string
	LaunchTime time.Time
	Volumes    []string
	Tags       map[string]string
}

type Volume struct {
	VolumeID    string
	Name        string
	SizeGiB     int32
	Type        string
	State       string
	AZ          string
	Encrypted   bool
	Created     time.Time
	Attachments []string
}

type Region struct {
	Name        string
	OptInStatus string
}

package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// Printer renders inventory tables to a single writer. The writer is
// usually the report tee, so nothing here may bypass it and write to
// os.Stdout directly.
type Printer struct {
	out         io.Writer
	placeholder string
}

func NewPrinter(out io.Writer, placeholder string) *Printer {
	if placeholder == "" {
		placeholder = models.Placeholder
	}
	return &Printer{out: out, placeholder: placeholder}
}

// RegionBanner announces the region whose tables follow.
func (p *Printer) RegionBanner(region string) {
	fmt.Fprintf(p.out, "\nCollecting resources for region: %s\n", region)
}

// Regions prints the numbered region list. The numbers are the 1-based
// indexes accepted by the --region flag.
func (p *Printer) Regions(regions []models.Region) {
	fmt.Fprintln(p.out, "Available regions:")
	for i, region := range regions {
		suffix := ""
		if region.OptInStatus == "not-opted-in" {
			suffix = " (not opted in)"
		}
		fmt.Fprintf(p.out, "%d: %s%s\n", i+1, region.Name, suffix)
	}
}

func (p *Printer) Instances(instances []models.EC2Instance) {
	p.section("EC2 Instances")
	if len(instances) == 0 {
		p.none("EC2 instances")
		return
	}

	header := table.Row{"Name", "Instance ID", "Type", "State", "Public IP", "Private IP", "VPC", "Subnet", "AZ", "Launched", "EBS Volumes"}
	records := make([]Record, 0, len(instances))
	for _, inst := range instances {
		records = append(records, Record{
			Cells: []string{
				p.orPlaceholder(inst.Name),
				inst.InstanceID,
				p.orPlaceholder(inst.Type),
				p.orPlaceholder(inst.State),
				p.orPlaceholder(inst.PublicIP),
				p.orPlaceholder(inst.PrivateIP),
				p.orPlaceholder(inst.VPCID),
				p.orPlaceholder(inst.SubnetID),
				p.orPlaceholder(inst.AZ),
				p.age(inst.LaunchTime),
				"",
			},
			List: inst.Volumes,
		})
	}

	rows := Reformat(records, 1, len(header)-1, p.placeholder)
	p.render(header, rows, 2)
}

func (p *Printer) Volumes(volumes []models.Volume) {
	p.section("EBS Volumes")
	if len(volumes) == 0 {
		p.none("EBS volumes")
		return
	}

	header := table.Row{"Volume ID", "Name", "Size (GiB)", "Type", "State", "AZ", "Encrypted", "Created", "Attached To"}
	records := make([]Record, 0, len(volumes))
	for _, vol := range volumes {
		records = append(records, Record{
			Cells: []string{
				vol.VolumeID,
				p.orPlaceholder(vol.Name),
				strconv.Itoa(int(vol.SizeGiB)),
				p.orPlaceholder(vol.Type),
				p.orPlaceholder(vol.State),
				p.orPlaceholder(vol.AZ),
				yesNo(vol.Encrypted),
				p.age(vol.Created),
				"",
			},
			List: vol.Attachments,
		})
	}

	rows := Reformat(records, 0, len(header)-1, p.placeholder)
	p.render(header, rows, 1)
}

func (p *Printer) VPCs(vpcs []models.VPC) {
	p.section("VPCs")
	if len(vpcs) == 0 {
		p.none("VPCs")
		return
	}

	header := table.Row{"VPC ID", "Name", "CIDR", "State", "Default"}
	rows := make([][]string, 0, len(vpcs))
	for _, vpc := range vpcs {
		rows = append(rows, []string{
			vpc.VPCID,
			p.orPlaceholder(vpc.Name),
			p.orPlaceholder(vpc.CIDR),
			p.orPlaceholder(vpc.State),
			yesNo(vpc.IsDefault),
		})
	}
	p.render(header, rows, 0)
}

func (p *Printer) Subnets(subnets []models.Subnet) {
	p.section("Subnets")
	if len(subnets) == 0 {
		p.none("subnets")
		return
	}

	header := table.Row{"Subnet ID", "VPC", "Name", "CIDR", "AZ", "Public IP on Launch"}
	rows := make([][]string, 0, len(subnets))
	for _, subnet := range subnets {
		rows = append(rows, []string{
			subnet.SubnetID,
			p.orPlaceholder(subnet.VPCID),
			p.orPlaceholder(subnet.Name),
			p.orPlaceholder(subnet.CIDR),
			p.orPlaceholder(subnet.AZ),
			yesNo(subnet.Public),
		})
	}
	p.render(header, rows, 0)
}

func (p *Printer) SecurityGroups(groups []models.SecurityGroup) {
	p.section("Security Groups")
	if len(groups) == 0 {
		p.none("security groups")
		return
	}

	header := table.Row{"Group ID", "Name", "VPC", "Description", "Rules"}
	records := make([]Record, 0, len(groups))
	for _, group := range groups {
		records = append(records, Record{
			Cells: []string{
				group.GroupID,
				p.orPlaceholder(group.GroupName),
				p.orPlaceholder(group.VPCID),
				p.orPlaceholder(group.Description),
				"",
			},
			List: group.Rules,
		})
	}

	rows := Reformat(records, 0, len(header)-1, p.placeholder)
	p.render(header, rows, 1)
}

func (p *Printer) DBInstances(instances []models.RDSInstance) {
	p.section("RDS Instances")
	if len(instances) == 0 {
		p.none("RDS instances")
		return
	}

	header := table.Row{"Identifier", "Engine", "Version", "Class", "Status", "Endpoint", "Multi-AZ"}
	rows := make([][]string, 0, len(instances))
	for _, db := range instances {
		rows = append(rows, []string{
			db.Identifier,
			p.orPlaceholder(db.Engine),
			p.orPlaceholder(db.EngineVersion),
			p.orPlaceholder(db.Class),
			p.orPlaceholder(db.Status),
			p.orPlaceholder(db.Endpoint),
			yesNo(db.MultiAZ),
		})
	}
	p.render(header, rows, 0)
}

func (p *Printer) LoadBalancers(balancers []models.LoadBalancer) {
	p.section("Load Balancers")
	if len(balancers) == 0 {
		p.none("load balancers")
		return
	}

	header := table.Row{"Name", "Type", "Scheme", "State", "VPC", "DNS Name", "Target Groups"}
	records := make([]Record, 0, len(balancers))
	for _, lb := range balancers {
		records = append(records, Record{
			Cells: []string{
				lb.Name,
				p.orPlaceholder(lb.Type),
				p.orPlaceholder(lb.Scheme),
				p.orPlaceholder(lb.State),
				p.orPlaceholder(lb.VPCID),
				p.orPlaceholder(lb.DNSName),
				"",
			},
			List: lb.TargetGroups,
		})
	}

	rows := Reformat(records, 0, len(header)-1, p.placeholder)
	p.render(header, rows, 1)
}

func (p *Printer) Clusters(clusters []models.EKSCluster) {
	p.section("EKS Clusters")
	if len(clusters) == 0 {
		p.none("EKS clusters")
		return
	}

	header := table.Row{"Name", "Version", "Status", "Endpoint"}
	rows := make([][]string, 0, len(clusters))
	for _, cluster := range clusters {
		rows = append(rows, []string{
			cluster.Name,
			p.orPlaceholder(cluster.Version),
			p.orPlaceholder(cluster.Status),
			p.orPlaceholder(cluster.Endpoint),
		})
	}
	p.render(header, rows, 0)
}

func (p *Printer) Repositories(repos []models.ECRRepository) {
	p.section("ECR Repositories")
	if len(repos) == 0 {
		p.none("ECR repositories")
		return
	}

	header := table.Row{"Name", "URI", "Created"}
	rows := make([][]string, 0, len(repos))
	for _, repo := range repos {
		rows = append(rows, []string{
			repo.Name,
			p.orPlaceholder(repo.URI),
			p.age(repo.Created),
		})
	}
	p.render(header, rows, 0)
}

func (p *Printer) Buckets(buckets []models.Bucket) {
	p.section("S3 Buckets")
	if len(buckets) == 0 {
		p.none("S3 buckets")
		return
	}

	header := table.Row{"Name", "Region", "Created"}
	rows := make([][]string, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, []string{
			bucket.Name,
			p.orPlaceholder(bucket.Region),
			p.age(bucket.Created),
		})
	}
	p.render(header, rows, 0)
}

func (p *Printer) section(title string) {
	fmt.Fprintf(p.out, "\n%s:\n", title)
}

func (p *Printer) none(what string) {
	fmt.Fprintf(p.out, "No %s found.\n", what)
}

// render draws one table. mergeCol is the 1-based identity column collapsed
// when consecutive rows repeat it; 0 disables merging.
func (p *Printer) render(header table.Row, rows [][]string, mergeCol int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(p.out)
	tw.AppendHeader(header)
	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		tw.AppendRow(tr)
	}
	tw.SetStyle(table.StyleRounded)
	if mergeCol > 0 {
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: mergeCol, AutoMerge: true, VAlign: text.VAlignMiddle},
		})
	}
	tw.Render()
}

func (p *Printer) orPlaceholder(value string) string {
	if value == "" {
		return p.placeholder
	}
	return value
}

func (p *Printer) age(t time.Time) string {
	if t.IsZero() {
		return p.placeholder
	}
	return humanize.Time(t)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// Package graph renders the collected inventory as a DOT topology graph.
package graph

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// Builder assembles the topology digraph: instances edged to their volumes
// and subnets, subnets to their VPCs, load balancers to target groups, and
// target groups to the instances they register.
type Builder struct {
	placeholder string
}

func NewBuilder(placeholder string) *Builder {
	if placeholder == "" {
		placeholder = models.Placeholder
	}
	return &Builder{placeholder: placeholder}
}

// Build returns DOT source covering every collected region. Each region is
// drawn as its own cluster; node identifiers are region-scoped so resources
// with equal names in different regions never collide.
func (b *Builder) Build(inventories []models.RegionInventory) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("label", "AWS Topology")
	g.Attr("rankdir", "LR")

	for i := range inventories {
		inv := &inventories[i]
		if inv.Empty() {
			continue
		}
		b.addRegion(g, inv)
	}
	return g.String()
}

func (b *Builder) addRegion(g *dot.Graph, inv *models.RegionInventory) {
	sub := g.Subgraph(inv.Region, dot.ClusterOption{})

	vpcs := make(map[string]dot.Node, len(inv.VPCs))
	for _, vpc := range inv.VPCs {
		vpcs[vpc.VPCID] = sub.Node(b.id(inv.Region, vpc.VPCID)).
			Label(fmt.Sprintf("VPC: %s", vpc.VPCID))
	}

	subnets := make(map[string]dot.Node, len(inv.Subnets))
	for _, subnet := range inv.Subnets {
		node := b.subnetNode(sub, inv.Region, subnet.SubnetID)
		subnets[subnet.SubnetID] = node
		if vpcNode, ok := vpcs[subnet.VPCID]; ok {
			sub.Edge(node, vpcNode)
		}
	}

	instances := make(map[string]dot.Node, len(inv.Instances))
	for _, inst := range inv.Instances {
		name := inst.Name
		if name == "" {
			name = b.placeholder
		}
		node := sub.Node(b.id(inv.Region, inst.InstanceID)).
			Label(fmt.Sprintf("EC2: %s (%s)", name, inst.InstanceID))
		instances[inst.InstanceID] = node

		for _, volumeID := range inst.Volumes {
			volumeNode := sub.Node(b.id(inv.Region, volumeID)).
				Label(fmt.Sprintf("EBS: %s", volumeID))
			sub.Edge(node, volumeNode)
		}

		if inst.SubnetID != "" {
			subnetNode, ok := subnets[inst.SubnetID]
			if !ok {
				subnetNode = b.subnetNode(sub, inv.Region, inst.SubnetID)
				subnets[inst.SubnetID] = subnetNode
			}
			sub.Edge(node, subnetNode)
		}
	}

	for _, lb := range inv.LoadBalancers {
		lbNode := sub.Node(b.id(inv.Region, "lb/"+lb.Name)).
			Label(fmt.Sprintf("LB: %s", lb.Name))
		for _, tg := range lb.TargetGroups {
			tgNode := sub.Node(b.id(inv.Region, "tg/"+tg)).
				Label(fmt.Sprintf("Target Group: %s", tg))
			sub.Edge(lbNode, tgNode)

			// Edges to instances come from the target health registrations,
			// so only targets actually registered show up.
			for _, instanceID := range lb.Targets[tg] {
				if instanceNode, ok := instances[instanceID]; ok {
					sub.Edge(tgNode, instanceNode)
				}
			}
		}
	}
}

func (b *Builder) subnetNode(g *dot.Graph, region, subnetID string) dot.Node {
	return g.Node(b.id(region, subnetID)).
		Label(fmt.Sprintf("Subnet: %s", subnetID)).
		Attr("shape", "box")
}

func (b *Builder) id(region, raw string) string {
	return region + "/" + raw
}

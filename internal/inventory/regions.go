package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/ShifengHuGit/AWSResourceCollection/internal/log"
	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// regionParameterPath is the public SSM parameter tree that lists every
// region name, readable even when ec2:DescribeRegions is denied.
const regionParameterPath = "/aws/service/global-infrastructure/regions"

const optInStatusNotOptedIn = "not-opted-in"

// ListRegions returns every region the partition knows about, including
// not-opted-in ones so the picker can annotate them. When DescribeRegions is
// denied it falls back to the SSM parameter tree, which carries names only.
func (g *Globals) ListRegions(ctx context.Context) ([]models.Region, error) {
	output, err := g.EC2.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(true),
	})
	if err == nil {
		regions := make([]models.Region, 0, len(output.Regions))
		for _, region := range output.Regions {
			regions = append(regions, models.Region{
				Name:        aws.ToString(region.RegionName),
				OptInStatus: aws.ToString(region.OptInStatus),
			})
		}
		sortRegions(regions)
		return regions, nil
	}

	log.Debugf("DescribeRegions failed, trying SSM parameter fallback: %v", err)

	regions, ssmErr := g.regionsFromSSM(ctx)
	if ssmErr != nil {
		log.Debugf("SSM region lookup failed: %v", ssmErr)
		return nil, handleAWSError(err, "listing regions")
	}
	sortRegions(regions)
	return regions, nil
}

func (g *Globals) regionsFromSSM(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region

	input := &ssm.GetParametersByPathInput{
		Path: aws.String(regionParameterPath),
	}
	for {
		output, err := g.SSM.GetParametersByPath(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, parameter := range output.Parameters {
			name := aws.ToString(parameter.Value)
			if name == "" {
				continue
			}
			regions = append(regions, models.Region{Name: name})
		}
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	return regions, nil
}

func sortRegions(regions []models.Region) {
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Name < regions[j].Name
	})
}

// ResolveRegions turns region selectors (1-based indexes into the printed
// list, or literal region names) into the set of regions to collect,
// preserving selector order and dropping duplicates. With all set, every
// opted-in region is selected instead.
func ResolveRegions(regions []models.Region, selectors []string, all bool) ([]string, error) {
	if all {
		var names []string
		for _, region := range regions {
			if region.OptInStatus == optInStatusNotOptedIn {
				continue
			}
			names = append(names, region.Name)
		}
		if len(names) == 0 {
			return nil, errors.New("no regions selected")
		}
		return names, nil
	}

	known := make(map[string]bool, len(regions))
	for _, region := range regions {
		known[region.Name] = true
	}

	var names []string
	seen := make(map[string]bool)
	for _, selector := range selectors {
		selector = strings.TrimSpace(selector)
		if selector == "" {
			continue
		}

		name := selector
		if idx, err := strconv.Atoi(selector); err == nil {
			if idx < 1 || idx > len(regions) {
				return nil, fmt.Errorf("region index %d out of range (1-%d)", idx, len(regions))
			}
			name = regions[idx-1].Name
		} else if !known[name] {
			return nil, fmt.Errorf("unknown region %q; run 'awsrc regions' to see valid names", name)
		}

		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, errors.New("no regions selected")
	}
	return names, nil
}

package inventory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/ShifengHuGit/AWSResourceCollection/internal/log"
	"github.com/ShifengHuGit/AWSResourceCollection/models"
)

// AccountIdentity resolves the account ID and caller ARN for the snapshot
// metadata. The lookup is best-effort: collection proceeds with placeholders
// when sts:GetCallerIdentity is unavailable.
func (g *Globals) AccountIdentity(ctx context.Context) (accountID, callerARN string) {
	output, err := g.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		log.WithError(err).Warn("could not resolve caller identity")
		return models.Placeholder, models.Placeholder
	}
	return aws.ToString(output.Account), aws.ToString(output.Arn)
}

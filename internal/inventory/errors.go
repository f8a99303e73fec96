package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/smithy-go"
)

const (
	CodeRequestExpired = "RequestExpired"
	CodeAuthFailure    = "AuthFailure"
	CodeUnauthorized   = "UnauthorizedOperation"
	CodeOptInRequired  = "OptInRequired"
)

// handleAWSError classifies an SDK failure and wraps it with the operation
// that was running. Collector failures abort the run, so the message carries
// enough context to act on.
func handleAWSError(err error, operation string) error {
	var apiErr *smithy.GenericAPIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case CodeRequestExpired:
			return fmt.Errorf("AWS request expired during %s (system time %s, check clock skew or refresh credentials): %w",
				operation, time.Now().Format(time.RFC3339), err)
		case CodeAuthFailure, CodeUnauthorized:
			return fmt.Errorf("AWS authentication failed during %s: %w", operation, err)
		case CodeOptInRequired:
			return fmt.Errorf("AWS region is not enabled during %s: %w", operation, err)
		}
	}

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		if strings.Contains(err.Error(), "exceeded maximum number of attempts") {
			return fmt.Errorf("AWS request failed after multiple retries during %s: %w", operation, err)
		}
	}

	return fmt.Errorf("failed during %s: %w", operation, err)
}

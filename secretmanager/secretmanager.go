package secretmanager

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/freshcuts/payment-gateway/common"
)

type SecretName string

const (
	// SecretStripe holds the Stripe API key and the webhook signing key as a
	// JSON document: {"api_key": "...", "webhook_sign_key": "..."}.
	SecretStripe SecretName = "stripe-gateway"
)

// AccessSecretLatestVersion returns the payload of the latest version of the
// given secret in the service project.
func AccessSecretLatestVersion(ctx context.Context, secret SecretName) ([]byte, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", common.ProjectID, secret),
	}

	result, err := client.AccessSecretVersion(ctx, req)
	if err != nil {
		return nil, err
	}

	return result.Payload.Data, nil
}

package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/freshbooks/internal/constants"
	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
)

// CurrentUser implements freshbooks.Client.CurrentUser.
func (c *Client) CurrentUser(ctx context.Context) (*freshbooks.Identity, error) {
	resp, err := c.httpClient.Get(ctx, constants.IdentityPath, nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	payload, _, err := parseEnvelope(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	identity, err := freshbooks.IdentityFields.DecodeValue(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding identity: %w", freshbooks.ErrUnexpectedResponseShape, err)
	}

	return identity, nil
}

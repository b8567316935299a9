// Package custodian provides the client for the token custodian, the
// service holding distribution reserves in named accounts and moving
// token amounts between them. Every transfer settles fully or fails
// atomically; batch transfers are atomic across the whole batch.
package custodian

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/brave-intl/airdrop-go/libs/clients"
	appctx "github.com/brave-intl/airdrop-go/libs/context"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client abstracts over the underlying client
type Client interface {
	// Transfer moves amount of token from the custody account to the "to" account
	Transfer(ctx context.Context, token string, to string, amount decimal.Decimal) (*Transfer, error)
	// TransferFrom pulls amount of token out of the "from" account into the "to" account
	TransferFrom(ctx context.Context, token string, from string, to string, amount decimal.Decimal) (*Transfer, error)
	// TransferBatch atomically moves each of the token amounts from the custody account to the "to" account
	TransferBatch(ctx context.Context, to string, transfers []TokenAmount) (*Transfer, error)
	// TransferFromBatch atomically pulls each of the token amounts out of the "from" account into the "to" account
	TransferFromBatch(ctx context.Context, from string, to string, transfers []TokenAmount) (*Transfer, error)
}

// HTTPClient wraps http.Client for interacting with the custodian server
type HTTPClient struct {
	client *clients.SimpleHTTPClient
}

// New returns a new HTTPClient, retrieving the base URL from the environment
func New() (Client, error) {
	serverEnvKey := "CUSTODIAN_SERVER"
	serverURL := os.Getenv(serverEnvKey)
	if len(serverURL) == 0 {
		return nil, errors.New(serverEnvKey + " was empty")
	}
	client, err := clients.New(serverURL, os.Getenv("CUSTODIAN_TOKEN"))
	if err != nil {
		return nil, err
	}
	return NewClientWithPrometheus(&HTTPClient{client}, "custodian_client"), err
}

// NewWithContext returns a new HTTPClient, retrieving the base URL from the context
func NewWithContext(ctx context.Context) (Client, error) {
	serverURL, err := appctx.GetStringFromContext(ctx, appctx.CustodianServerCTXKey)
	if err != nil {
		return nil, errors.New("CUSTODIAN_SERVER was empty")
	}
	accessToken, _ := appctx.GetStringFromContext(ctx, appctx.CustodianAccessTokenCTXKey)
	client, err := clients.New(serverURL, accessToken)
	if err != nil {
		return nil, err
	}
	return NewClientWithPrometheus(&HTTPClient{client}, "custodian_client"), err
}

// TokenAmount pairs a token contract address with an amount of that token
type TokenAmount struct {
	Token  string          `json:"token"`
	Amount decimal.Decimal `json:"amount"`
}

// transferRequest is a request to move a single token amount between accounts
type transferRequest struct {
	IdempotencyKey uuid.UUID       `json:"idempotencyKey"`
	Token          string          `json:"token"`
	From           string          `json:"from,omitempty"`
	To             string          `json:"to"`
	Amount         decimal.Decimal `json:"amount"`
}

// batchTransferRequest is a request to move several token amounts between the
// same two accounts, atomically across the batch
type batchTransferRequest struct {
	IdempotencyKey uuid.UUID     `json:"idempotencyKey"`
	From           string        `json:"from,omitempty"`
	To             string        `json:"to"`
	Transfers      []TokenAmount `json:"transfers"`
}

// Transfer is the custodian's record of a settled transfer
type Transfer struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	From      string        `json:"from,omitempty"`
	To        string        `json:"to"`
	Transfers []TokenAmount `json:"transfers"`
}

// Transfer moves amount of token from the custody account to the "to" account
func (c *HTTPClient) Transfer(ctx context.Context, token string, to string, amount decimal.Decimal) (*Transfer, error) {
	return c.submit(ctx, &transferRequest{
		IdempotencyKey: uuid.New(),
		Token:          token,
		To:             to,
		Amount:         amount,
	})
}

// TransferFrom pulls amount of token out of the "from" account into the "to" account
func (c *HTTPClient) TransferFrom(ctx context.Context, token string, from string, to string, amount decimal.Decimal) (*Transfer, error) {
	return c.submit(ctx, &transferRequest{
		IdempotencyKey: uuid.New(),
		Token:          token,
		From:           from,
		To:             to,
		Amount:         amount,
	})
}

// TransferBatch atomically moves each of the token amounts from the custody account to the "to" account
func (c *HTTPClient) TransferBatch(ctx context.Context, to string, transfers []TokenAmount) (*Transfer, error) {
	return c.submitBatch(ctx, &batchTransferRequest{
		IdempotencyKey: uuid.New(),
		To:             to,
		Transfers:      transfers,
	})
}

// TransferFromBatch atomically pulls each of the token amounts out of the "from" account into the "to" account
func (c *HTTPClient) TransferFromBatch(ctx context.Context, from string, to string, transfers []TokenAmount) (*Transfer, error) {
	return c.submitBatch(ctx, &batchTransferRequest{
		IdempotencyKey: uuid.New(),
		From:           from,
		To:             to,
		Transfers:      transfers,
	})
}

func (c *HTTPClient) submit(ctx context.Context, payload *transferRequest) (*Transfer, error) {
	req, err := c.client.NewRequest(ctx, http.MethodPost, "v1/transfers", payload, nil)
	if err != nil {
		return nil, err
	}

	var resp Transfer
	if _, err := c.client.Do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) submitBatch(ctx context.Context, payload *batchTransferRequest) (*Transfer, error) {
	req, err := c.client.NewRequest(ctx, http.MethodPost, "v1/transfers/batch", payload, nil)
	if err != nil {
		return nil, err
	}

	var resp Transfer
	if _, err := c.client.Do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

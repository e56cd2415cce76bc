// Package remote is the hosted variant of the task and shopping item
// collections, kept in Google Cloud Datastore under one household key.
package remote

import (
	"context"
	"errors"
	"fmt"
	"os"

	"household-ledger/internal/logger"

	"cloud.google.com/go/datastore"
)

const (
	KindHousehold    = "Household"
	KindTask         = "Task"
	KindShoppingItem = "ShoppingItem"
)

var ErrNotFound = errors.New("remote: entity not found")

// wrapError converts Datastore-specific errors to domain errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, datastore.ErrNoSuchEntity) {
		return ErrNotFound
	}
	return err
}

// Client wraps the Datastore client and scopes every entity to a household.
type Client struct {
	ds          *datastore.Client
	householdID string
	log         logger.Logger
}

// NewClient connects to projectID. The official client honours
// DATASTORE_EMULATOR_HOST on its own.
func NewClient(ctx context.Context, projectID, householdID string) (*Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("remote: project id is empty")
	}
	if householdID == "" {
		householdID = "default"
	}
	log := logger.Remote()
	if host := os.Getenv("DATASTORE_EMULATOR_HOST"); host != "" {
		log.Info().Str("emulator", host).Msg("using datastore emulator")
	}

	ds, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create datastore client: %w", err)
	}
	return &Client{ds: ds, householdID: householdID, log: log}, nil
}

func (c *Client) Close() error {
	return c.ds.Close()
}

func (c *Client) householdKey() *datastore.Key {
	return datastore.NameKey(KindHousehold, c.householdID, nil)
}

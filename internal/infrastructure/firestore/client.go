package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient wraps the Firestore connection holding user favorites.
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient connects to Firestore. On Cloud Run the default
// credentials are used; locally a credentials file is tried first.
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	isCloudRun := os.Getenv("K_SERVICE") != ""

	if isCloudRun {
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("creating firestore client with default auth: %w", err)
		}
	} else {
		credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsFile == "" {
			credentialsFile = "moviemapua-firestore-key.json"
		}

		if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
			log.Printf("firestore: credentials file %s not found, falling back to default auth", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		} else {
			client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
		}

		if err != nil {
			return nil, fmt.Errorf("creating firestore client: %w", err)
		}
	}

	log.Printf("firestore: client initialized for project %s", projectID)
	return &FirestoreClient{client: client}, nil
}

// Close closes the underlying client.
func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

// GetClient returns the underlying Firestore client.
func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}

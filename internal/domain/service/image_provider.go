package service

import "context"

// ImageProvider defines the interface for fetching a random dog picture URL
// from the external image service. Failures surface as the image-service
// unavailable domain error on the dog-creation path.
type ImageProvider interface {
	FetchRandomImageURL(ctx context.Context) (string, error)
}

package storage

import (
	"context"
	"log"
	"time"
)

// Open selects the backend for the lifetime of the process: the document
// store when its startup probe succeeds, the flat-file store otherwise.
// The decision happens exactly once; nothing downstream re-probes, and
// callers see which side won only through Kind.
func Open(ctx context.Context, mongoURI, mongoDB string, probeTimeout time.Duration, dataDir string) (Store, error) {
	if mongoURI != "" {
		s, err := NewMongoStore(ctx, mongoURI, mongoDB, probeTimeout)
		if err == nil {
			log.Printf("storage: connected to mongodb (%s)", mongoDB)
			return s, nil
		}
		log.Printf("storage: mongodb unavailable (%v); falling back to file storage", err)
	}
	return NewFileStore(dataDir)
}

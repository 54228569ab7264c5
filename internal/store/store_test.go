package store

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestStore_NotConfigured(t *testing.T) {
	ctx := context.Background()
	s := &Store{}

	if s.Available() {
		t.Fatal("empty store should not be available")
	}

	if _, err := s.List(ctx, "plant", bson.M{}, 50); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("List error = %v, want ErrNotConfigured", err)
	}
	if _, err := s.Create(ctx, "plant", bson.M{"name": "x"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Create error = %v, want ErrNotConfigured", err)
	}
	if err := s.Ping(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Ping error = %v, want ErrNotConfigured", err)
	}
	if _, err := s.CollectionNames(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("CollectionNames error = %v, want ErrNotConfigured", err)
	}
}

func TestStore_NilReceiver(t *testing.T) {
	var s *Store
	if s.Available() {
		t.Fatal("nil store should not be available")
	}
}

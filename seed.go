// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/linkvote/models"
	"github.com/danielhkuo/linkvote/store"
)

// seedCandidate is one entry of the seed file: a JSON array of
// {"id": "...", "name": "..."}. The id is optional; a missing id gets a
// generated one, which only makes sense on the first seeding run.
type seedCandidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// loadSeedFile upserts the candidates from path into the store. Existing
// candidates keep their tallies; seeding never resets a count.
func loadSeedFile(st store.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []seedCandidate
	if err := json.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i, s := range seeds {
		if s.Name == "" {
			return 0, fmt.Errorf("seed entry %d has no name", i)
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if err := st.PutCandidate(ctx, models.Candidate{ID: s.ID, Name: s.Name}); err != nil {
			return 0, fmt.Errorf("failed to seed candidate %q: %w", s.Name, err)
		}
	}
	return len(seeds), nil
}

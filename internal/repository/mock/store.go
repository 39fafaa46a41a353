// Package mock is a JSON-file-backed implementation of the repository
// interfaces for demo and development use. The whole store lives in memory
// and is checkpointed to a single snapshot file after every successful
// mutation; a missing or unreadable snapshot seeds the store with a small
// sample dataset instead.
//
// The store is intentionally simple: full-file overwrites, no write-ahead
// log, no cross-operation transactions. Concurrent updates to the same
// record are last-write-wins. It is not a production store.
package mock

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gitpichardo/self-starter/internal/model"
	"github.com/gitpichardo/self-starter/internal/repository"
)

// snapshotVersion tags the on-disk format. A snapshot with a different
// version is treated like a malformed file and the store reseeds.
const snapshotVersion = 1

var errSnapshotVersion = errors.New("unsupported snapshot version")

type snapshot struct {
	Version  int              `json:"version"`
	Users    []*model.User    `json:"users"`
	Goals    []*model.Goal    `json:"goals"`
	Roadmaps []*model.Roadmap `json:"roadmaps"`
}

// Store holds the three record collections and owns the snapshot file.
// A single mutex serializes operations; each repository call is atomic,
// matching the relational backend's per-statement granularity.
type Store struct {
	mu   sync.Mutex
	path string
	data snapshot
}

// Open loads the snapshot at path, or seeds a fresh store with the sample
// dataset when no usable snapshot exists. Load failures are never fatal;
// they mean "no prior state".
func Open(path string) *Store {
	s := &Store{path: path}

	err := s.load()
	if err != nil {
		slog.Info("mock store: no usable snapshot, seeding sample data", "path", path, "reason", err)
		s.seed()
	} else {
		slog.Info("mock store: snapshot loaded",
			"path", path,
			"users", len(s.data.Users),
			"goals", len(s.data.Goals),
			"roadmaps", len(s.data.Roadmaps),
		)
	}

	return s
}

func (s *Store) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var snap snapshot
	err = json.Unmarshal(b, &snap)
	if err != nil {
		return err
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: %d", errSnapshotVersion, snap.Version)
	}

	s.data = snap
	return nil
}

// save overwrites the snapshot file with the full store state. Callers
// must hold the mutex. Failures propagate to the mutating operation that
// triggered the save.
func (s *Store) save() error {
	s.data.Version = snapshotVersion

	b, err := json.MarshalIndent(&s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	err = os.WriteFile(s.path, b, 0o644)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}

// Sample dataset identifiers, fixed so a fresh environment is predictable.
const (
	SampleUserID = "1725903710187"
	SampleGoalID = "87138860-0cea-4cfe-b973-2dfb8a1e5c1a"
)

func (s *Store) seed() {
	seededAt := time.Date(2024, 9, 9, 21, 40, 56, 386000000, time.UTC)
	name := "Demo User"
	// bcrypt("letmein-demo-only"); the credential is opaque to the store
	hash := "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"
	description := "Learn to run a 30K"

	s.data = snapshot{
		Version: snapshotVersion,
		Users: []*model.User{
			{
				ID:           SampleUserID,
				Email:        "demo@example.com",
				Name:         &name,
				PasswordHash: &hash,
				CreatedAt:    seededAt,
				UpdatedAt:    seededAt,
			},
		},
		Goals: []*model.Goal{
			{
				ID:          SampleGoalID,
				UserID:      SampleUserID,
				Title:       "Run a 30 k",
				Description: &description,
				StartDate:   time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC),
				EndDate:     nil,
				Status:      model.GoalStatusNotStarted,
				Roadmap:     nil,
				CreatedAt:   seededAt,
				UpdatedAt:   seededAt,
			},
		},
		Roadmaps: []*model.Roadmap{},
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() repository.UserRepository {
	return &userStore{s}
}

// Goals returns the goal repository view of the store.
func (s *Store) Goals() repository.GoalRepository {
	return &goalStore{s}
}

// Roadmaps returns the roadmap repository view of the store.
func (s *Store) Roadmaps() repository.RoadmapRepository {
	return &roadmapStore{s}
}

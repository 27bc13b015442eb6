// Package runstore records the history of completed annealing/local-opt
// runs in an in-memory, queryable store. It supplements the core package,
// which itself keeps no memory of past runs: Annealer and LocalOpt return
// as soon as Optimize finishes, so anything that wants to compare runs
// across time needs somewhere to put the result.
//
// This is explicitly not checkpointing: a Store holds only finished runs,
// never in-flight annealer state, and offers no resume capability.
package runstore

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	memdb "github.com/hashicorp/go-memdb"
)

// Record is one completed run, identified by a UUID correlation id.
type Record struct {
	ID          string
	ProblemKind string
	Seed        uint32
	InitialCost float64
	BestCost    float64
	FinalCost   float64
	Equilibria  int
	StartedAt   time.Time
	Duration    time.Duration
}

const tableRuns = "runs"

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableRuns: {
				Name: tableRuns,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"problem_kind": {
						Name:    "problem_kind",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "ProblemKind"},
					},
				},
			},
		},
	}
}

// Store is a handle to the in-memory run history.
type Store struct {
	db *memdb.MemDB
}

// NewStore creates an empty Store.
func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("runstore: create memdb: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts a completed run, assigning it a fresh UUID, and returns
// the assigned id.
func (s *Store) Record(rec Record) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("runstore: generate run id: %w", err)
	}
	rec.ID = id.String()
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now()
	}

	txn := s.db.Txn(true)
	if err := txn.Insert(tableRuns, &rec); err != nil {
		txn.Abort()
		return "", fmt.Errorf("runstore: insert run: %w", err)
	}
	txn.Commit()

	return rec.ID, nil
}

// Get looks up a run by id.
func (s *Store) Get(id string) (Record, bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableRuns, "id", id)
	if err != nil {
		return Record{}, false, fmt.Errorf("runstore: lookup run %s: %w", id, err)
	}
	if raw == nil {
		return Record{}, false, nil
	}
	return *raw.(*Record), true, nil
}

// ByProblemKind returns every recorded run for the given problem kind
// (e.g. "tsp", "invsort"), ordered by run id. Ids are random UUIDs, so
// this is not insertion order.
func (s *Store) ByProblemKind(kind string) ([]Record, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableRuns, "problem_kind", kind)
	if err != nil {
		return nil, fmt.Errorf("runstore: query problem kind %s: %w", kind, err)
	}

	var out []Record
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, *raw.(*Record))
	}
	return out, nil
}

// All returns every recorded run.
func (s *Store) All() ([]Record, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableRuns, "id")
	if err != nil {
		return nil, fmt.Errorf("runstore: query all runs: %w", err)
	}

	var out []Record
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, *raw.(*Record))
	}
	return out, nil
}

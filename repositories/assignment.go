//go:generate go run go.uber.org/mock/mockgen -source=assignment.go -destination=../mocks/mock_assignment_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"time"

	"teamforge/errors"
	"teamforge/matching"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IAssignmentRepository interface {
	SaveRun(groupID uuid.UUID, result matching.Result) error
	GetRun(groupID uuid.UUID) (AssignmentRun, error)
}

// AssignmentRun is the persisted outcome of one matching run, kept so the
// assignment can be re-read without recomputing it.
type AssignmentRun struct {
	GroupID   uuid.UUID
	Result    matching.Result
	MatchedAt time.Time
}

type AssignmentRepository struct {
	db *badger.DB
}

func NewAssignmentRepository(db *badger.DB) IAssignmentRepository {
	return &AssignmentRepository{db: db}
}

func assignmentKey(gid uuid.UUID) []byte {
	return []byte("assignment:" + gid.String())
}

func (a AssignmentRepository) SaveRun(groupID uuid.UUID, result matching.Result) error {
	run := AssignmentRun{
		GroupID:   groupID,
		Result:    result,
		MatchedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(assignmentKey(groupID), data)
	})
}

func (a AssignmentRepository) GetRun(groupID uuid.UUID) (AssignmentRun, error) {
	var run AssignmentRun
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(assignmentKey(groupID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &run)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return AssignmentRun{}, errors.ErrNotFound
	}
	return run, err
}

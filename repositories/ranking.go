//go:generate go run go.uber.org/mock/mockgen -source=ranking.go -destination=../mocks/mock_ranking_repository.go -package=mocks
package repositories

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IRankingRepository interface {
	// SaveUserRanking stores a user's ordered team preference for one
	// group, replacing any previous submission.
	SaveUserRanking(groupID, userID uuid.UUID, orderedTeamIDs []uuid.UUID) error
	// SaveTeamRanking stores a team's ordered user preference.
	SaveTeamRanking(teamID uuid.UUID, orderedUserIDs []uuid.UUID) error

	// UserRanking returns the team IDs one user ranked in a group, most
	// preferred first.
	UserRanking(groupID, userID uuid.UUID) ([]uuid.UUID, error)
	// TeamRanking returns the user IDs a team ranked, most preferred first.
	TeamRanking(teamID uuid.UUID) ([]uuid.UUID, error)

	HasRankedTeams(groupID, userID uuid.UUID) (bool, error)
	HasRankedUsers(teamID uuid.UUID) (bool, error)

	DeleteUserRanking(groupID, userID uuid.UUID) error
}

type RankingRepository struct {
	db *badger.DB
}

func NewRankingRepository(db *badger.DB) IRankingRepository {
	return &RankingRepository{db: db}
}

// Key layout keeps both directions prefix-scannable:
//
//	rank:user:<groupID>:<userID>:<teamID> -> position (1-based)
//	rank:team:<teamID>:<userID>           -> position (1-based)
func userRankPrefix(gid, uid uuid.UUID) string {
	return "rank:user:" + gid.String() + ":" + uid.String() + ":"
}
func teamRankPrefix(tid uuid.UUID) string {
	return "rank:team:" + tid.String() + ":"
}

func (r RankingRepository) SaveUserRanking(groupID, userID uuid.UUID, orderedTeamIDs []uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := clearPrefix(txn, userRankPrefix(groupID, userID)); err != nil {
			return err
		}
		for i, teamID := range orderedTeamIDs {
			key := userRankPrefix(groupID, userID) + teamID.String()
			if err := txn.Set([]byte(key), []byte(strconv.Itoa(i+1))); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r RankingRepository) SaveTeamRanking(teamID uuid.UUID, orderedUserIDs []uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := clearPrefix(txn, teamRankPrefix(teamID)); err != nil {
			return err
		}
		for i, userID := range orderedUserIDs {
			key := teamRankPrefix(teamID) + userID.String()
			if err := txn.Set([]byte(key), []byte(strconv.Itoa(i+1))); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r RankingRepository) UserRanking(groupID, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.rankedIDs(userRankPrefix(groupID, userID))
}

func (r RankingRepository) TeamRanking(teamID uuid.UUID) ([]uuid.UUID, error) {
	return r.rankedIDs(teamRankPrefix(teamID))
}

func (r RankingRepository) HasRankedTeams(groupID, userID uuid.UUID) (bool, error) {
	return r.hasAny(userRankPrefix(groupID, userID))
}

func (r RankingRepository) HasRankedUsers(teamID uuid.UUID) (bool, error) {
	return r.hasAny(teamRankPrefix(teamID))
}

func (r RankingRepository) DeleteUserRanking(groupID, userID uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return clearPrefix(txn, userRankPrefix(groupID, userID))
	})
}

// rankedIDs loads (id, position) rows under a prefix and returns the IDs
// sorted by stored position, so the preference order is reconstructed
// exactly as submitted.
func (r RankingRepository) rankedIDs(prefix string) ([]uuid.UUID, error) {
	type row struct {
		id  uuid.UUID
		pos int
	}
	var rows []row

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			raw := strings.TrimPrefix(string(it.Item().Key()), prefix)
			id, err := uuid.Parse(raw)
			if err != nil {
				return fmt.Errorf("corrupt ranking key %q: %w", it.Item().Key(), err)
			}
			err = it.Item().Value(func(val []byte) error {
				pos, err := strconv.Atoi(string(val))
				if err != nil {
					return err
				}
				rows = append(rows, row{id: id, pos: pos})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].pos < rows[j].pos })

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.id
	}
	return ids, nil
}

func (r RankingRepository) hasAny(prefix string) (bool, error) {
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		it.Seek([]byte(prefix))
		found = it.ValidForPrefix([]byte(prefix))
		return nil
	})
	return found, err
}

// clearPrefix deletes every key under a prefix inside the transaction.
func clearPrefix(txn *badger.Txn, prefix string) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

//go:generate go run go.uber.org/mock/mockgen -source=team.go -destination=../mocks/mock_team_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"teamforge/domain"
	"teamforge/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ITeamRepository interface {
	CreateTeam(groupID uuid.UUID, name string, quota int, leadID uuid.UUID) (domain.Team, error)
	GetTeam(id uuid.UUID) (domain.Team, error)
	EditTeam(id uuid.UUID, name string, quota int, leadID uuid.UUID) error
	DeleteTeam(id uuid.UUID) error
	// TeamsInGroup returns teams in creation order; quota order for the
	// matching run derives from it.
	TeamsInGroup(groupID uuid.UUID) ([]domain.Team, error)

	AddTeamMember(teamID, userID uuid.UUID) error
	RemoveTeamMember(teamID, userID uuid.UUID) error
	TeamMembers(teamID uuid.UUID) ([]uuid.UUID, error)
	TeamsOf(userID uuid.UUID) ([]domain.Team, error)
	TeamsOwned(leadID uuid.UUID) ([]domain.Team, error)
}

type TeamRepository struct {
	db *badger.DB
}

func NewTeamRepository(db *badger.DB) ITeamRepository {
	return &TeamRepository{db: db}
}

func teamKey(id uuid.UUID) []byte { return []byte("team:id:" + id.String()) }
func teamGroupPrefix(gid uuid.UUID) string {
	return "team:group:" + gid.String() + ":"
}
func teamNameKey(gid uuid.UUID, name string) []byte {
	return []byte("team:name:" + gid.String() + ":" + name)
}
func teamMemberPrefix(tid uuid.UUID) string {
	return "team:member:" + tid.String() + ":"
}
func teamMemberOfKey(uid, tid uuid.UUID) []byte {
	return []byte("team:memberof:" + uid.String() + ":" + tid.String())
}
func teamLeadKey(lid, tid uuid.UUID) []byte {
	return []byte("team:lead:" + lid.String() + ":" + tid.String())
}

func (t TeamRepository) CreateTeam(groupID uuid.UUID, name string, quota int, leadID uuid.UUID) (domain.Team, error) {
	team := domain.Team{
		ID:        uuid.New(),
		Name:      name,
		GroupID:   groupID,
		Quota:     quota,
		LeadID:    leadID,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(team)
	if err != nil {
		return domain.Team{}, err
	}

	orderedKey := []byte(teamGroupPrefix(groupID) + seqNow() + ":" + team.ID.String())
	err = t.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(teamNameKey(groupID, name)); err == nil {
			return errors.ErrNameInUse
		}
		if err := txn.Set(teamNameKey(groupID, name), []byte(team.ID.String())); err != nil {
			return err
		}
		if err := txn.Set(orderedKey, []byte(team.ID.String())); err != nil {
			return err
		}
		if err := txn.Set(teamLeadKey(leadID, team.ID), nil); err != nil {
			return err
		}
		return txn.Set(teamKey(team.ID), data)
	})
	if err != nil {
		return domain.Team{}, err
	}
	return team, nil
}

func (t TeamRepository) GetTeam(id uuid.UUID) (domain.Team, error) {
	var team domain.Team
	err := t.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(teamKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &team)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Team{}, errors.ErrNotFound
	}
	return team, err
}

func (t TeamRepository) EditTeam(id uuid.UUID, name string, quota int, leadID uuid.UUID) error {
	team, err := t.GetTeam(id)
	if err != nil {
		return err
	}

	return t.db.Update(func(txn *badger.Txn) error {
		if name != team.Name {
			if _, err := txn.Get(teamNameKey(team.GroupID, name)); err == nil {
				return errors.ErrNameInUse
			}
			if err := txn.Delete(teamNameKey(team.GroupID, team.Name)); err != nil {
				return err
			}
			if err := txn.Set(teamNameKey(team.GroupID, name), []byte(id.String())); err != nil {
				return err
			}
		}
		if leadID != team.LeadID {
			if err := txn.Delete(teamLeadKey(team.LeadID, id)); err != nil {
				return err
			}
			if err := txn.Set(teamLeadKey(leadID, id), nil); err != nil {
				return err
			}
		}

		team.Name = name
		team.Quota = quota
		team.LeadID = leadID
		data, err := json.Marshal(team)
		if err != nil {
			return err
		}
		return txn.Set(teamKey(id), data)
	})
}

func (t TeamRepository) DeleteTeam(id uuid.UUID) error {
	team, err := t.GetTeam(id)
	if err != nil {
		return err
	}
	members, err := t.TeamMembers(id)
	if err != nil {
		return err
	}

	return t.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(teamNameKey(team.GroupID, team.Name)); err != nil {
			return err
		}
		if err := txn.Delete(teamLeadKey(team.LeadID, id)); err != nil {
			return err
		}
		if err := deleteByPrefix(txn, teamGroupPrefix(team.GroupID), id.String()); err != nil {
			return err
		}
		for _, uid := range members {
			if err := t.deleteTeamMembership(txn, uid, id); err != nil {
				return err
			}
		}
		return txn.Delete(teamKey(id))
	})
}

func (t TeamRepository) TeamsInGroup(groupID uuid.UUID) ([]domain.Team, error) {
	var ids []uuid.UUID
	err := t.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(teamGroupPrefix(groupID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				id, err := uuid.Parse(string(val))
				if err != nil {
					return err
				}
				ids = append(ids, id)
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
	return t.teamsByID(ids)
}

func (t TeamRepository) AddTeamMember(teamID, userID uuid.UUID) error {
	orderedKey := []byte(teamMemberPrefix(teamID) + seqNow() + ":" + userID.String())
	return t.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(teamMemberOfKey(userID, teamID)); err == nil {
			return nil
		}
		if err := txn.Set(orderedKey, []byte(userID.String())); err != nil {
			return err
		}
		return txn.Set(teamMemberOfKey(userID, teamID), orderedKey)
	})
}

func (t TeamRepository) RemoveTeamMember(teamID, userID uuid.UUID) error {
	return t.db.Update(func(txn *badger.Txn) error {
		return t.deleteTeamMembership(txn, userID, teamID)
	})
}

func (t TeamRepository) deleteTeamMembership(txn *badger.Txn, userID, teamID uuid.UUID) error {
	item, err := txn.Get(teamMemberOfKey(userID, teamID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrNotMember
	}
	if err != nil {
		return err
	}
	var orderedKey []byte
	if err := item.Value(func(val []byte) error {
		orderedKey = append([]byte{}, val...)
		return nil
	}); err != nil {
		return err
	}
	if err := txn.Delete(orderedKey); err != nil {
		return err
	}
	return txn.Delete(teamMemberOfKey(userID, teamID))
}

func (t TeamRepository) TeamMembers(teamID uuid.UUID) ([]uuid.UUID, error) {
	var members []uuid.UUID
	err := t.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(teamMemberPrefix(teamID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				id, err := uuid.Parse(string(val))
				if err != nil {
					return err
				}
				members = append(members, id)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return members, err
}

func (t TeamRepository) TeamsOf(userID uuid.UUID) ([]domain.Team, error) {
	return t.teamsByIndex("team:memberof:" + userID.String() + ":")
}

func (t TeamRepository) TeamsOwned(leadID uuid.UUID) ([]domain.Team, error) {
	return t.teamsByIndex("team:lead:" + leadID.String() + ":")
}

// teamsByIndex collects team IDs from the suffix of every key under an
// index prefix and resolves them to records.
func (t TeamRepository) teamsByIndex(prefix string) ([]domain.Team, error) {
	var ids []uuid.UUID
	err := t.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			raw := strings.TrimPrefix(string(it.Item().Key()), prefix)
			id, err := uuid.Parse(raw)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t.teamsByID(ids)
}

func (t TeamRepository) teamsByID(ids []uuid.UUID) ([]domain.Team, error) {
	teams := make([]domain.Team, 0, len(ids))
	for _, id := range ids {
		team, err := t.GetTeam(id)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// deleteByPrefix removes the ordered-index entry whose key ends with the
// given id under a prefix.
func deleteByPrefix(txn *badger.Txn, prefix, idSuffix string) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
		key := string(it.Item().Key())
		if strings.HasSuffix(key, ":"+idSuffix) {
			return txn.Delete([]byte(key))
		}
	}
	return nil
}

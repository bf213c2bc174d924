//go:generate go run go.uber.org/mock/mockgen -source=group.go -destination=../mocks/mock_group_repository.go -package=mocks
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

type IGroupRepository interface {
	CreateGroup(name, shortName string, adminID uuid.UUID) (domain.Group, error)
	GetGroup(id uuid.UUID) (domain.Group, error)
	GetGroupByName(name string) (domain.Group, error)
	DeleteGroup(id uuid.UUID) error
	AdvancePhase(id uuid.UUID) error

	AddMember(groupID, userID uuid.UUID) error
	RemoveMember(groupID, userID uuid.UUID) error
	IsMember(groupID, userID uuid.UUID) (bool, error)
	// Members returns user IDs in join order; the matching run uses this
	// as the canonical proposer order.
	Members(groupID uuid.UUID) ([]uuid.UUID, error)
	GroupsOf(userID uuid.UUID) ([]domain.Group, error)
}

type GroupRepository struct {
	db *badger.DB
}

func NewGroupRepository(db *badger.DB) IGroupRepository {
	return &GroupRepository{db: db}
}

func groupKey(id uuid.UUID) []byte      { return []byte("group:id:" + id.String()) }
func groupNameKey(name string) []byte   { return []byte("group:name:" + name) }
func memberPrefix(gid uuid.UUID) string { return "group:member:" + gid.String() + ":" }

// memberOfKey holds the full ordered member key as its value so removal
// can delete both entries without scanning.
func memberOfKey(uid, gid uuid.UUID) []byte {
	return []byte("group:memberof:" + uid.String() + ":" + gid.String())
}

func (g GroupRepository) CreateGroup(name, shortName string, adminID uuid.UUID) (domain.Group, error) {
	group := domain.Group{
		ID:        uuid.New(),
		Name:      name,
		ShortName: shortName,
		Phase:     domain.PhaseSignup,
		AdminID:   adminID,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(group)
	if err != nil {
		return domain.Group{}, err
	}

	err = g.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(groupNameKey(name)); err == nil {
			return errors.ErrNameInUse
		}
		if err := txn.Set(groupNameKey(name), []byte(group.ID.String())); err != nil {
			return err
		}
		return txn.Set(groupKey(group.ID), data)
	})
	if err != nil {
		return domain.Group{}, err
	}
	return group, nil
}

func (g GroupRepository) GetGroup(id uuid.UUID) (domain.Group, error) {
	var group domain.Group
	err := g.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(groupKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &group)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Group{}, errors.ErrNotFound
	}
	return group, err
}

func (g GroupRepository) GetGroupByName(name string) (domain.Group, error) {
	var id uuid.UUID
	err := g.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(groupNameKey(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			parsed, err := uuid.Parse(string(val))
			id = parsed
			return err
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Group{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Group{}, err
	}
	return g.GetGroup(id)
}

// DeleteGroup removes the group record, its name index, and all membership
// entries. Teams and rankings under the group are the caller's concern.
func (g GroupRepository) DeleteGroup(id uuid.UUID) error {
	group, err := g.GetGroup(id)
	if err != nil {
		return err
	}
	members, err := g.Members(id)
	if err != nil {
		return err
	}

	return g.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(groupNameKey(group.Name)); err != nil {
			return err
		}
		if err := txn.Delete(groupKey(id)); err != nil {
			return err
		}
		for _, uid := range members {
			if err := g.deleteMembership(txn, uid, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// AdvancePhase moves a group out of signup. Advancing an already-matched
// group is a no-op.
func (g GroupRepository) AdvancePhase(id uuid.UUID) error {
	group, err := g.GetGroup(id)
	if err != nil {
		return err
	}
	group.Phase = domain.PhaseMatched

	data, err := json.Marshal(group)
	if err != nil {
		return err
	}
	return g.db.Update(func(txn *badger.Txn) error {
		return txn.Set(groupKey(id), data)
	})
}

func (g GroupRepository) AddMember(groupID, userID uuid.UUID) error {
	orderedKey := []byte(memberPrefix(groupID) + seqNow() + ":" + userID.String())
	return g.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(memberOfKey(userID, groupID)); err == nil {
			return nil // already a member
		}
		if err := txn.Set(orderedKey, []byte(userID.String())); err != nil {
			return err
		}
		return txn.Set(memberOfKey(userID, groupID), orderedKey)
	})
}

func (g GroupRepository) RemoveMember(groupID, userID uuid.UUID) error {
	return g.db.Update(func(txn *badger.Txn) error {
		return g.deleteMembership(txn, userID, groupID)
	})
}

func (g GroupRepository) deleteMembership(txn *badger.Txn, userID, groupID uuid.UUID) error {
	item, err := txn.Get(memberOfKey(userID, groupID))
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
	return txn.Delete(memberOfKey(userID, groupID))
}

func (g GroupRepository) IsMember(groupID, userID uuid.UUID) (bool, error) {
	err := g.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(memberOfKey(userID, groupID))
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (g GroupRepository) Members(groupID uuid.UUID) ([]uuid.UUID, error) {
	var members []uuid.UUID
	err := g.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(memberPrefix(groupID))
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

func (g GroupRepository) GroupsOf(userID uuid.UUID) ([]domain.Group, error) {
	var groupIDs []uuid.UUID
	prefix := "group:memberof:" + userID.String() + ":"
	err := g.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			raw := strings.TrimPrefix(string(it.Item().Key()), prefix)
			id, err := uuid.Parse(raw)
			if err != nil {
				return err
			}
			groupIDs = append(groupIDs, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	groups := make([]domain.Group, 0, len(groupIDs))
	for _, id := range groupIDs {
		group, err := g.GetGroup(id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

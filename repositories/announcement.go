//go:generate go run go.uber.org/mock/mockgen -source=announcement.go -destination=../mocks/mock_announcement_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"time"

	"teamforge/domain"
	"teamforge/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IAnnouncementRepository interface {
	Create(scope domain.AnnouncementScope, ownerID, authorID uuid.UUID, text string, tags []string) (domain.Announcement, error)
	Get(id uuid.UUID) (domain.Announcement, error)
	Edit(id uuid.UUID, text string) error
	Delete(id uuid.UUID) error
	// ListByOwner returns a board's announcements, oldest first.
	ListByOwner(scope domain.AnnouncementScope, ownerID uuid.UUID) ([]domain.Announcement, error)
	FilterByTag(scope domain.AnnouncementScope, ownerID uuid.UUID, tag string) ([]domain.Announcement, error)
}

type AnnouncementRepository struct {
	db *badger.DB
}

func NewAnnouncementRepository(db *badger.DB) IAnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Key layout: "ann:<scope>:<ownerID>:<seq>:<uuid>" keeps a board's posts
// in chronological order; "ann:id:<uuid>" points at that key for edits
// and deletes.
func annBoardPrefix(scope domain.AnnouncementScope, ownerID uuid.UUID) string {
	return "ann:" + string(scope) + ":" + ownerID.String() + ":"
}
func annIDKey(id uuid.UUID) []byte { return []byte("ann:id:" + id.String()) }

func (a AnnouncementRepository) Create(scope domain.AnnouncementScope, ownerID, authorID uuid.UUID, text string, tags []string) (domain.Announcement, error) {
	ann := domain.Announcement{
		ID:       uuid.New(),
		Scope:    scope,
		OwnerID:  ownerID,
		AuthorID: authorID,
		Text:     text,
		Tags:     tags,
		PostedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(ann)
	if err != nil {
		return domain.Announcement{}, err
	}

	boardKey := []byte(annBoardPrefix(scope, ownerID) + seqNow() + ":" + ann.ID.String())
	err = a.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(boardKey, data); err != nil {
			return err
		}
		return txn.Set(annIDKey(ann.ID), boardKey)
	})
	if err != nil {
		return domain.Announcement{}, err
	}
	return ann, nil
}

func (a AnnouncementRepository) Get(id uuid.UUID) (domain.Announcement, error) {
	var ann domain.Announcement
	err := a.db.View(func(txn *badger.Txn) error {
		var err error
		_, ann, err = a.load(txn, id)
		return err
	})
	return ann, err
}

func (a AnnouncementRepository) Edit(id uuid.UUID, text string) error {
	return a.db.Update(func(txn *badger.Txn) error {
		boardKey, ann, err := a.load(txn, id)
		if err != nil {
			return err
		}
		ann.Text = text
		data, err := json.Marshal(ann)
		if err != nil {
			return err
		}
		return txn.Set(boardKey, data)
	})
}

func (a AnnouncementRepository) Delete(id uuid.UUID) error {
	return a.db.Update(func(txn *badger.Txn) error {
		boardKey, _, err := a.load(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(boardKey); err != nil {
			return err
		}
		return txn.Delete(annIDKey(id))
	})
}

func (a AnnouncementRepository) ListByOwner(scope domain.AnnouncementScope, ownerID uuid.UUID) ([]domain.Announcement, error) {
	var anns []domain.Announcement
	err := a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(annBoardPrefix(scope, ownerID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var ann domain.Announcement
				if err := json.Unmarshal(val, &ann); err != nil {
					return err
				}
				anns = append(anns, ann)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return anns, err
}

func (a AnnouncementRepository) FilterByTag(scope domain.AnnouncementScope, ownerID uuid.UUID, tag string) ([]domain.Announcement, error) {
	anns, err := a.ListByOwner(scope, ownerID)
	if err != nil {
		return nil, err
	}
	return lo.Filter(anns, func(ann domain.Announcement, _ int) bool {
		return ann.HasTag(tag)
	}), nil
}

func (a AnnouncementRepository) load(txn *badger.Txn, id uuid.UUID) ([]byte, domain.Announcement, error) {
	item, err := txn.Get(annIDKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, domain.Announcement{}, errors.ErrNotFound
	}
	if err != nil {
		return nil, domain.Announcement{}, err
	}

	var boardKey []byte
	if err := item.Value(func(val []byte) error {
		boardKey = append([]byte{}, val...)
		return nil
	}); err != nil {
		return nil, domain.Announcement{}, err
	}

	boardItem, err := txn.Get(boardKey)
	if err != nil {
		return nil, domain.Announcement{}, err
	}
	var ann domain.Announcement
	if err := boardItem.Value(func(val []byte) error {
		return json.Unmarshal(val, &ann)
	}); err != nil {
		return nil, domain.Announcement{}, err
	}
	return boardKey, ann, nil
}

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketRepos  = "repos"  // key: Path -> Repository JSON
	boltBucketConfig = "config" // key: "config" -> Config JSON
)

type boltStore struct {
	db *bbolt.DB
}

func newBoltStore(path string) (*boltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketRepos)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &boltStore{db: db}, nil
}

func (b *boltStore) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *boltStore) Close() error {
	return b.db.Close()
}

func (b *boltStore) Upsert(repo model.Repository) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		repos := tx.Bucket([]byte(boltBucketRepos))

		if v := repos.Get([]byte(repo.Path)); v != nil {
			var existing model.Repository

			if err := json.Unmarshal(v, &existing); err != nil {
				return err
			}

			repo.ID = existing.ID
		} else {
			seq, err := repos.NextSequence()
			if err != nil {
				return err
			}

			repo.ID = int64(seq)
		}

		data, err := json.Marshal(&repo)
		if err != nil {
			return err
		}

		return repos.Put([]byte(repo.Path), data)
	})
}

func (b *boltStore) ListAll() ([]model.Repository, error) {
	return b.list(func(model.Repository) bool { return true })
}

func (b *boltStore) Search(query string) ([]model.Repository, error) {
	q := strings.ToLower(query)

	return b.list(func(r model.Repository) bool {
		return strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Path), q)
	})
}

func (b *boltStore) GetByPath(path string) (model.Repository, error) {
	var repo model.Repository

	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketRepos)).Get([]byte(path))
		if v == nil {
			return ErrNotFound
		}

		return json.Unmarshal(v, &repo)
	})

	return repo, err
}

func (b *boltStore) FindByName(name string) ([]model.Repository, error) {
	return b.list(func(r model.Repository) bool {
		return strings.EqualFold(r.Name, name)
	})
}

// list collects the repos matching keep, ordered mtime descending with
// insertion order (id) breaking ties.
func (b *boltStore) list(keep func(model.Repository) bool) ([]model.Repository, error) {
	out := make([]model.Repository, 0)

	err := b.db.View(func(tx *bbolt.Tx) error {
		repos := tx.Bucket([]byte(boltBucketRepos))

		return repos.ForEach(func(k, v []byte) error {
			var r model.Repository

			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			if keep(r) {
				out = append(out, r)
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Mtime != out[j].Mtime {
			return out[i].Mtime > out[j].Mtime
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (b *boltStore) GetConfig() (model.Config, error) {
	cfg := model.DefaultConfig()

	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketConfig)).Get([]byte("config"))
		if v == nil {
			return nil
		}

		return json.Unmarshal(v, &cfg)
	})

	return cfg, err
}

func (b *boltStore) SaveConfig(cfg model.Config) error {
	data, err := json.Marshal(&cfg)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketConfig)).Put([]byte("config"), data)
	})
}

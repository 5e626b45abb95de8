package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var bucketName = []byte("dashboard")

// envelope guarda o valor junto com o instante de expiração
type envelope struct {
	ExpiresAt time.Time `json:"expires_at"`
	Value     []byte    `json:"value"`
}

type boltCache struct {
	db  *bolt.DB
	now func() time.Time
}

// NewBoltCache abre (ou cria) o arquivo de cache local.
// Entradas expiradas são tratadas como miss e removidas na leitura.
func NewBoltCache(path string) (Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating cache directory")
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "opening bolt cache %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating cache bucket")
	}

	return &boltCache{db: db, now: time.Now}, nil
}

func (c *boltCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "bolt read")
	}
	if raw == nil {
		return nil, ErrMiss
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrap(err, "decoding cache envelope")
	}

	if !c.now().Before(env.ExpiresAt) {
		c.evict(key)
		return nil, ErrMiss
	}

	return env.Value, nil
}

func (c *boltCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(envelope{ExpiresAt: c.now().Add(ttl), Value: value})
	if err != nil {
		return errors.Wrap(err, "encoding cache envelope")
	}

	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	if err != nil {
		return errors.Wrap(err, "bolt write")
	}
	return nil
}

func (c *boltCache) Close() error {
	return c.db.Close()
}

// evict é best-effort; uma falha aqui só adia a limpeza
func (c *boltCache) evict(key string) {
	_ = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

package window

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/GatoImorrivel/vizia/pkg/errors"
)

const bucketGeometry = "geometry"

// Geometry is the persisted placement of a window, keyed by title.
type Geometry struct {
	Size      Size      `json:"size"`
	Position  *Position `json:"position,omitempty"`
	Maximized bool      `json:"maximized"`
}

// GeometryStore remembers window placement across sessions in a bolt
// database. All failures are reported as non-fatal persistence errors;
// a window that forgets its placement still opens.
type GeometryStore struct {
	db *bolt.DB
}

// OpenGeometryStore opens (or creates) the database at path.
func OpenGeometryStore(path string) (*GeometryStore, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, &errors.Error{Op: "window.OpenGeometryStore", Kind: errors.KindPersist, Err: err}
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketGeometry))
		return err
	})
	if err != nil {
		db.Close()
		return nil, &errors.Error{Op: "window.OpenGeometryStore", Kind: errors.KindPersist, Err: err}
	}
	return &GeometryStore{db: db}, nil
}

// Save records the geometry for a window title.
func (s *GeometryStore) Save(title string, g Geometry) error {
	raw, err := json.Marshal(g)
	if err != nil {
		return &errors.Error{Op: "window.GeometryStore.Save", Kind: errors.KindPersist, Err: err}
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketGeometry)).Put([]byte(title), raw)
	})
	if err != nil {
		return &errors.Error{Op: "window.GeometryStore.Save", Kind: errors.KindPersist, Err: err}
	}
	return nil
}

// Load returns the stored geometry for a title. The second return is
// false when nothing was stored.
func (s *GeometryStore) Load(title string) (Geometry, bool, error) {
	var g Geometry
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketGeometry)).Get([]byte(title))
		if raw == nil {
			return nil
		}
		found = true
		return json.Unmarshal(raw, &g)
	})
	if err != nil {
		return Geometry{}, false, &errors.Error{Op: "window.GeometryStore.Load", Kind: errors.KindPersist, Err: err}
	}
	return g, found, nil
}

// Forget removes the stored geometry for a title.
func (s *GeometryStore) Forget(title string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketGeometry)).Delete([]byte(title))
	})
	if err != nil {
		return &errors.Error{Op: "window.GeometryStore.Forget", Kind: errors.KindPersist, Err: err}
	}
	return nil
}

// Close releases the database.
func (s *GeometryStore) Close() error {
	return s.db.Close()
}

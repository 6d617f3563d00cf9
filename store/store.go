// Package store persists the theme preference in a BoltDB file
package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/mindful/internal/apperr"
	"github.com/ayoisaiah/mindful/internal/catalog"
)

const (
	prefsBucket = "preferences"
	themeKey    = "kids_theme"
)

var (
	errMindfulRunning = &apperr.Error{
		Message: "is mindful already running? Only one instance can be active at a time",
	}

	errReadPreference = &apperr.Error{
		Message: "unable to read %s preference",
	}

	errWritePreference = &apperr.Error{
		Message: "unable to save %s preference",
	}
)

// ErrMindfulRunning is returned when the database is locked by another
// instance.
var ErrMindfulRunning = errMindfulRunning

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Theme returns the saved theme, or the default theme if none was saved.
func (c *Client) Theme() (string, error) {
	return c.ThemeOr(catalog.DefaultTheme)
}

// ThemeOr returns the saved theme, or fallback if none was saved.
func (c *Client) ThemeOr(fallback string) (string, error) {
	theme := fallback

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(prefsBucket)).Get([]byte(themeKey))
		if len(v) > 0 {
			theme = string(v)
		}

		return nil
	})
	if err != nil {
		return fallback, errReadPreference.Fmt("theme").Wrap(err)
	}

	return theme, nil
}

// SetTheme saves the theme preference.
func (c *Client) SetTheme(name string) error {
	err := c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(prefsBucket)).Put([]byte(themeKey), []byte(name))
	})
	if err != nil {
		return errWritePreference.Fmt("theme").Wrap(err)
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errMindfulRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(prefsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

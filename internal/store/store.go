// Package store persists the profile collection as pretty-printed JSON.
// There is no in-memory cache: every mutating operation reloads the file,
// applies the change and writes the whole collection back. Concurrent
// writers are last-writer-wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// storageVersion is written into every collection file.
const storageVersion = "1.0.0"

// Profile is a named git identity: username, email and the file name of
// the SSH key under the user's SSH directory.
type Profile struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	SSHKeyName string `json:"ssh_key_name"`
}

// Collection is the on-disk shape of the profile store.
type Collection struct {
	Version      string    `json:"version"`
	Profiles     []Profile `json:"profiles"`
	LastModified string    `json:"last_modified"`
}

// NewCollection returns an empty collection stamped with the current time.
func NewCollection() Collection {
	c := Collection{Version: storageVersion, Profiles: []Profile{}}
	c.Touch()
	return c
}

// Touch updates the last-modified timestamp.
func (c *Collection) Touch() {
	c.LastModified = time.Now().UTC().Format(time.RFC3339)
}

// ErrCorrupted is returned by Load when the profiles file exists but
// cannot be parsed as a collection.
var ErrCorrupted = errors.New("profiles file is corrupted")

// NotFoundError is returned when an operation names a profile that is not
// in the collection.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.Name)
}

// ExistsError is returned by Create when the profile name is already taken.
type ExistsError struct {
	Name string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("profile %q already exists", e.Name)
}

// Store reads and writes a profile collection at a fixed path.
type Store struct {
	path string
}

// New returns a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// ensure creates the parent directory and an empty collection file if
// either is missing.
func (s *Store) ensure() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.Save(NewCollection())
	}
	return nil
}

// Load reads the collection from disk, creating an empty one first if the
// file does not exist. Returns ErrCorrupted if the content does not parse.
func (s *Store) Load() (Collection, error) {
	if err := s.ensure(); err != nil {
		return Collection{}, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Collection{}, fmt.Errorf("reading profiles file: %w", err)
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return Collection{}, ErrCorrupted
	}
	if c.Profiles == nil {
		c.Profiles = []Profile{}
	}
	return c, nil
}

// Save serializes the collection as indented JSON and replaces the file.
func (s *Store) Save(c Collection) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing profiles file: %w", err)
	}
	return nil
}

// Create appends a new profile. Fails with ExistsError if the name is taken.
func (s *Store) Create(p Profile) error {
	c, err := s.Load()
	if err != nil {
		return err
	}
	for _, existing := range c.Profiles {
		if existing.Name == p.Name {
			return &ExistsError{Name: p.Name}
		}
	}
	c.Profiles = append(c.Profiles, p)
	c.Touch()
	return s.Save(c)
}

// Get returns the profile with the given name, or false if absent.
func (s *Store) Get(name string) (Profile, bool, error) {
	c, err := s.Load()
	if err != nil {
		return Profile{}, false, err
	}
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true, nil
		}
	}
	return Profile{}, false, nil
}

// All returns every profile in insertion order.
func (s *Store) All() ([]Profile, error) {
	c, err := s.Load()
	if err != nil {
		return nil, err
	}
	return c.Profiles, nil
}

// Update replaces the profile with the given name in place, preserving its
// position. Fails with NotFoundError if absent.
func (s *Store) Update(name string, p Profile) error {
	c, err := s.Load()
	if err != nil {
		return err
	}
	for i, existing := range c.Profiles {
		if existing.Name == name {
			c.Profiles[i] = p
			c.Touch()
			return s.Save(c)
		}
	}
	return &NotFoundError{Name: name}
}

// Delete removes the named profile. Fails with NotFoundError if absent.
func (s *Store) Delete(name string) error {
	c, err := s.Load()
	if err != nil {
		return err
	}
	for i, existing := range c.Profiles {
		if existing.Name == name {
			c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
			c.Touch()
			return s.Save(c)
		}
	}
	return &NotFoundError{Name: name}
}

// Exists reports whether a profile with the given name is stored.
func (s *Store) Exists(name string) (bool, error) {
	_, ok, err := s.Get(name)
	return ok, err
}

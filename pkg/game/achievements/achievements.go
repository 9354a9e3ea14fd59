// Package achievements stores the levels won by each user in a CSV file.
//
// Every record carries a hash of the user and of the level definition, so a
// record stops counting when the level it was won on changes.
package achievements

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/segmentio/fasthash/fnv1a"
	"github.com/zyedidia/generic/mapset"

	"mazter/pkg/game/specs"
)

// Salt is the key of the record hash
const Salt uint64 = 20220722

// FileName is the name of the achievements file in the data directory
const FileName = "achievements.csv"

// ScreenSaverUser is the user of automatic play, never recorded
const ScreenSaverUser = "screen-saver"

var (
	// ErrInvalidUser is returned for an empty or reserved user name
	ErrInvalidUser = errors.New("invalid user name")
	// ErrLevelLocked is returned when previous levels weren't won
	ErrLevelLocked = errors.New("level locked")
)

var header = []string{"user", "level", "hash"}

// ValidateUser checks a user name can own achievements
func ValidateUser(user string) error {
	user = strings.TrimSpace(user)
	if user == "" || user == ScreenSaverUser {
		return fmt.Errorf("%w: %q", ErrInvalidUser, user)
	}
	return nil
}

// Achievement is a level won by a user
type Achievement struct {
	User  string
	Level int
}

// Hash returns the keyed FNV-1a hash of the user and the level specs
func (a Achievement) Hash() uint64 {
	h := fnv1a.AddString64(Salt, a.User)
	return specs.ForLevel(a.Level).Hash(h)
}

// Record is an achievement as stored
type Record struct {
	Achievement
	Hash uint64
}

// NewRecord computes the record of an achievement
func NewRecord(a Achievement) Record {
	return Record{Achievement: a, Hash: a.Hash()}
}

// IsValid tells whether the record matches the current level definition
func (r Record) IsValid() bool {
	return r.Hash == r.Achievement.Hash()
}

func (r Record) fields() []string {
	return []string{r.User, strconv.Itoa(r.Level), strconv.FormatUint(r.Hash, 10)}
}

// Store is the achievements database
type Store struct {
	path    string
	records []Record
}

// Open loads the store at path. A missing file is an empty store. Invalid
// records are dropped.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening achievements: %w", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == header[0] {
			continue
		}
		r, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		if !r.IsValid() {
			// most often the level definition changed since it was won
			log.Printf("[MAZTER] [INFO] dropping invalid record %+v", r)
			continue
		}
		s.records = append(s.records, r)
	}
	return s, nil
}

func parseRecord(row []string) (Record, error) {
	if len(row) != len(header) {
		return Record{}, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}
	level, err := strconv.Atoi(row[1])
	if err != nil {
		return Record{}, fmt.Errorf("invalid level: %w", err)
	}
	hash, err := strconv.ParseUint(row[2], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid hash: %w", err)
	}
	return Record{Achievement: Achievement{User: row[0], Level: level}, Hash: hash}, nil
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Records returns a copy of the valid records
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("writing achievements: %w", err)
	}
	defer f.Close()
	if err := writeRecords(f, s.records); err != nil {
		return err
	}
	return f.Close()
}

func writeRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Contains tells whether the user won the level
func (s *Store) Contains(a Achievement) bool {
	for _, r := range s.records {
		if r.Achievement == a {
			return true
		}
	}
	return false
}

// Save records the achievement and writes the file
func (s *Store) Save(a Achievement) error {
	s.records = append(s.records, NewRecord(a))
	return s.write()
}

// Advance saves the achievement and returns the first following level the
// user didn't win
func (s *Store) Advance(a Achievement) (int, error) {
	if err := s.Save(a); err != nil {
		return 0, err
	}
	level := a.Level + 1
	for s.Contains(Achievement{User: a.User, Level: level}) {
		level++
	}
	return level, nil
}

// FirstNotWon returns the first level the user didn't win
func (s *Store) FirstNotWon(user string) int {
	level := 1
	for s.Contains(Achievement{User: user, Level: level}) {
		level++
	}
	return level
}

// CanPlay tells whether the user won every level before target. Level 0
// means "no specific level" and is always allowed.
func (s *Store) CanPlay(user string, target int) bool {
	if target == 0 {
		return true
	}
	for level := 1; level < target; level++ {
		if !s.Contains(Achievement{User: user, Level: level}) {
			return false
		}
	}
	return true
}

// Reset removes every record of the user, writes the removed rows as CSV to
// w so they can be restored, and returns how many were removed.
func (s *Store) Reset(user string, w io.Writer) (int, error) {
	var kept, removed []Record
	for _, r := range s.records {
		if r.User == user {
			removed = append(removed, r)
		} else {
			kept = append(kept, r)
		}
	}
	if len(removed) == 0 {
		return 0, nil
	}
	if w != nil {
		if err := writeRecords(w, removed); err != nil {
			return 0, err
		}
	}
	s.records = kept
	return len(removed), s.write()
}

// Entry is a line of the hall of fame
type Entry struct {
	User  string
	Level int
}

// HallOfFame returns, for every user, the highest level such that all the
// levels up to it are won, best first
func (s *Store) HallOfFame() []Entry {
	users := mapset.New[string]()
	for _, r := range s.records {
		users.Put(r.User)
	}
	var hof []Entry
	users.Each(func(user string) {
		if level := s.FirstNotWon(user) - 1; level > 0 {
			hof = append(hof, Entry{User: user, Level: level})
		}
	})
	sort.Slice(hof, func(i, j int) bool {
		if hof[i].Level != hof[j].Level {
			return hof[i].Level > hof[j].Level
		}
		return hof[i].User < hof[j].User
	})
	return hof
}

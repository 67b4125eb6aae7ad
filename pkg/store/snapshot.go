package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/grimportent/fronts/pkg/front"
)

// Snapshots archives fetched documents on local disk so a campaign can be
// inspected or restored after a bad edit. Restoring is just a SaveAll of an
// archived document; the server stays authoritative.
type Snapshots interface {
	Save(doc *front.Document) (string, error)
	List() ([]string, error)
	Load(name string) (*front.Document, error)
}

// NewSnapshots opens the snapshot archive rooted at the configured path.
func NewSnapshots(cfg Config) (Snapshots, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &snapshots{d: diskv.New(diskv.Options{
		BasePath:     cfg.SnapshotPath(),
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type snapshots struct {
	d *diskv.Diskv
}

const snapshotLayout = "2006-01-02T15-04-05"

func (s *snapshots) Save(doc *front.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("store: nothing to snapshot")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	name := time.Now().UTC().Format(snapshotLayout)
	if err := s.d.Write(name, data); err != nil {
		return "", err
	}
	return name, nil
}

func (s *snapshots) List() ([]string, error) {
	names := make([]string, 0)
	for key := range s.d.Keys(nil) {
		names = append(names, key)
	}
	sort.Strings(names)
	return names, nil
}

func (s *snapshots) Load(name string) (*front.Document, error) {
	data, err := s.d.Read(name)
	if err != nil {
		return nil, fmt.Errorf("store: snapshot %q: %w", name, err)
	}
	var doc front.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store: snapshot %q: %w", name, err)
	}
	return &doc, nil
}

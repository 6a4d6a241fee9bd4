package db

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fluencelabs/perfmeter/pkg/hostid"
	"github.com/fluencelabs/perfmeter/pkg/manifest"
)

// DefaultPath is where benchmark history lands unless the caller
// picks another location.
const DefaultPath = "benches/PERFORMANCE.json"

// NamedBench is the part of a benchmark the store cares about.
type NamedBench interface {
	// Name returns the benchmark name used as the stats key.
	Name() string
}

// HostRecord bundles all measurements recorded on one machine.
// Fields are declared in key order so the serialized form is fully
// sorted, which keeps diffs of the result file minimal.
type HostRecord struct {
	// Datetime is the UTC timestamp of the last update, RFC 3339.
	Datetime string `json:"datetime,omitempty"`

	// Platform describes the OS/arch the stats were taken on.
	Platform string `json:"platform,omitempty"`

	// Stats maps benchmark name to an opaque, caller-defined payload.
	Stats map[string]interface{} `json:"stats"`

	// Version of the benchmarked project, taken from its manifest.
	// Nil when the manifest could not be resolved.
	Version *string `json:"version,omitempty"`
}

// DB is a benchmark performance store backed by a single JSON file.
// It keeps the history of every host that ever saved into the file
// and only ever mutates the record of its own host.
type DB struct {
	Path   string
	HostID string
	Data   map[string]*HostRecord

	// VersionFunc resolves the project version stamped onto records.
	// Failures are tolerated; the version field is then omitted.
	VersionFunc func() (string, error)
}

// New loads the store at path, or starts empty if the file does not
// exist. An empty path selects DefaultPath, an empty hostID derives
// the identity of the current machine. Malformed JSON is a hard
// error: overwriting a corrupt history with a fresh one silently
// would lose data without the operator noticing.
func New(path, hostID string) (*DB, error) {
	if path == "" {
		path = DefaultPath
	}

	if hostID == "" {
		id, err := hostid.Get()
		if err != nil {
			return nil, &HostIDError{Err: err}
		}
		hostID = id
	}

	d := &DB{
		Path:   path,
		HostID: hostID,
		Data:   make(map[string]*HostRecord),
		VersionFunc: func() (string, error) {
			return manifest.Version(manifest.DefaultPath)
		},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn().
			Str("component", "db").
			Str("path", path).
			Err(err).
			Msg("cannot open result file, starting empty")
		return d, nil
	}

	if err := json.Unmarshal(raw, &d.Data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return d, nil
}

// Record merges stats for one benchmark into this host's record and
// refreshes the platform, timestamp and version fields. Entries for
// other benchmarks and other hosts are left untouched. Record never
// fails; it only mutates memory.
func (d *DB) Record(bench NamedBench, stats interface{}) {
	rec, ok := d.Data[d.HostID]
	if !ok {
		rec = &HostRecord{Stats: make(map[string]interface{})}
		d.Data[d.HostID] = rec
	}

	if rec.Stats == nil {
		rec.Stats = make(map[string]interface{})
	}

	rec.Stats[bench.Name()] = stats
	rec.Platform = hostid.Platform()
	rec.Datetime = time.Now().UTC().Format(time.RFC3339)

	version, err := d.VersionFunc()
	if err != nil {
		log.Debug().
			Str("component", "db").
			Err(err).
			Msg("cannot resolve project version")
		rec.Version = nil
	} else {
		rec.Version = &version
	}
}

// Save writes the store to disk. The JSON goes to a temporary file
// in the target directory first and is renamed over Path only once
// fully written, so readers never observe a truncated file. On any
// failure the temporary file is removed and the error returned.
func (d *DB) Save() error {
	dir := filepath.Dir(d.Path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(d.Path)+".tmp*")
	if err != nil {
		return err
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(d.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), d.Path)
}

// With opens the store, hands it to fn and saves on clean exit.
// When fn returns an error nothing is persisted, so a failed run
// cannot flush half-updated state over the existing history.
func With(path, hostID string, fn func(*DB) error) error {
	d, err := New(path, hostID)
	if err != nil {
		return err
	}

	if err := fn(d); err != nil {
		return err
	}

	return d.Save()
}

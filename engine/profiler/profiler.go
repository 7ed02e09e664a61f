//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Init must be called once with a capacity in events (an open/close pair per
// scope). Example: profiler.Init(1 << 20)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope and returns the close func to be deferred.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	open := time.Now().UnixNano()
	ring.push(event{at: open, frame: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < open {
			end = open
		}
		ring.push(event{at: end, frame: id, open: false})
	}
}

// Dump writes the captured events as a speedscope JSON file and returns its
// path. View with https://www.speedscope.app.
func Dump() (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", fmt.Errorf("profiler: no events captured")
	}
	path := filepath.Join(os.TempDir(), "crane.profile.speedscope.json")
	if err := writeSpeedscope(evs, path); err != nil {
		return "", err
	}
	return path, nil
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func NumGoroutine() int { return runtime.NumGoroutine() }

// ---------- event ring ----------

type event struct {
	at    int64
	frame int
	open  bool
}

type evRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []event
}

func (r *evRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]event, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *evRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot preserves write order so no sort is needed later.
func (r *evRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

var ring evRing

// ---------- string interner ----------

var (
	framesMu sync.Mutex
	frames   []string
	frameIDs = map[string]int{}
)

func intern(name string) int {
	framesMu.Lock()
	defer framesMu.Unlock()
	if id, ok := frameIDs[name]; ok {
		return id
	}
	id := len(frames)
	frameIDs[name] = id
	frames = append(frames, name)
	return id
}

// ---------- speedscope writer ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"` // "evented"
	Name       string    `json:"name"`
	Unit       string    `json:"unit"` // "microseconds"
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since first event
	Frame int    `json:"frame"`
}

func writeSpeedscope(evs []event, path string) error {
	framesMu.Lock()
	fs := make([]ssFrame, len(frames))
	for i, name := range frames {
		fs[i] = ssFrame{Name: name}
	}
	framesMu.Unlock()

	base := evs[0].at
	endUS := int64(0)
	lastUS := int64(-1)

	out := make([]ssEvent, 0, len(evs)+16)
	stack := make([]int, 0, 64)

	for _, e := range evs {
		atUS := (e.at - base) / 1000
		if atUS < lastUS {
			atUS = lastUS // keep µs monotonic
		}

		if e.open {
			out = append(out, ssEvent{Type: "O", At: atUS, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			// Closes truncated by the ring have no matching open; skip them.
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: atUS, Frame: e.frame})
		}

		lastUS = atUS
		if atUS > endUS {
			endUS = atUS
		}
	}

	// Speedscope wants balanced events; close anything still open, LIFO.
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:       "evented",
			Name:       "crane capture",
			Unit:       "microseconds",
			StartValue: 0,
			EndValue:   endUS,
			Events:     out,
		}},
		Exporter: "crane-profiler",
		Name:     "crane capture",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

package engine

import (
	"sync/atomic"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/helenasilkina/lwc/pkg/component"
)

// snapshotCounter provides monotonic snapshot IDs.
var snapshotCounter atomic.Uint64

// Snapshot captures one instance's reactive state for inspection. Encoded as
// msgpack so devtools can ship it across process boundaries cheaply.
type Snapshot struct {
	SnapshotID uint64         `msgpack:"snapshotId"`
	Instance   string         `msgpack:"instance"`
	Component  string         `msgpack:"component"`
	State      string         `msgpack:"state"`
	Dirty      bool           `msgpack:"dirty"`
	Props      map[string]any `msgpack:"props"`
}

// Snapshot encodes the instance's current state. Tracked slots are included
// per the engine's snapshot_tracked configuration; their values are copied,
// so the snapshot never observes later mutation.
func (e *Engine) Snapshot(in *component.Instance) ([]byte, error) {
	snap := Snapshot{
		SnapshotID: snapshotCounter.Add(1),
		Instance:   in.ID(),
		Component:  in.Definition().Name,
		State:      in.State().String(),
		Dirty:      in.Dirty(),
		Props:      in.StateSnapshot(e.cfg.SnapshotTracked),
	}
	return msgpack.Marshal(&snap)
}

// DecodeSnapshot decodes a snapshot produced by Engine.Snapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

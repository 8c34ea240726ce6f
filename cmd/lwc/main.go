// Command lwc runs a small self-contained demonstration of the component
// engine: it registers a counter component, mounts it, drives a few reactive
// mutations through flush checkpoints, and prints a state snapshot.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/helenasilkina/lwc/pkg/component"
	"github.com/helenasilkina/lwc/pkg/diag"
	"github.com/helenasilkina/lwc/pkg/dom"
	"github.com/helenasilkina/lwc/pkg/engine"
	"github.com/helenasilkina/lwc/pkg/reactive"
	"github.com/helenasilkina/lwc/pkg/reflection"
)

func main() {
	configPath := flag.String("config", "lwc.yaml", "path to the engine configuration file")
	verbose := flag.Bool("v", false, "verbose advisory output")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "lwc:", err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Verbose = true
	}

	patcher := component.PatcherFunc(func(root *dom.ShadowRoot, prev, next component.TemplateDescriptor) error {
		fmt.Printf("render: %v\n", next)
		return nil
	})
	e := engine.New(cfg, patcher, &diag.LogSink{Out: os.Stderr, Verbose: cfg.Verbose})

	if err := e.Define(counterDefinition()); err != nil {
		return err
	}

	in, err := e.CreateElement("x-counter")
	if err != nil {
		return err
	}
	if err := e.Mount(nil, in); err != nil {
		return err
	}

	// Each batch of mutations collapses into one render at the flush.
	for i := 1; i <= 3; i++ {
		if _, err := in.Invoke("increment"); err != nil {
			return err
		}
	}
	if err := e.Flush(); err != nil {
		return err
	}

	if err := in.SetProp("label", "clicks"); err != nil {
		return err
	}
	if err := e.Flush(); err != nil {
		return err
	}

	data, err := e.Snapshot(in)
	if err != nil {
		return err
	}
	snap, err := engine.DecodeSnapshot(data)
	if err != nil {
		return err
	}
	fmt.Printf("snapshot #%d: state=%s dirty=%v props=%v\n", snap.SnapshotID, snap.State, snap.Dirty, snap.Props)

	stats := e.Stats()
	fmt.Printf("stats: upgrades=%d connects=%d renders=%d flushes=%d advisories=%d\n",
		stats.Upgrades, stats.Connects, stats.RendersCompleted, stats.Flushes, stats.Advisories)
	return nil
}

func counterDefinition() *component.Definition {
	return &component.Definition{
		Name: "x-counter",
		Props: []reactive.PropertyDescriptor{
			{Name: "label", Default: "count", HasDefault: true},
			{Name: "step", Reflected: true, Type: reflection.TypeNumber, Default: float64(1), HasDefault: true},
		},
		Tracked: []string{"state"},
		Constructor: func(in *component.Instance) {
			in.SetProp("state", map[string]any{"count": float64(0)})
		},
		Methods: map[string]component.Method{
			"increment": func(in *component.Instance, args ...any) any {
				step, _ := in.Prop("step")
				slot := in.TrackedSlot("state")
				count, _ := slot.Get("count").(float64)
				next := count + step.(float64)
				slot.Set("count", next)
				return next
			},
		},
		Render: func(in *component.Instance) component.TemplateDescriptor {
			label, _ := in.Prop("label")
			count := in.TrackedSlot("state").Get("count")
			return fmt.Sprintf("%v: %v", label, count)
		},
	}
}

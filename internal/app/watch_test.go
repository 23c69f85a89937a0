package app_test

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/steady/internal/app"
	"go.trai.ch/steady/internal/core/ports"
	"go.uber.org/mock/gomock"
)

func TestWatch_ReloadsChangedProject(t *testing.T) {
	f := newFixture(t)
	f.app.WithDebounceWindow(5 * time.Millisecond)
	path := f.script(t, "watch.yaml", `
fps: 10
steps:
  - {action: create, instance: a, project: clip.mp4}
  - {action: create, instance: idle}
  - {action: render, instance: a, frames: 2}
`)

	events := make(chan ports.WatchEvent, 4)
	f.watcher.EXPECT().Start(gomock.Any(), []string{"/proj/clip.mp4"}).Return(nil)
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for ev := range events {
			if !yield(ev) {
				return
			}
		}
	}))
	f.watcher.EXPECT().Stop().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan *app.Report, 4)
	done := make(chan error, 1)
	go func() {
		done <- f.app.Watch(ctx, path, app.ReplayOptions{}, func(r *app.Report) { reports <- r })
	}()

	first := <-reports
	a, _ := first.Instance("a")
	require.True(t, a.Loaded)

	events <- ports.WatchEvent{Path: "/proj/clip.mp4", Operation: ports.OpWrite}
	events <- ports.WatchEvent{Path: "/proj/clip.mp4", Operation: ports.OpWrite}

	select {
	case second := <-reports:
		reloaded, _ := second.Instance("a")
		assert.True(t, reloaded.Loaded)
		assert.Equal(t, a.Checksum, reloaded.Checksum)
		assert.Equal(t, 2, reloaded.Frames)
	case <-time.After(5 * time.Second):
		t.Fatal("no report after project change")
	}

	cancel()
	close(events)
	require.NoError(t, <-done)
}

func TestWatch_NothingToWatch(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "idle.yaml", "steps:\n  - {action: create, instance: a}\n")

	var got []*app.Report
	err := f.app.Watch(context.Background(), path, app.ReplayOptions{}, func(r *app.Report) { got = append(got, r) })
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

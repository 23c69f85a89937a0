package managers_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/steady/internal/core/ports/mocks"
	"go.trai.ch/steady/internal/engine/managers"
	"go.uber.org/mock/gomock"
)

func key(path string) domain.CacheKey {
	return domain.NewCacheKey(path, false, "id-1")
}

// engine returns a mock engine that expects to be closed closes times.
func engine(ctrl *gomock.Controller, closes int) *mocks.MockEngine {
	e := mocks.NewMockEngine(ctrl)
	e.EXPECT().Close().Return(nil).Times(closes)
	return e
}

func newCache(t *testing.T, ctrl *gomock.Controller, capacity int, strict bool) *managers.Cache {
	t.Helper()
	c, err := managers.NewCache(capacity, strict, mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	return c
}

func TestCache_GetReturnsSameEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 4, false)

	s := c.Insert(managers.NewShared(key("/a.gyroflow"), engine(ctrl, 0)))
	assert.Equal(t, int64(2), s.Refs())

	got, ok := c.Get(key("/a.gyroflow"))
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, int64(3), s.Refs())

	_, ok = c.Get(key("/b.gyroflow"))
	assert.False(t, ok)
}

func TestCache_InsertKeepsFirstBuilder(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 4, false)

	first := c.Insert(managers.NewShared(key("/a.gyroflow"), engine(ctrl, 0)))
	second := c.Insert(managers.NewShared(key("/a.gyroflow"), engine(ctrl, 1)))

	assert.Same(t, first, second)
	assert.Equal(t, int64(3), first.Refs())
	assert.Equal(t, 1, c.Len())
}

func TestCache_EvictsUnreferencedBeforePinned(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 2, false)

	pinned := c.Insert(managers.NewShared(key("/a.gyroflow"), engine(ctrl, 0)))
	idle := c.Insert(managers.NewShared(key("/b.gyroflow"), engine(ctrl, 1)))
	require.NoError(t, idle.Release())

	c.Insert(managers.NewShared(key("/c.gyroflow"), engine(ctrl, 0)))

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains(key("/a.gyroflow")))
	assert.False(t, c.Contains(key("/b.gyroflow")))
	assert.True(t, c.Contains(key("/c.gyroflow")))
	assert.Equal(t, int64(2), pinned.Refs())
}

func TestCache_EvictsOldestWhenAllPinned(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 2, false)

	oldest := c.Insert(managers.NewShared(key("/a.gyroflow"), engine(ctrl, 0)))
	c.Insert(managers.NewShared(key("/b.gyroflow"), engine(ctrl, 0)))
	c.Insert(managers.NewShared(key("/c.gyroflow"), engine(ctrl, 0)))

	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Contains(key("/a.gyroflow")))
	// The caller still holds the evicted engine.
	assert.Equal(t, int64(1), oldest.Refs())
	assert.Equal(t, []domain.CacheKey{key("/b.gyroflow"), key("/c.gyroflow")}, c.Keys())
}

func TestCache_NeverExceedsCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 3, false)

	for _, p := range []string{"/1", "/2", "/3", "/4", "/5", "/6", "/7"} {
		s := c.Insert(managers.NewShared(key(p), engine(ctrl, 1)))
		require.NoError(t, s.Release())
		assert.LessOrEqual(t, c.Len(), 3)
	}
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCache_IndependentKeysSurviveEviction(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 1, false)

	a := c.Insert(managers.NewShared(key("/a.gyroflow"), engine(ctrl, 1)))
	b := c.Insert(managers.NewShared(key("/b.gyroflow"), engine(ctrl, 1)))

	assert.NotSame(t, a, b)
	assert.Equal(t, int64(1), a.Refs())
	assert.True(t, a.TryRetain())
	require.NoError(t, a.Release())

	require.NoError(t, a.Release())
	assert.False(t, a.TryRetain())

	require.NoError(t, b.Release())
	c.Clear()
}

func TestCache_PruneUnreferenced(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 4, false)

	held := c.Insert(managers.NewShared(key("/a.gyroflow"), engine(ctrl, 0)))
	idle := c.Insert(managers.NewShared(key("/b.gyroflow"), engine(ctrl, 1)))
	require.NoError(t, idle.Release())

	removed := c.PruneUnreferenced([]domain.CacheKey{key("/a.gyroflow"), key("/b.gyroflow"), key("/missing")})

	assert.Equal(t, 1, removed)
	assert.True(t, c.Contains(key("/a.gyroflow")))
	assert.False(t, c.Contains(key("/b.gyroflow")))
	assert.Equal(t, int64(2), held.Refs())
}

func TestCache_LoadedLensDB(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 4, false)

	emptyDB := mocks.NewMockLensProfileDB(ctrl)
	emptyDB.EXPECT().Loaded().Return(false).AnyTimes()
	loadedDB := mocks.NewMockLensProfileDB(ctrl)
	loadedDB.EXPECT().Loaded().Return(true).AnyTimes()

	e1 := engine(ctrl, 0)
	e1.EXPECT().LensProfileDB().Return(emptyDB)
	e2 := engine(ctrl, 0)
	e2.EXPECT().LensProfileDB().Return(loadedDB)

	c.Insert(managers.NewShared(key("/a.gyroflow"), e1))
	c.Insert(managers.NewShared(key("/b.gyroflow"), e2))

	db, ok := c.LoadedLensDB()
	require.True(t, ok)
	assert.Same(t, loadedDB, db)
}

func TestCache_AcquireConcurrentBuildsBothSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 4, false)

	var builds atomic.Int32
	build := func() (*managers.Shared, error) {
		builds.Add(1)
		e := mocks.NewMockEngine(ctrl)
		e.EXPECT().Close().Return(nil).MaxTimes(1)
		return managers.NewShared(key("/a.gyroflow"), e), nil
	}

	var wg sync.WaitGroup
	results := make([]*managers.Shared, 2)
	for i := range results {
		wg.Go(func() {
			s, _, err := c.Acquire(key("/a.gyroflow"), build)
			assert.NoError(t, err)
			results[i] = s
		})
	}
	wg.Wait()

	require.NotNil(t, results[0])
	assert.Same(t, results[0], results[1])
	assert.Equal(t, 1, c.Len())
	assert.LessOrEqual(t, builds.Load(), int32(2))
}

func TestCache_AcquireStrictBuildsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newCache(t, ctrl, 4, true)

	var builds atomic.Int32
	build := func() (*managers.Shared, error) {
		builds.Add(1)
		return managers.NewShared(key("/a.gyroflow"), engine(ctrl, 0)), nil
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			s, _, err := c.Acquire(key("/a.gyroflow"), build)
			assert.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
	s, hit, err := c.Acquire(key("/a.gyroflow"), build)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(10), s.Refs())
}

func TestCache_AcquireBuildError(t *testing.T) {
	ctrl := gomock.NewController(t)
	errBoom := errors.New("boom")

	for _, strict := range []bool{false, true} {
		c := newCache(t, ctrl, 4, strict)
		_, _, err := c.Acquire(key("/a.gyroflow"), func() (*managers.Shared, error) {
			return nil, errBoom
		})
		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, 0, c.Len())
	}
}

func TestShared_UpdateAndView(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := engine(ctrl, 1)
	e.EXPECT().InvalidateSmoothing()
	e.EXPECT().Clip().Return(domain.ClipInfo{FrameCount: 3})

	s := managers.NewShared(key("/a.gyroflow"), e)
	require.NoError(t, s.Update(func(e ports.Engine) error {
		e.InvalidateSmoothing()
		return nil
	}))
	require.NoError(t, s.View(func(e ports.Engine) error {
		assert.Equal(t, 3, e.Clip().FrameCount)
		return nil
	}))
	require.NoError(t, s.Release())
}

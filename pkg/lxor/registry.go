package lxor

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/saylorsolutions/luaxor/pkg/xor"
	lua "github.com/yuin/gopher-lua"
)

// Registry tracks the cipher handles created within a single LState, and destroys each one exactly once.
// Its bookkeeping is safe for concurrent use, since finalizers run on their own goroutine.
type Registry struct {
	mu     sync.Mutex
	live   map[*xor.Cipher]struct{}
	closed bool
	name   string
	log    *slog.Logger
}

func newRegistry(opts ...Option) *Registry {
	cfg := newConfig(opts...)
	return &Registry{
		live: map[*xor.Cipher]struct{}{},
		name: cfg.moduleName,
		log:  cfg.logger.With("module", cfg.moduleName),
	}
}

// Preload makes the module available to scripts through require, and returns the Registry that owns its handles.
func Preload(L *lua.LState, opts ...Option) *Registry {
	r := newRegistry(opts...)
	L.PreloadModule(r.name, r.Loader)
	return r
}

// Open builds the module table directly, for hosts that would rather set it as a global than go through require.
func Open(L *lua.LState, opts ...Option) (*Registry, *lua.LTable) {
	r := newRegistry(opts...)
	return r, r.open(L)
}

// Name returns the module name this Registry is loaded as.
func (r *Registry) Name() string {
	return r.name
}

// Live returns the number of handles whose Cipher hasn't been destroyed yet.
// Ciphers destroyed outside the Registry are dropped from tracking here.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.live {
		if c.Destroyed() {
			delete(r.live, c)
		}
	}
	return len(r.live)
}

// Close destroys every Cipher that's still alive, and prevents new handles from being created.
// The host should only call Close once it has stopped running scripts in the LState.
// Calling Close more than once is a no-op.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	n := len(r.live)
	for c := range r.live {
		c.Destroy()
	}
	r.live = nil
	r.log.Debug("registry closed", "destroyed", n)
}

func (r *Registry) track(ud *lua.LUserData, c *xor.Cipher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.live[c] = struct{}{}
	runtime.SetFinalizer(ud, r.reclaim)
	r.log.Debug("handle created", "key_len", c.KeyLen(), "live", len(r.live))
	return nil
}

// reclaim is the finalizer attached to every handle.
// It may also be reached after Close, in which case the Cipher is already destroyed.
func (r *Registry) reclaim(ud *lua.LUserData) {
	c, ok := ud.Value.(*xor.Cipher)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, tracked := r.live[c]; !tracked {
		c.Destroy()
		return
	}
	delete(r.live, c)
	c.Destroy()
	r.log.Debug("handle reclaimed", "live", len(r.live))
}

// SPDX-License-Identifier: GPL-3.0-or-later

package router

import (
	"sync"
	"sync/atomic"

	"github.com/bassosimone/runtimex"
)

// State is the router's lifecycle state, grounded on the state diagram in
// Router::initialize (router.cc) and the _state field it mutates.
type State int

const (
	// StateNew is the only state in which elements, connections, and
	// requirements may be added.
	StateNew State = iota

	// StatePreconfigure is entered at the start of Initialize, before
	// validation and Configure calls run.
	StatePreconfigure

	// StatePreinitialize is entered once every element has configured
	// successfully, before Initialize calls run.
	StatePreinitialize

	// StateLive is entered once every element has initialized
	// successfully.
	StateLive

	// StateDead is entered on any lifecycle failure (rollback complete)
	// or after the router is torn down.
	StateDead
)

// String names the state for logging and introspection handlers.
func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StatePreconfigure:
		return "preconfigure"
	case StatePreinitialize:
		return "preinitialize"
	case StateLive:
		return "live"
	default:
		return "dead"
	}
}

// RunningState tracks how far Activate has gotten handing the router to its
// Master, grounded on Router::_running_inline / RUNNING_* in router.cc.
type RunningState int32

const (
	// RunningPreparing is the state before Activate is called.
	RunningPreparing RunningState = iota

	// RunningBackground means Activate(false, ...) handed the router to
	// the Master for background scheduling.
	RunningBackground

	// RunningActive means Activate(true, ...) requested foreground
	// scheduling.
	RunningActive

	// RunningDead means the router's Master has been killed.
	RunningDead
)

// Router owns an element graph, validates and resolves its wiring, drives
// elements through the configure/initialize lifecycle, and serves the
// handler/attachment/notifier surface once live. See [Element] for the
// per-node contract and the package doc for the full lifecycle diagram.
type Router struct {
	mu sync.Mutex

	cfg    *Config
	spanID string
	log    spanSLogger

	state   State
	running RunningState

	elements     []Element
	index        map[Element]int
	names        []string
	landmarks    []string
	configs      []string
	configArgs   [][]string
	cleanupStage []CleanupStage

	configureOrder []int

	conns *connectionTable
	pidx  *portIndex

	requirements []string

	handlers    *handlerRegistry
	attachments *attachmentStore
	notifiers   *notifierBank

	runcount atomic.Int32
	stopper  atomic.Bool

	hotswapPredecessor *Router
	master             Master
}

// NewRouter returns an empty router in [StateNew]. A nil cfg is replaced by
// [NewConfig]'s defaults.
func NewRouter(cfg *Config) *Router {
	if cfg == nil {
		cfg = NewConfig()
	}
	runtimex.Assert(cfg.Logger != nil && cfg.ErrSink != nil)
	r := &Router{
		cfg:         cfg,
		spanID:      NewSpanID(),
		state:       StateNew,
		index:       make(map[Element]int),
		conns:       newConnectionTable(),
		handlers:    newHandlerRegistry(),
		attachments: newAttachmentStore(),
		notifiers:   newNotifierBank(),
		master:      cfg.Master,
	}
	r.log = newSpanSLogger(cfg.Logger, r.spanID)
	r.installDefaultHandlers()
	r.log.Debug("router created")
	return r
}

// State returns the router's current lifecycle state.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// SpanID returns the UUIDv7 minted for this router instance, used to
// correlate its log lines.
func (r *Router) SpanID() string {
	return r.spanID
}

// elementIndex returns the stable index of e, or false if e does not belong
// to this router. Grounded on Element::eindex()'s role in router.cc, here
// implemented as a reverse lookup since Go elements don't store a back-index
// field by contract.
func (r *Router) elementIndex(e Element) (int, bool) {
	i, ok := r.index[e]
	return i, ok
}

// AddElement attaches element to the router under name, with configuration
// as its raw (already-split by the caller) configure argument vector and
// landmark as a human-readable provenance string for error messages. Valid
// only in [StateNew]. Grounded on Router::add_element.
func (r *Router) AddElement(element Element, name string, configuration []string, landmark string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateNew {
		return -1, ErrWrongState
	}
	idx := len(r.elements)
	r.elements = append(r.elements, element)
	r.index[element] = idx
	r.names = append(r.names, name)
	r.landmarks = append(r.landmarks, landmark)
	r.configs = append(r.configs, joinArgs(configuration))
	r.configArgs = append(r.configArgs, configuration)
	r.cleanupStage = append(r.cleanupStage, CleanupNone)
	return idx, nil
}

// AddConnection records a directed edge from (fromIdx, fromPort) to (toIdx,
// toPort). Duplicate connections silently collapse. Index and port range
// validation happens later, in Initialize. Valid only in [StateNew].
// Grounded on Router::add_connection.
func (r *Router) AddConnection(fromIdx, fromPort, toIdx, toPort int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateNew {
		return ErrWrongState
	}
	r.conns.add(hookup{elementIndex: fromIdx, port: fromPort}, hookup{elementIndex: toIdx, port: toPort})
	return nil
}

// AddRequirement records an opaque provenance tag, consumed only by
// [Router.Unparse]'s require(...) clause and by the configuration-language
// collaborator (out of scope here). Valid only in [StateNew]; in any other
// state the call is ignored. Grounded on Router::add_requirement.
func (r *Router) AddRequirement(word string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateNew {
		return
	}
	r.requirements = append(r.requirements, word)
}

// SetHotswapRouter designates predecessor as the router whose live element
// state Activate should transfer into this router. Valid only in
// [StateNew], and only when predecessor is nil or itself [StateLive].
// Grounded on Router::set_hotswap_router.
func (r *Router) SetHotswapRouter(predecessor *Router) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateNew {
		return ErrWrongState
	}
	if predecessor != nil && predecessor.State() != StateLive {
		return ErrWrongState
	}
	r.hotswapPredecessor = predecessor
	return nil
}

// joinArgs renders a configure argument vector as the single
// comma-separated string Unparse prints inside CLASS(CONFIG). Configure
// itself receives the original slice, not this string.
func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out
}

// SPDX-License-Identifier: GPL-3.0-or-later

package router

// resolveElementIndex maps a public Element reference to the internal
// index the handler registry keys on; a nil element addresses the
// router's global handler table.
func (r *Router) resolveElementIndex(element Element) (int, error) {
	if element == nil {
		return rootElementIndex, nil
	}
	idx, ok := r.elementIndex(element)
	if !ok {
		return 0, ErrBadElementIndex
	}
	return idx, nil
}

// upsertHandler installs or augments the handler named name on elementIndex.
// When an entry already exists under that name, flags already set on it are
// preserved (together with their callback) if the caller isn't replacing
// them, so AddReadHandler following AddWriteHandler (or vice versa) augments
// rather than clobbers, matching Router::add_read_handler/add_write_handler.
func (r *Router) upsertHandler(elementIndex int, name string, flags HandlerFlag, read ReadHandlerFunc, readThunk any, write WriteHandlerFunc, writeThunk any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg := r.handlers
	if existingIdx, ok := reg.findExact(elementIndex, name); ok {
		old := reg.slots[existingIdx]
		if flags&HandlerReadable == 0 && old.flags&HandlerReadable != 0 {
			flags |= HandlerReadable
			if read == nil {
				read, readThunk = old.read, old.readThunk
			}
		}
		if flags&HandlerWritable == 0 && old.flags&HandlerWritable != 0 {
			flags |= HandlerWritable
			if write == nil {
				write, writeThunk = old.write, old.writeThunk
			}
		}
	}
	slotIdx := reg.findOrCreateSlot(name, flags, read, readThunk, write, writeThunk)
	reg.bind(elementIndex, name, slotIdx)
	r.log.Info("handler installed", "name", name, "element", elementIndex)
	return nil
}

// AddReadHandler registers (or augments) a read handler named name on
// element, bound to fn and thunk. A nil element installs a global handler.
// Grounded on Router::add_read_handler.
func (r *Router) AddReadHandler(element Element, name string, fn ReadHandlerFunc, thunk any) error {
	idx, err := r.resolveElementIndex(element)
	if err != nil {
		return err
	}
	return r.upsertHandler(idx, name, HandlerReadable, fn, thunk, nil, nil)
}

// AddWriteHandler registers (or augments) a write handler named name on
// element, bound to fn and thunk. A nil element installs a global handler.
// Grounded on Router::add_write_handler.
func (r *Router) AddWriteHandler(element Element, name string, fn WriteHandlerFunc, thunk any) error {
	idx, err := r.resolveElementIndex(element)
	if err != nil {
		return err
	}
	return r.upsertHandler(idx, name, HandlerWritable, nil, nil, fn, thunk)
}

// SetHandler installs a handler with an explicit flag set and both
// callbacks at once, overwriting any prior registration under name rather
// than augmenting it. Grounded on Router::set_handler.
func (r *Router) SetHandler(element Element, name string, flags HandlerFlag, read ReadHandlerFunc, readThunk any, write WriteHandlerFunc, writeThunk any) error {
	idx, err := r.resolveElementIndex(element)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	slotIdx := r.handlers.findOrCreateSlot(name, flags, read, readThunk, write, writeThunk)
	r.handlers.bind(idx, name, slotIdx)
	r.log.Info("handler installed", "name", name, "element", idx)
	return nil
}

// Handler looks up name on element (nil for the global table), consulting
// a "*" fallback if no exact match exists. Grounded on
// Router::find_ehandler/Router::handler.
func (r *Router) Handler(element Element, name string) (Handler, bool) {
	idx, err := r.resolveElementIndex(element)
	if err != nil {
		return Handler{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	slotIdx, ok := r.handlers.find(idx, name, r)
	if !ok {
		return Handler{}, false
	}
	s := r.handlers.slots[slotIdx]
	return Handler{Name: s.name, Flags: s.flags, UseCount: s.useCount}, true
}

// ChangeHandlerFlags clears then sets the given flag bits on the handler
// named name on element. Grounded on Router::change_handler_flags.
func (r *Router) ChangeHandlerFlags(element Element, name string, clear, set HandlerFlag) error {
	idx, err := r.resolveElementIndex(element)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	slotIdx, ok := r.handlers.findExact(idx, name)
	if !ok {
		return ErrHandlerNotFound
	}
	s := r.handlers.slots[slotIdx]
	s.flags = (s.flags &^ clear) | set
	return nil
}

// lookupForCall resolves (element, name) to the callback and flags needed
// to invoke it, under the registry lock, without holding the lock across
// the callback itself.
func (r *Router) lookupForCall(element Element, name string) (flags HandlerFlag, read ReadHandlerFunc, readThunk any, write WriteHandlerFunc, writeThunk any, ok bool) {
	idx, err := r.resolveElementIndex(element)
	if err != nil {
		return 0, nil, nil, nil, nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	slotIdx, found := r.handlers.find(idx, name, r)
	if !found {
		return 0, nil, nil, nil, nil, false
	}
	s := r.handlers.slots[slotIdx]
	return s.flags, s.read, s.readThunk, s.write, s.writeThunk, true
}

// CallRead invokes the named handler's read side on element (nil for
// global), enforcing the readable and read-param flags. Grounded on
// Router::call_read.
func (r *Router) CallRead(element Element, name, param string, sink ErrorSink) (string, error) {
	flags, read, readThunk, _, _, ok := r.lookupForCall(element, name)
	if !ok {
		return "", ErrHandlerNotFound
	}
	if flags&HandlerReadable == 0 || read == nil {
		return "", ErrHandlerNotReadable
	}
	if param != "" && flags&HandlerReadParam == 0 {
		return "", ErrHandlerTakesNoParam
	}
	return read(element, param, readThunk, sink)
}

// CallWrite invokes the named handler's write side on element (nil for
// global) with value, enforcing the writable flag. Grounded on
// Router::call_write.
func (r *Router) CallWrite(element Element, name, value string, sink ErrorSink) error {
	flags, _, _, write, writeThunk, ok := r.lookupForCall(element, name)
	if !ok {
		return ErrHandlerNotFound
	}
	if flags&HandlerWritable == 0 || write == nil {
		return ErrHandlerNotWritable
	}
	return write(element, value, writeThunk, sink)
}

// SPDX-License-Identifier: GPL-3.0-or-later

package router

// attachmentStore holds named opaque values that elements attach to a
// router during configure/initialize for others to look up later.
// Read-mostly after LIVE; writes are single-writer by convention (see
// [Router.SetAttachment]). Grounded on Router::_attachments in router.cc.
type attachmentStore struct {
	values map[string]any
}

func newAttachmentStore() *attachmentStore {
	return &attachmentStore{values: make(map[string]any)}
}

// Attachment returns the value previously stored under name, or nil and
// false if none was attached. Grounded on Router::attachment.
func (r *Router) Attachment(name string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.attachments.values[name]
	return v, ok
}

// SetAttachment stores value under name, overwriting any prior value.
// Callers must not write the same name concurrently from multiple
// goroutines; reads may interleave freely. Grounded on
// Router::set_attachment.
func (r *Router) SetAttachment(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attachments.values[name] = value
}

// File: api/release.go
// Author: momentics <momentics@gmail.com>
//
// Element teardown capability. The container does not know element internals;
// it only promises to invoke each live element's own teardown exactly once
// when the element is dropped without being handed to the caller.

package api

// Releasable is implemented by element types that own external resources.
// Release is invoked once per element dropped during container or iterator
// teardown. Elements moved out to the caller are the caller's to release.
type Releasable interface {
	Release()
}

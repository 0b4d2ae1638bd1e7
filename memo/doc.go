// Package memo provides per-instance memoization of zero-argument computations.
//
// A Value is a slot owned by the struct that embeds it. The first successful
// Get runs the computation and stores its result; every later Get returns the
// stored result without running it again. The slot is never invalidated and
// lives as long as its owner.
//
//	type Repo struct {
//	    client *fetch.Client
//	    org    memo.Value[map[string]any]
//	}
//
//	func (r *Repo) Org(ctx context.Context) (map[string]any, error) {
//	    return r.org.Get(func() (map[string]any, error) {
//	        v, err := r.client.GetJSON(ctx, r.orgURL)
//	        ...
//	    })
//	}
//
// # Failure
//
// Errors are not cached. A Get whose computation fails leaves the slot empty
// and the next Get runs the computation again. A panic leaves the slot empty
// and is re-raised with its original value in every caller that shared the
// computation.
//
// # Concurrency
//
// Value is safe for concurrent use. Concurrent first callers share a single
// in-flight computation and all receive its result or error.
package memo

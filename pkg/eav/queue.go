package eav

import (
	"fmt"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// deletionQueue buffers value rows marked for removal. It is transient
// and instance-scoped: populated during replace operations, drained into
// one bulk delete at flush, never persisted itself.
type deletionQueue struct {
	refs []*types.Value
}

func (q *deletionQueue) push(v *types.Value) {
	q.refs = append(q.refs, v)
}

func (q *deletionQueue) len() int {
	return len(q.refs)
}

func (q *deletionQueue) ids() []string {
	out := make([]string, 0, len(q.refs))
	for _, v := range q.refs {
		out = append(out, v.ValueID)
	}
	return out
}

func (q *deletionQueue) reset() {
	q.refs = nil
}

// QueueForDeletion marks a value row for physical removal at the next
// flush. The row stays present in storage and is only excluded from the
// in-memory value set by the caller.
func (o *Overlay) QueueForDeletion(v *types.Value) {
	o.queue.push(v)
}

// FlushDeletionQueue deletes every queued row in one bulk call and
// returns the number of rows removed. An empty queue performs zero
// storage calls. On failure the queue stays intact so the flush can be
// retried; deletes are idempotent by ID.
func (o *Overlay) FlushDeletionQueue() (int, error) {
	if o.queue.len() == 0 {
		return 0, nil
	}
	n, err := o.store.DeleteValuesByID(o.queue.ids())
	if err != nil {
		return 0, fmt.Errorf("flushing deletion queue: %w", err)
	}
	o.queue.reset()
	return n, nil
}

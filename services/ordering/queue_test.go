package ordering

import (
	"context"
	"sync"

	"github.com/MarcGrol/salessimulator/lib/myqueue"
)

type recordingQueue struct {
	sync.Mutex
	tasks []myqueue.Task
}

func (q *recordingQueue) Enqueue(c context.Context, task myqueue.Task) error {
	q.Lock()
	defer q.Unlock()
	q.tasks = append(q.tasks, task)
	return nil
}

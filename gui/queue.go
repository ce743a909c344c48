// This file is part of Emu6502.
//
// Emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu6502.  If not, see <https://www.gnu.org/licenses/>.

package gui

import (
	"sync"

	"github.com/emu6502/emu6502/curated"
)

// QueueCapacity is the number of commands that can be waiting in a Queue.
const QueueCapacity = 2048

// Queue is a bounded queue of display commands. There should be one producer
// and one consumer.
type Queue struct {
	ch        chan Command
	done      chan struct{}
	closeOnce sync.Once
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		ch:   make(chan Command, QueueCapacity),
		done: make(chan struct{}),
	}
}

// Push adds a command to the queue. Blocks while the queue is full. Returns
// an error if the queue has been closed.
func (q *Queue) Push(cmd Command) error {
	select {
	case <-q.done:
		return curated.Errorf(QueueClosed)
	default:
	}

	select {
	case q.ch <- cmd:
		return nil
	case <-q.done:
		return curated.Errorf(QueueClosed)
	}
}

// TryPush adds a command to the queue if there is room. Returns false if the
// command was not added.
func (q *Queue) TryPush(cmd Command) bool {
	select {
	case <-q.done:
		return false
	default:
	}

	select {
	case q.ch <- cmd:
		return true
	default:
		return false
	}
}

// TryPop removes the next command from the queue. Returns false if the queue
// is empty.
func (q *Queue) TryPop() (Command, bool) {
	select {
	case cmd := <-q.ch:
		return cmd, true
	default:
		return Command{}, false
	}
}

// Len returns the number of commands waiting in the queue.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Close the queue. Commands already in the queue can still be popped. Any
// blocked Push() returns with an error.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}

// Done returns a channel that is closed when the queue is closed.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Package kanban holds the drag-and-drop state of a board. The columns are
// the task statuses; a drop moves the dragged task into the target column.
package kanban

import (
	"github.com/balkashynov/pmboard/internal/models"
)

// Mover is the part of the domain layer a drop needs
type Mover interface {
	Task(id string) *models.Task
	MoveTask(id string, status models.TaskStatus) (bool, error)
}

// Machine tracks the task currently being dragged. The zero value is ready
// to use and is owned by a single board.
type Machine struct {
	dragged string
}

// DragStart marks taskID as in flight
func (m *Machine) DragStart(taskID string) {
	m.dragged = taskID
}

// Dragging returns the in-flight task id and whether there is one
func (m *Machine) Dragging() (string, bool) {
	return m.dragged, m.dragged != ""
}

// Drop moves the dragged task into target. It does nothing when no drag is
// in flight, the target is not a column, the task is gone or the task is
// already in target. The in-flight id is left for DragEnd to clear.
func (m *Machine) Drop(target models.TaskStatus, mover Mover) (bool, error) {
	if m.dragged == "" || !target.Valid() {
		return false, nil
	}

	task := mover.Task(m.dragged)
	if task == nil || task.Status == target {
		return false, nil
	}
	return mover.MoveTask(task.ID, target)
}

// DragEnd clears the in-flight id whatever the drop did
func (m *Machine) DragEnd() {
	m.dragged = ""
}

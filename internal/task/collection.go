package task

// Collection is the ordered set of tasks persisted as one unit.
type Collection []Task

// NextID returns the id for a new task: the highest existing id plus one.
func (c Collection) NextID() int {
	highest := 0
	for i := range c {
		if c[i].ID > highest {
			highest = c[i].ID
		}
	}
	return highest + 1
}

// Index returns the position of the task with the given id, or -1.
func (c Collection) Index(id int) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Filter returns the tasks with the given status, preserving order.
// An empty status matches every task.
func (c Collection) Filter(status Status) Collection {
	filtered := make(Collection, 0, len(c))
	for _, t := range c {
		if status == "" || t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Remove returns the collection without the element at index i.
// Relative order of the remaining tasks is kept.
func (c Collection) Remove(i int) Collection {
	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:i]...)
	return append(out, c[i+1:]...)
}

// ClampUpdated raises any UpdatedAt that reads earlier than its CreatedAt
// and reports how many tasks changed.
func (c Collection) ClampUpdated() int {
	n := 0
	for i := range c {
		if c[i].UpdatedAt.WallBefore(c[i].CreatedAt) {
			c[i].UpdatedAt = c[i].CreatedAt
			n++
		}
	}
	return n
}

package taskstore

// TaskRecord is the wire shape of a task store record.
type TaskRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"` // "pending" | "completed"
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date,omitempty"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateTaskRequest is the payload for POST /api/v1/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date,omitempty"`
	Category    string `json:"category,omitempty"`
}

// UpdateTaskRequest is the payload for PATCH /api/v1/tasks/{id}.
// Pointer fields are partial: nil fields are omitted from the patch.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Category    *string `json:"category,omitempty"`
}

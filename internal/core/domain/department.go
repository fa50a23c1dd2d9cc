package domain

// Department groups employees under an optional manager.
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ManagerID   *int64 `json:"manager_id,omitempty"`
	ManagerName string `json:"manager_name,omitempty"`
}

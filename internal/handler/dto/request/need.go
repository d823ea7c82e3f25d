package request

import "time"

type CreateNeedRequest struct {
	Title       string    `json:"title" binding:"required,notblank,max=200"`
	Category    string    `json:"category" binding:"omitempty,max=100"`
	Location    string    `json:"location" binding:"omitempty,max=200"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	Capacity    int64     `json:"capacity" binding:"required,gt=0"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

package visit

import "time"

// Route identifies which greeting endpoint produced a visit.
type Route string

const (
	RouteHelloQuery Route = "hello_query"
	RouteHelloPath  Route = "hello_path"
)

type Visit struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	VisitID   string    `gorm:"size:32;uniqueIndex:ux_visits_visit_id" json:"visit_id"`
	Route     Route     `gorm:"size:32;index:idx_visits_route_served" json:"route"`
	Name      string    `gorm:"size:255" json:"name"`
	ServedAt  time.Time `gorm:"index:idx_visits_route_served" json:"served_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Visit) TableName() string { return "greeting_visits" }

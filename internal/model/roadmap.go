package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// RoadmapContent is the structured result of a roadmap generation: a
// free-text narrative plus an ordered list of milestones.
type RoadmapContent struct {
	Roadmap    string   `json:"roadmap"`
	Milestones []string `json:"milestones"`
}

// Value serializes the content to JSON for storage in a TEXT column.
func (c RoadmapContent) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *RoadmapContent) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return json.Unmarshal([]byte(v), c)
	case []byte:
		return json.Unmarshal(v, c)
	}
	return fmt.Errorf("cannot scan %T into RoadmapContent", src)
}

type Roadmap struct {
	ID        string         `db:"id" json:"id"`
	UserID    string         `db:"user_id" json:"userId"`
	GoalID    string         `db:"goal_id" json:"goalId"`
	Content   RoadmapContent `db:"content" json:"content"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}

// RoadmapContentPatch is a partial update of a roadmap's content
// sub-object. Top-level roadmap fields are not patchable.
type RoadmapContentPatch struct {
	Roadmap    Optional[string]   `json:"roadmap"`
	Milestones Optional[[]string] `json:"milestones"`
}

// Apply merges the patch into the roadmap's content and refreshes the
// update timestamp.
func (p *RoadmapContentPatch) Apply(rm *Roadmap, now time.Time) {
	if v, ok := p.Roadmap.Get(); ok {
		rm.Content.Roadmap = v
	}
	if v, ok := p.Milestones.Get(); ok {
		rm.Content.Milestones = v
	}
	rm.UpdatedAt = now
}

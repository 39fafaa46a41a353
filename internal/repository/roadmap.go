package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gitpichardo/self-starter/internal/model"
)

type roadmapRepository struct {
	db *sqlx.DB
}

func NewRoadmapRepository(db *sqlx.DB) RoadmapRepository {
	return &roadmapRepository{db: db}
}

func (r *roadmapRepository) Create(roadmap *model.Roadmap) error {
	query := `INSERT INTO roadmaps (id, user_id, goal_id, content, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		roadmap.ID,
		roadmap.UserID,
		roadmap.GoalID,
		roadmap.Content,
		roadmap.CreatedAt,
		roadmap.UpdatedAt,
	)

	return err
}

func (r *roadmapRepository) ByGoalID(userID, goalID string) (*model.Roadmap, error) {
	roadmap := &model.Roadmap{}
	query := `SELECT * FROM roadmaps WHERE user_id = $1 AND goal_id = $2 ORDER BY created_at ASC LIMIT 1`

	err := r.db.Get(roadmap, query, userID, goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoadmapNotFound
	}

	return roadmap, err
}

func (r *roadmapRepository) ByUserID(userID string) ([]*model.Roadmap, error) {
	var roadmaps []*model.Roadmap
	query := `SELECT * FROM roadmaps WHERE user_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&roadmaps, query, userID)
	if err != nil {
		return nil, err
	}

	return roadmaps, nil
}

func (r *roadmapRepository) UpdateContent(userID, goalID string, patch *model.RoadmapContentPatch) (*model.Roadmap, error) {
	roadmap, err := r.ByGoalID(userID, goalID)
	if err != nil {
		return nil, err
	}

	patch.Apply(roadmap, time.Now())

	query := `UPDATE roadmaps SET content = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(query, roadmap.Content, roadmap.UpdatedAt, roadmap.ID)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, ErrRoadmapNotFound
	}

	return roadmap, nil
}

func (r *roadmapRepository) Delete(userID, goalID string) error {
	query := `DELETE FROM roadmaps WHERE user_id = $1 AND goal_id = $2`
	result, err := r.db.Exec(query, userID, goalID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrRoadmapNotFound
	}

	return nil
}

package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gitpichardo/self-starter/internal/model"
)

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, title, description, start_date, end_date, status, roadmap, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.StartDate,
		goal.EndDate,
		goal.Status,
		goal.Roadmap,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(id string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) ByUserID(userID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(id string, patch *model.GoalPatch) (*model.Goal, error) {
	goal, err := r.ByID(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(goal, time.Now())

	query := `UPDATE goals
	          SET title = $1, description = $2, start_date = $3, end_date = $4, status = $5, roadmap = $6, updated_at = $7
	          WHERE id = $8`

	result, err := r.db.Exec(query,
		goal.Title,
		goal.Description,
		goal.StartDate,
		goal.EndDate,
		goal.Status,
		goal.Roadmap,
		goal.UpdatedAt,
		goal.ID,
	)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, ErrGoalNotFound
	}

	return goal, nil
}

func (r *goalRepository) Delete(id string) error {
	query := `DELETE FROM goals WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

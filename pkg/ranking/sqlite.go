package ranking

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Score is one ranked run.
type Score struct {
	ID        uint      `gorm:"primarykey;autoIncrement;"`
	Seconds   float64   `gorm:"index:idx_score_seconds"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Score) TableName() string {
	return "scores"
}

// SQLStore keeps the ranking in a SQLite table.
type SQLStore struct {
	DB *gorm.DB
}

// OpenSQLite opens (or creates) the database at path and migrates it.
func OpenSQLite(path string, log zerolog.Logger) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening ranking db: %w", err)
	}
	if err := db.AutoMigrate(&Score{}); err != nil {
		return nil, fmt.Errorf("migrating ranking db: %w", err)
	}
	log.Info().Str("path", path).Msg("using SQLite ranking")
	return &SQLStore{DB: db}, nil
}

func (s *SQLStore) Load() ([]float64, error) {
	var scores []float64
	err := s.DB.Model(&Score{}).Order("seconds asc").Limit(Size).Pluck("seconds", &scores).Error
	if err != nil {
		return nil, fmt.Errorf("loading ranking: %w", err)
	}
	return scores, nil
}

// Save replaces the table contents with scores.
func (s *SQLStore) Save(scores []float64) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Score{}).Error; err != nil {
			return fmt.Errorf("clearing ranking: %w", err)
		}
		if len(scores) == 0 {
			return nil
		}
		rows := make([]Score, len(scores))
		for i, v := range scores {
			rows[i] = Score{Seconds: v}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("saving ranking: %w", err)
		}
		return nil
	})
}

// Close releases the underlying connection.
func (s *SQLStore) Close() error {
	db, err := s.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

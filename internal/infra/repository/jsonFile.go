package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"sales-assistant/internal/domain/entities"
	Irepository "sales-assistant/internal/domain/interfaces/repository"
	"sales-assistant/internal/infra/logger"
)

var _ Irepository.EditRecordRepository = (*JSONFileRepository)(nil)

// JSONFileRepository keeps the edit log as a single JSON array on disk. Every
// call reads the whole file and every append rewrites it. The mutex only
// serializes writers inside this process; separate processes sharing the file
// are still last-writer-wins.
type JSONFileRepository struct {
	path       string
	maxRecords int
	logger     *logger.Logger
	mu         sync.Mutex
}

func NewJSONFileRepository(dataDir string, maxRecords int, logger *logger.Logger) *JSONFileRepository {
	if maxRecords <= 0 {
		maxRecords = Irepository.DefaultMaxEditRecords
	}
	return &JSONFileRepository{
		path:       filepath.Join(dataDir, Irepository.EmailEditsFile),
		maxRecords: maxRecords,
		logger:     logger,
	}
}

func (r *JSONFileRepository) Path() string {
	return r.path
}

// Append adds record and evicts the oldest entries beyond the cap.
func (r *JSONFileRepository) Append(ctx context.Context, record entities.EditRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records := append(r.load(), record)
	if len(records) > r.maxRecords {
		records = records[len(records)-r.maxRecords:]
	}
	return r.write(records)
}

func (r *JSONFileRepository) FindRecent(ctx context.Context, limit int) ([]entities.EditRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	records := r.load()
	r.mu.Unlock()

	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}

func (r *JSONFileRepository) Count(ctx context.Context) (int, error) {
	records, err := r.FindRecent(ctx, 0)
	return len(records), err
}

// load treats a missing, unreadable or corrupt file as an empty history.
func (r *JSONFileRepository) load() []entities.EditRecord {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn(fmt.Sprintf("Failed to read edit history %s: %v", r.path, err))
		}
		return []entities.EditRecord{}
	}

	var records []entities.EditRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.Warn(fmt.Sprintf("Failed to parse edit history %s: %v", r.path, err))
		return []entities.EditRecord{}
	}
	return records
}

func (r *JSONFileRepository) write(records []entities.EditRecord) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal edit history: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".email-edits-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write edit history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close edit history: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace edit history: %w", err)
	}
	return nil
}

package persistence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/felixbrock/vidcaption/internal/domain"
)

// JobRepo keeps jobs in an append-only CSV ledger. Every write appends a full
// record and the last record for an id wins.
type JobRepo struct {
	Path string
	mu   *sync.Mutex
}

func NewJobRepo(path string) (JobRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return JobRepo{}, err
	}
	return JobRepo{Path: path, mu: &sync.Mutex{}}, nil
}

func (r JobRepo) Insert(job domain.Job) error {
	return r.write(job)
}

func (r JobRepo) Update(job domain.Job) error {
	return r.write(job)
}

func (r JobRepo) write(job domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.OpenFile(r.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}

	defer func() {
		err = file.Close()
		if err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	writer := csv.NewWriter(file)

	err = writer.Write(toRecord(job))
	if err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

func (r JobRepo) Read(id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.Open(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrJobNotFound
	} else if err != nil {
		return nil, err
	}

	defer func() {
		err = file.Close()
		if err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(toRecord(domain.Job{}))

	var latest *domain.Job
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		if record[0] == id {
			job, err := toJob(record)
			if err != nil {
				return nil, err
			}
			latest = &job
		}
	}

	if latest == nil {
		return nil, domain.ErrJobNotFound
	}

	return latest, nil
}

func toRecord(job domain.Job) []string {
	return []string{
		job.Id,
		job.VideoName,
		job.State,
		job.Language,
		strconv.FormatBool(job.SoftSubtitle),
		job.Error,
		job.CreatedAt.UTC().Format(time.RFC3339Nano),
		job.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toJob(record []string) (domain.Job, error) {
	soft, err := strconv.ParseBool(record[4])
	if err != nil {
		return domain.Job{}, fmt.Errorf("job %s: soft subtitle flag: %w", record[0], err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, record[6])
	if err != nil {
		return domain.Job{}, fmt.Errorf("job %s: created at: %w", record[0], err)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, record[7])
	if err != nil {
		return domain.Job{}, fmt.Errorf("job %s: updated at: %w", record[0], err)
	}

	return domain.Job{
		Id:           record[0],
		VideoName:    record[1],
		State:        record[2],
		Language:     record[3],
		SoftSubtitle: soft,
		Error:        record[5],
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

package audit

import (
	"go-legal-cms/internal/model"
	"go-legal-cms/internal/repository"
	"go-legal-cms/pkg/logger"
)

// Recorder owns the audit trail. Handlers enqueue entries and return
// immediately; persistence happens on the recorder's own goroutine so a
// slow audit write never sits inside a request. Stop drains the queue.
type Recorder struct {
	Events chan model.AuditLog

	repo repository.AuditRepository
	log  *logger.Logger
	done chan struct{}
}

func NewRecorder(repo repository.AuditRepository, log *logger.Logger, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Recorder{
		Events: make(chan model.AuditLog, queueSize),
		repo:   repo,
		log:    log,
		done:   make(chan struct{}),
	}
}

// Run consumes the event queue until Stop closes it
func (r *Recorder) Run() {
	for entry := range r.Events {
		if err := r.repo.Create(&entry); err != nil {
			r.log.Error("failed to persist audit entry",
				"action", entry.Action,
				"resource", entry.Resource,
				"resource_id", entry.ResourceID,
				"error", err,
			)
		}
	}
	close(r.done)
}

// Record enqueues an audit entry. A full queue drops the entry rather
// than blocking the caller; the drop itself is logged.
func (r *Recorder) Record(entry model.AuditLog) {
	select {
	case r.Events <- entry:
	default:
		r.log.Warn("audit queue full, dropping entry",
			"action", entry.Action,
			"resource", entry.Resource,
			"resource_id", entry.ResourceID,
		)
	}
}

// Stop closes the queue and blocks until queued entries are written
func (r *Recorder) Stop() {
	close(r.Events)
	<-r.done
}

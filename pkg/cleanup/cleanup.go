// Package cleanup collects shutdown jobs registered while the app is wired
// up and runs them once on exit.
package cleanup

import (
	"log/slog"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	jobs = append(jobs, j)
	mu.Unlock()
}

// CleanUp runs registered jobs in reverse order of registration, so
// consumers stop before the resources they use are closed. Jobs run once.
func CleanUp() {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		logger := slog.Default().With(slog.String("job", j.Name))
		logger.Info("cleanup job started")
		if err := j.F(); err != nil {
			logger.Error("cleanup job finished with error", slog.String("error", err.Error()))
			continue
		}
		logger.Info("cleaned")
	}
}

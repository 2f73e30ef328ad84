package cleanup

import (
	"sync"

	"github.com/limbo/lectio/pkg/logger"
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

// CleanUp runs registered jobs in reverse registration order and forgets them.
func CleanUp(log *logger.Logger) {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		log.Info("cleanup job started", "job", j.Name)
		if err := j.F(); err != nil {
			log.Error("cleanup job finished with error", "job", j.Name, "error", err)
			continue
		}
		log.Info("cleaned", "job", j.Name)
	}
}

package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/metrics"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes best-effort writes to a fixed set of workers using
// consistent hashing on the document key, so writes to one document run in
// submission order.
type Dispatcher struct {
	workers []chan ports.WriteTask
	log     zerolog.Logger
	timeout time.Duration
	stopped chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.WriteTask, numWorkers),
		log:     log,
		timeout: 10 * time.Second,
		stopped: make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.WriteTask, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// tasks still buffered at that point are dropped.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.stopped)
	}()
}

// Submit sends a task to the worker responsible for its document. The call
// is non-blocking up to channelBuffer capacity. Once the workers have
// stopped, tasks are dropped and logged.
func (d *Dispatcher) Submit(task ports.WriteTask) {
	select {
	case <-d.stopped:
		d.drop(task)
		return
	default:
	}

	idx := d.shardIndex(task.Key())
	select {
	case d.workers[idx] <- task:
		metrics.WriteQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	case <-d.stopped:
		d.drop(task)
	}
}

func (d *Dispatcher) drop(task ports.WriteTask) {
	metrics.WritesTotal.WithLabelValues(task.Collection, task.Op, "dropped").Inc()
	d.log.Warn().
		Str("collection", task.Collection).
		Str("document_id", task.DocumentID).
		Str("op", task.Op).
		Msg("write queue stopped, write dropped")
}

// shardIndex maps a document key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.WriteTask) {
	depth := metrics.WriteQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			d.run(ctx, id, task)
		}
	}
}

// run executes one task. Failures are logged and counted; nobody waits on
// the result.
func (d *Dispatcher) run(ctx context.Context, workerID int, task ports.WriteTask) {
	tctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	err := task.Run(tctx)
	metrics.WriteDuration.WithLabelValues(task.Collection).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.WritesTotal.WithLabelValues(task.Collection, task.Op, "error").Inc()
		d.log.Error().Err(err).
			Str("collection", task.Collection).
			Str("document_id", task.DocumentID).
			Str("op", task.Op).
			Int("worker_id", workerID).
			Msg("queued write failed")
		return
	}
	metrics.WritesTotal.WithLabelValues(task.Collection, task.Op, "ok").Inc()
}

package graph

// UpdateScheduler owns the batching policy: any number of writes inside a
// batch collapse into one flush, and writes outside a batch flush immediately
// and synchronously.
type UpdateScheduler struct {
	batchDepth int
	flushing   bool
	pending    bool
	onFlush    func()
}

func NewUpdateScheduler() *UpdateScheduler {
	return &UpdateScheduler{}
}

// SetOnFlush installs the flush callback. Set once, before any writes.
func (s *UpdateScheduler) SetOnFlush(fn func()) {
	s.onFlush = fn
}

func (s *UpdateScheduler) IsBatching() bool {
	return s.batchDepth > 0
}

func (s *UpdateScheduler) StartBatch() {
	s.batchDepth++
}

// EndBatch closes the innermost batch. Only the outermost EndBatch drains a
// pending flush; nested batches are transparent.
func (s *UpdateScheduler) EndBatch() {
	s.batchDepth--
	if s.batchDepth == 0 && s.pending {
		s.drain()
	}
}

func (s *UpdateScheduler) Batch(fn func()) {
	s.StartBatch()
	defer s.EndBatch()
	fn()
}

// ScheduleFlush asks for a propagation pass. Inside a batch, or while a flush
// is already running, the request coalesces into a single owed flush;
// otherwise it runs right now on the caller's stack.
func (s *UpdateScheduler) ScheduleFlush() {
	if s.batchDepth > 0 || s.flushing {
		s.pending = true
		return
	}
	s.drain()
}

// drain runs the flush callback until no further flush was scheduled during
// the flush itself. A flush may synchronously provoke new writes (a recompute
// kicking a downstream effect that writes another root) and those must settle
// before the write or batch call returns.
func (s *UpdateScheduler) drain() {
	s.flushing = true
	defer func() { s.flushing = false }()

	for {
		s.pending = false
		if s.onFlush != nil {
			s.onFlush()
		}
		if !s.pending {
			return
		}
	}
}

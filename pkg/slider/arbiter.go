package slider

import (
	"context"
	"errors"
	"log"
	"sync"
)

// Priority 拖拽会话优先级，数值越大优先级越高
type Priority int

const (
	// PriorityDefault 用户手势拖拽
	PriorityDefault Priority = iota
	// PriorityHigh 程序化修改（如吸附到指定位置），可打断用户拖拽
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityDefault:
		return "default"
	case PriorityHigh:
		return "high"
	}
	return "unknown"
}

var (
	// ErrPreempted 会话被更高优先级的请求抢占
	ErrPreempted = errors.New("slider: drag session preempted")
	// ErrSessionEnded 会话已正常结束或已撤回
	ErrSessionEnded = errors.New("slider: drag session ended")
)

// DragScope 拖拽作用域：会话持有者通过它提交像素位移
// 返回 false 表示会话已失效，位移被丢弃
type DragScope interface {
	DragBy(deltaPx float64) bool
}

// Mutator 实际修改共享状态的函数，只会在仲裁器锁内被调用
type Mutator func(deltaPx float64)

type sessionState int

const (
	stateWaiting sessionState = iota
	stateActive
	stateEnded
	stateCancelled
)

// Session 拖拽会话
// 只有处于活动状态的会话才能通过 DragBy 修改累加器；它是修改累加器的唯一凭证
type Session struct {
	arbiter  *Arbiter
	priority Priority
	seq      uint64
	granted  func(*Session)

	// 以下字段由 arbiter.mu 保护
	state sessionState
	done  chan struct{}
}

// Priority 会话优先级
func (s *Session) Priority() Priority {
	return s.priority
}

// Done 会话结束（正常结束、被抢占或撤回）时关闭
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Active 会话当前是否持有独占权
func (s *Session) Active() bool {
	s.arbiter.mu.Lock()
	defer s.arbiter.mu.Unlock()
	return s.state == stateActive
}

// Err 会话状态对应的错误：活动或等待中返回 nil
func (s *Session) Err() error {
	s.arbiter.mu.Lock()
	defer s.arbiter.mu.Unlock()
	switch s.state {
	case stateEnded:
		return ErrSessionEnded
	case stateCancelled:
		return ErrPreempted
	}
	return nil
}

// DragBy 提交一次像素位移
//
// 位移在仲裁器锁内整体应用：抢占只会发生在两次 DragBy 之间，不会出现"应用一半"。
// 会话已结束或被抢占时返回 false，共享状态不受影响。
func (s *Session) DragBy(deltaPx float64) bool {
	a := s.arbiter
	a.mu.Lock()
	defer a.mu.Unlock()
	if s.state != stateActive || a.active != s {
		return false
	}
	a.mutator(deltaPx)
	return true
}

// End 正常结束会话，释放独占权并唤醒队列中的下一个请求
// 对已结束或已被抢占的会话调用是空操作
func (s *Session) End() {
	a := s.arbiter
	a.mu.Lock()
	if s.state != stateActive {
		a.mu.Unlock()
		return
	}
	s.state = stateEnded
	close(s.done)
	a.active = nil
	next := a.promoteLocked()
	a.mu.Unlock()

	if next != nil {
		next.granted(next)
	}
}

// Ticket 一次独占请求的凭据，可用于撤回尚在排队的请求
type Ticket struct {
	session *Session
}

// Session 请求对应的会话（可能仍在排队）
func (t *Ticket) Session() *Session {
	return t.session
}

// Withdraw 撤回排队中的请求
// 返回 true 表示撤回成功，granted 回调不会再被调用；
// 返回 false 表示请求已被授予（或已结束），回调已经或即将被调用
func (t *Ticket) Withdraw() bool {
	s := t.session
	a := s.arbiter
	a.mu.Lock()
	defer a.mu.Unlock()
	if s.state != stateWaiting {
		return false
	}
	for i, w := range a.queue {
		if w == s {
			a.queue = append(a.queue[:i], a.queue[i+1:]...)
			break
		}
	}
	s.state = stateEnded
	close(s.done)
	return true
}

// Arbiter 按优先级抢占的拖拽会话仲裁器
//
// 状态机：空闲 → 活动(优先级) → 空闲，另有一个按优先级、再按先后排序的等待队列。
//   - 空闲时请求立即授予
//   - 新请求优先级严格更高时，当前会话被取消，新请求立即授予
//   - 优先级相同或更低时排队，待当前会话结束后按顺序授予
//
// 排队的请求不会轮询，而是由释放独占权的一方恰好唤醒一次。
// 所有状态由一把互斥锁保护；Mutator 在锁内执行，不得重入仲裁器。
type Arbiter struct {
	mu      sync.Mutex
	mutator Mutator
	active  *Session
	queue   []*Session
	seq     uint64
}

// NewArbiter 创建仲裁器
// mutator 为被保护的共享状态修改函数
func NewArbiter(mutator Mutator) *Arbiter {
	return &Arbiter{mutator: mutator}
}

// Acquire 非阻塞地请求独占权
//
// granted 恰好被调用一次：能立即授予时在本次调用中同步调用，
// 否则由结束当前会话的一方调用。回调总是在锁外执行。
func (a *Arbiter) Acquire(p Priority, granted func(*Session)) *Ticket {
	s, ok := a.acquire(p, granted, true)
	if ok {
		granted(s)
	}
	return &Ticket{session: s}
}

// TryRequest 仅在无需排队时授予独占权
func (a *Arbiter) TryRequest(p Priority) (*Session, bool) {
	s, ok := a.acquire(p, func(*Session) {}, false)
	if !ok {
		return nil, false
	}
	return s, true
}

// Request 阻塞直到获得独占权
// ctx 在排队期间被取消时撤回请求并返回 ctx.Err()
func (a *Arbiter) Request(ctx context.Context, p Priority) (*Session, error) {
	ch := make(chan *Session, 1)
	ticket := a.Acquire(p, func(s *Session) { ch <- s })

	select {
	case s := <-ch:
		return s, nil
	case <-ctx.Done():
		if ticket.Withdraw() {
			return nil, ctx.Err()
		}
		// 撤回与授予同时发生：归还独占权
		s := <-ch
		s.End()
		return nil, ctx.Err()
	}
}

// Drag 获取独占权后执行 block，结束时释放
//
// 会话被抢占时传给 block 的 ctx 会被取消，后续 DragBy 返回 false，
// 此时 Drag 返回 ErrPreempted。已经应用的位移不会回滚。
func (a *Arbiter) Drag(ctx context.Context, p Priority, block func(ctx context.Context, scope DragScope) error) error {
	s, err := a.Request(ctx, p)
	if err != nil {
		return err
	}
	defer s.End()

	blockCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.Done():
			cancel()
		case <-blockCtx.Done():
		}
	}()

	err = block(blockCtx, s)
	if errors.Is(s.Err(), ErrPreempted) {
		return ErrPreempted
	}
	return err
}

// IsDragging 是否有活动会话
func (a *Arbiter) IsDragging() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active != nil
}

// ActivePriority 活动会话的优先级
func (a *Arbiter) ActivePriority() (Priority, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil {
		return PriorityDefault, false
	}
	return a.active.priority, true
}

// QueueLen 排队中的请求数
func (a *Arbiter) QueueLen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queue)
}

// acquire 在锁内完成状态迁移；返回 true 表示已授予，调用方负责在锁外调用 granted
func (a *Arbiter) acquire(p Priority, granted func(*Session), allowQueue bool) (*Session, bool) {
	a.mu.Lock()
	a.seq++
	s := &Session{
		arbiter:  a,
		priority: p,
		seq:      a.seq,
		granted:  granted,
		state:    stateWaiting,
		done:     make(chan struct{}),
	}

	var preempted *Session
	switch {
	case a.active == nil:
	case p > a.active.priority:
		preempted = a.active
		preempted.state = stateCancelled
		close(preempted.done)
		a.active = nil
	default:
		if !allowQueue {
			a.mu.Unlock()
			return nil, false
		}
		a.enqueueLocked(s)
		a.mu.Unlock()
		return s, false
	}

	s.state = stateActive
	a.active = s
	a.mu.Unlock()

	if preempted != nil {
		log.Printf("[DragArbiter] Session #%d (%s) preempted by #%d (%s)",
			preempted.seq, preempted.priority, s.seq, s.priority)
	}
	return s, true
}

// enqueueLocked 按优先级降序插入，同优先级保持先来先服务
func (a *Arbiter) enqueueLocked(s *Session) {
	i := len(a.queue)
	for i > 0 && a.queue[i-1].priority < s.priority {
		i--
	}
	a.queue = append(a.queue, nil)
	copy(a.queue[i+1:], a.queue[i:])
	a.queue[i] = s
}

// promoteLocked 把队首请求提升为活动会话
func (a *Arbiter) promoteLocked() *Session {
	if len(a.queue) == 0 {
		return nil
	}
	next := a.queue[0]
	a.queue = a.queue[1:]
	next.state = stateActive
	a.active = next
	return next
}

package slider

import "sync/atomic"

// InteractionKind 交互类别
type InteractionKind int

const (
	// InteractionPress 按下
	InteractionPress InteractionKind = iota
	// InteractionDrag 拖拽
	InteractionDrag
	// InteractionHover 悬停
	InteractionHover
)

func (k InteractionKind) String() string {
	switch k {
	case InteractionPress:
		return "press"
	case InteractionDrag:
		return "drag"
	case InteractionHover:
		return "hover"
	}
	return "unknown"
}

// Interaction 交互的身份令牌
// Start 事件携带的令牌与对应的 End/Cancel 事件必须相同，才能把它从活动集合中移除
type Interaction struct {
	ID   uint64
	Kind InteractionKind
}

// EventType 交互事件类型
type EventType int

const (
	PressStart EventType = iota
	PressEnd
	PressCancel
	DragStart
	DragEnd
	DragCancel
	HoverEnter
	HoverExit
)

func (t EventType) String() string {
	switch t {
	case PressStart:
		return "PressStart"
	case PressEnd:
		return "PressEnd"
	case PressCancel:
		return "PressCancel"
	case DragStart:
		return "DragStart"
	case DragEnd:
		return "DragEnd"
	case DragCancel:
		return "DragCancel"
	case HoverEnter:
		return "HoverEnter"
	case HoverExit:
		return "HoverExit"
	}
	return "Unknown"
}

// isStart 是否为开启交互的事件
func (t EventType) isStart() bool {
	return t == PressStart || t == DragStart || t == HoverEnter
}

// InteractionEvent 一条交互记录
type InteractionEvent struct {
	Type  EventType
	Token Interaction
}

// InteractionSink 交互事件接收者
// 由宿主的输入层同步调用，不要求独立的生命周期
type InteractionSink interface {
	OnInteraction(ev InteractionEvent)
}

// EmphasisLevel 视觉强调等级
type EmphasisLevel int

const (
	// EmphasisFlat 无交互，平面
	EmphasisFlat EmphasisLevel = iota
	// EmphasisElevated 按下或拖拽中，抬起
	EmphasisElevated
)

// InteractionTracker 交互状态聚合器
//
// 维护当前打开的交互令牌集合：
//   - PressStart / DragStart 插入令牌
//   - PressEnd / PressCancel / DragEnd / DragCancel 按身份移除，令牌不存在时为空操作
//   - HoverEnter / HoverExit 单独记录，不影响强调
//
// 非并发安全，调用方须保证在同一事件循环中使用
type InteractionTracker struct {
	active  map[Interaction]struct{}
	hovered map[Interaction]struct{}
}

// NewInteractionTracker 创建交互状态聚合器
func NewInteractionTracker() *InteractionTracker {
	return &InteractionTracker{
		active:  make(map[Interaction]struct{}),
		hovered: make(map[Interaction]struct{}),
	}
}

// OnInteraction 处理一条交互记录
func (t *InteractionTracker) OnInteraction(ev InteractionEvent) {
	set := t.active
	if ev.Type == HoverEnter || ev.Type == HoverExit {
		set = t.hovered
	}
	if ev.Type.isStart() {
		set[ev.Token] = struct{}{}
		return
	}
	delete(set, ev.Token)
}

// IsEmphasized 是否存在活动的按下或拖拽交互
func (t *InteractionTracker) IsEmphasized() bool {
	return len(t.active) > 0
}

// IsHovered 是否处于悬停状态
func (t *InteractionTracker) IsHovered() bool {
	return len(t.hovered) > 0
}

// ActiveCount 活动的按下/拖拽交互数量
func (t *InteractionTracker) ActiveCount() int {
	return len(t.active)
}

// Contains 令牌是否在活动集合中
func (t *InteractionTracker) Contains(token Interaction) bool {
	if token.Kind == InteractionHover {
		_, ok := t.hovered[token]
		return ok
	}
	_, ok := t.active[token]
	return ok
}

// Level 当前强调等级
func (t *InteractionTracker) Level() EmphasisLevel {
	if t.IsEmphasized() {
		return EmphasisElevated
	}
	return EmphasisFlat
}

// Elevation 按强调等级选取阴影高度
func (t *InteractionTracker) Elevation(opts Options) float64 {
	if t.IsEmphasized() {
		return opts.EmphasizedElevation
	}
	return opts.FlatElevation
}

// Reset 清空所有交互
func (t *InteractionTracker) Reset() {
	clear(t.active)
	clear(t.hovered)
}

// InteractionSource 交互事件源
// 负责分配唯一令牌，并把事件同步分发给所有接收者
type InteractionSource struct {
	nextID atomic.Uint64
	sinks  []InteractionSink
}

// NewInteractionSource 创建事件源
func NewInteractionSource(sinks ...InteractionSink) *InteractionSource {
	return &InteractionSource{sinks: sinks}
}

// Subscribe 追加一个接收者
func (s *InteractionSource) Subscribe(sink InteractionSink) {
	s.sinks = append(s.sinks, sink)
}

// NewToken 分配一个新的交互令牌
func (s *InteractionSource) NewToken(kind InteractionKind) Interaction {
	return Interaction{ID: s.nextID.Add(1), Kind: kind}
}

// Emit 分发一条事件
func (s *InteractionSource) Emit(typ EventType, token Interaction) {
	ev := InteractionEvent{Type: typ, Token: token}
	for _, sink := range s.sinks {
		sink.OnInteraction(ev)
	}
}

// Start 分配令牌并发出对应的开始事件
func (s *InteractionSource) Start(kind InteractionKind) Interaction {
	token := s.NewToken(kind)
	switch kind {
	case InteractionPress:
		s.Emit(PressStart, token)
	case InteractionDrag:
		s.Emit(DragStart, token)
	case InteractionHover:
		s.Emit(HoverEnter, token)
	}
	return token
}

// Finish 发出令牌对应的结束事件；cancelled 为 true 时发出取消事件
func (s *InteractionSource) Finish(token Interaction, cancelled bool) {
	switch token.Kind {
	case InteractionPress:
		if cancelled {
			s.Emit(PressCancel, token)
		} else {
			s.Emit(PressEnd, token)
		}
	case InteractionDrag:
		if cancelled {
			s.Emit(DragCancel, token)
		} else {
			s.Emit(DragEnd, token)
		}
	case InteractionHover:
		s.Emit(HoverExit, token)
	}
}

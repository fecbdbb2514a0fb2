package store

// LoadState máquina de estados de carga por colección. Sustituye al flag
// booleano "loading como mutex implícito": BeginLoad adquiere la carga o la
// rechaza, de modo que dos paginaciones concurrentes sobre la misma colección
// no pueden pisarse el cursor.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BeginProductLoad intenta adquirir la carga de productos. Devuelve false si
// ya hay una en vuelo; desde Idle, Loaded o Failed siempre adquiere (Failed
// permite reintentar con un clic de refresh).
func (s *Store) BeginProductLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.productState == StateLoading {
		return false
	}
	s.productState = StateLoading
	return true
}

// FinishProductLoad cierra la carga adquirida: Loaded si err es nil, Failed si no.
func (s *Store) FinishProductLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.productState = StateFailed
		return
	}
	s.productState = StateLoaded
}

// BeginAdjustmentLoad análogo a BeginProductLoad para la colección de ajustes.
// Las dos colecciones se cargan de forma totalmente independiente.
func (s *Store) BeginAdjustmentLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adjustmentState == StateLoading {
		return false
	}
	s.adjustmentState = StateLoading
	return true
}

// FinishAdjustmentLoad cierra la carga de ajustes.
func (s *Store) FinishAdjustmentLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.adjustmentState = StateFailed
		return
	}
	s.adjustmentState = StateLoaded
}

// ProductLoadState devuelve el estado de carga actual de productos.
func (s *Store) ProductLoadState() LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productState
}

// AdjustmentLoadState devuelve el estado de carga actual de ajustes.
func (s *Store) AdjustmentLoadState() LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adjustmentState
}

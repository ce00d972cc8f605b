package manager

import (
	"context"
	"fmt"
	"sync"

	"pacwrap/internal/executor"
)

type dispatchState int

const (
	stateIdle dispatchState = iota
	stateDispatched
)

// Dispatcher routes one Request to the matching method of one Manager.
// It is single-use.
type Dispatcher struct {
	mgr   Manager
	req   Request
	state dispatchState
	mu    sync.Mutex
}

// NewDispatcher creates an idle dispatcher for req.
func NewDispatcher(mgr Manager, req Request) *Dispatcher {
	return &Dispatcher{mgr: mgr, req: req}
}

// Dispatch invokes the backend method for the request's operation and
// returns the process exit status along with any error.
func (d *Dispatcher) Dispatch(ctx context.Context) (int, error) {
	d.mu.Lock()
	if d.state != stateIdle {
		d.mu.Unlock()
		return 1, ErrAlreadyDispatched
	}
	d.state = stateDispatched
	d.mu.Unlock()

	err := d.call(ctx)
	return ExitStatus(err), err
}

func (d *Dispatcher) call(ctx context.Context) error {
	m, kws, flags := d.mgr, d.req.Keywords, d.req.Flags

	switch d.req.Op {
	case OpQ:
		return m.Q(ctx, kws, flags)
	case OpQc:
		return m.Qc(ctx, kws, flags)
	case OpQi:
		return m.Qi(ctx, kws, flags)
	case OpQl:
		return m.Ql(ctx, kws, flags)
	case OpQo:
		return m.Qo(ctx, kws, flags)
	case OpQs:
		return m.Qs(ctx, kws, flags)
	case OpQu:
		return m.Qu(ctx, kws, flags)
	case OpR:
		return m.R(ctx, kws, flags)
	case OpRn:
		return m.Rn(ctx, kws, flags)
	case OpRns:
		return m.Rns(ctx, kws, flags)
	case OpRs:
		return m.Rs(ctx, kws, flags)
	case OpS:
		return m.S(ctx, kws, flags)
	case OpSc:
		return m.Sc(ctx, kws, flags)
	case OpScc:
		return m.Scc(ctx, kws, flags)
	case OpSi:
		return m.Si(ctx, kws, flags)
	case OpSs:
		return m.Ss(ctx, kws, flags)
	case OpSu:
		return m.Su(ctx, kws, flags)
	case OpSuy:
		return m.Suy(ctx, kws, flags)
	case OpSw:
		return m.Sw(ctx, kws, flags)
	case OpSy:
		return m.Sy(ctx, kws, flags)
	case OpU:
		return m.U(ctx, kws, flags)
	default:
		return fmt.Errorf("%w: %s", ErrContractViolation, d.req.Op)
	}
}

// ExitStatus maps an error to a process exit status: 0 for nil, the child's
// status when a package manager exited non-zero, 1 otherwise.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := executor.ExitCode(err); ok {
		return code
	}
	return 1
}

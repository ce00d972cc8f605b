package manager

import "context"

// recordingManager records which operation was invoked and with what.
type recordingManager struct {
	name  string
	calls []Request
	err   error
}

func (m *recordingManager) record(op Operation, kws, flags []string) error {
	m.calls = append(m.calls, Request{Op: op, Keywords: kws, Flags: flags})
	return m.err
}

func (m *recordingManager) Name() string { return m.name }

func (m *recordingManager) Q(_ context.Context, kws, flags []string) error {
	return m.record(OpQ, kws, flags)
}
func (m *recordingManager) Qc(_ context.Context, kws, flags []string) error {
	return m.record(OpQc, kws, flags)
}
func (m *recordingManager) Qi(_ context.Context, kws, flags []string) error {
	return m.record(OpQi, kws, flags)
}
func (m *recordingManager) Ql(_ context.Context, kws, flags []string) error {
	return m.record(OpQl, kws, flags)
}
func (m *recordingManager) Qo(_ context.Context, kws, flags []string) error {
	return m.record(OpQo, kws, flags)
}
func (m *recordingManager) Qs(_ context.Context, kws, flags []string) error {
	return m.record(OpQs, kws, flags)
}
func (m *recordingManager) Qu(_ context.Context, kws, flags []string) error {
	return m.record(OpQu, kws, flags)
}
func (m *recordingManager) R(_ context.Context, kws, flags []string) error {
	return m.record(OpR, kws, flags)
}
func (m *recordingManager) Rn(_ context.Context, kws, flags []string) error {
	return m.record(OpRn, kws, flags)
}
func (m *recordingManager) Rns(_ context.Context, kws, flags []string) error {
	return m.record(OpRns, kws, flags)
}
func (m *recordingManager) Rs(_ context.Context, kws, flags []string) error {
	return m.record(OpRs, kws, flags)
}
func (m *recordingManager) S(_ context.Context, kws, flags []string) error {
	return m.record(OpS, kws, flags)
}
func (m *recordingManager) Sc(_ context.Context, kws, flags []string) error {
	return m.record(OpSc, kws, flags)
}
func (m *recordingManager) Scc(_ context.Context, kws, flags []string) error {
	return m.record(OpScc, kws, flags)
}
func (m *recordingManager) Si(_ context.Context, kws, flags []string) error {
	return m.record(OpSi, kws, flags)
}
func (m *recordingManager) Ss(_ context.Context, kws, flags []string) error {
	return m.record(OpSs, kws, flags)
}
func (m *recordingManager) Su(_ context.Context, kws, flags []string) error {
	return m.record(OpSu, kws, flags)
}
func (m *recordingManager) Suy(_ context.Context, kws, flags []string) error {
	return m.record(OpSuy, kws, flags)
}
func (m *recordingManager) Sw(_ context.Context, kws, flags []string) error {
	return m.record(OpSw, kws, flags)
}
func (m *recordingManager) Sy(_ context.Context, kws, flags []string) error {
	return m.record(OpSy, kws, flags)
}
func (m *recordingManager) U(_ context.Context, kws, flags []string) error {
	return m.record(OpU, kws, flags)
}

var _ Manager = (*recordingManager)(nil)

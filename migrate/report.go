package migrate

import "github.com/bitfsorg/zwl-zewif-go/zewif"

// Report summarizes what a migration produced and what it had to leave out.
type Report struct {
	Network      zewif.Network
	Transactions int

	TransparentOutputs       int
	SkippedTransparentInputs int
	SaplingSpends            int
	SaplingOutputs           int

	// Omitted counts, per capability, the fields left unset.
	Omitted map[Capability]int
}

func newReport() *Report {
	return &Report{Omitted: make(map[Capability]int)}
}

func (r *Report) omit(c Capability, n int) {
	if r == nil || n == 0 {
		return
	}
	r.Omitted[c] += n
}

//go:build !riscv64

package csr

// The host build (tests) has no CSR file to read, so this
// file backs every Read*/Write* declared in csr.go with an in-memory
// register file. It exists purely so internal/sched and internal/trap's
// logic — which is pure Go and arch-independent — can be exercised on
// the host, the same way the teacher pairs its `_cosmo` build with
// per-arch specializations instead of one monolithic file: here the
// "arch" that has no real hardware is the test host.
var sim struct {
	mstatus, medeleg, mideleg, mie, mtvec, mscratch, mepc, mcause, mtval, mip uint64
	sstatus, sie, stvec, sscratch, sepc, scause, stval, sip                   uint64
	pmpaddr0, pmpcfg0                                                        uint64
}

// ResetSim zeroes the simulated register file. Test-only.
func ResetSim() { sim = struct {
	mstatus, medeleg, mideleg, mie, mtvec, mscratch, mepc, mcause, mtval, mip uint64
	sstatus, sie, stvec, sscratch, sepc, scause, stval, sip                   uint64
	pmpaddr0, pmpcfg0                                                        uint64
}{} }

func ReadMstatus() uint64    { return sim.mstatus }
func WriteMstatus(v uint64)  { sim.mstatus = v }
func ReadMedeleg() uint64    { return sim.medeleg }
func WriteMedeleg(v uint64)  { sim.medeleg = v }
func ReadMideleg() uint64    { return sim.mideleg }
func WriteMideleg(v uint64)  { sim.mideleg = v }
func ReadMie() uint64        { return sim.mie }
func WriteMie(v uint64)      { sim.mie = v }
func ReadMtvec() uint64      { return sim.mtvec }
func WriteMtvec(v uint64)    { sim.mtvec = v }
func ReadMscratch() uint64   { return sim.mscratch }
func WriteMscratch(v uint64) { sim.mscratch = v }
func ReadMepc() uint64       { return sim.mepc }
func WriteMepc(v uint64)     { sim.mepc = v }
func ReadMcause() uint64     { return sim.mcause }
func WriteMcause(v uint64)   { sim.mcause = v }
func ReadMtval() uint64      { return sim.mtval }
func WriteMtval(v uint64)    { sim.mtval = v }
func ReadMip() uint64        { return sim.mip }
func WriteMip(v uint64)      { sim.mip = v }

func ReadSstatus() uint64    { return sim.sstatus }
func WriteSstatus(v uint64)  { sim.sstatus = v }
func ReadSie() uint64        { return sim.sie }
func WriteSie(v uint64)      { sim.sie = v }
func ReadStvec() uint64      { return sim.stvec }
func WriteStvec(v uint64)    { sim.stvec = v }
func ReadSscratch() uint64   { return sim.sscratch }
func WriteSscratch(v uint64) { sim.sscratch = v }
func ReadSepc() uint64       { return sim.sepc }
func WriteSepc(v uint64)     { sim.sepc = v }
func ReadScause() uint64     { return sim.scause }
func WriteScause(v uint64)   { sim.scause = v }
func ReadStval() uint64      { return sim.stval }
func WriteStval(v uint64)    { sim.stval = v }
func ReadSip() uint64        { return sim.sip }
func WriteSip(v uint64)      { sim.sip = v }

func ReadPmpaddr0() uint64   { return sim.pmpaddr0 }
func WritePmpaddr0(v uint64) { sim.pmpaddr0 = v }
func ReadPmpcfg0() uint64    { return sim.pmpcfg0 }
func WritePmpcfg0(v uint64)  { sim.pmpcfg0 = v }

func ReadMhartid() uint64 { return 0 }

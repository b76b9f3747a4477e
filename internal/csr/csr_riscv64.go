// Code generated by hand from the RISC-V CSR address map; see csr.go
// for the bit-level meaning of each register. One read/write pair per
// CSR, each backed by a three-instruction assembly leaf in
// asm_riscv64.s (CSRRS zero-write read, CSRRW for write).

//go:build riscv64

package csr

//go:noescape
func ReadMstatus() uint64

//go:noescape
func WriteMstatus(v uint64)

//go:noescape
func ReadMedeleg() uint64

//go:noescape
func WriteMedeleg(v uint64)

//go:noescape
func ReadMideleg() uint64

//go:noescape
func WriteMideleg(v uint64)

//go:noescape
func ReadMie() uint64

//go:noescape
func WriteMie(v uint64)

//go:noescape
func ReadMtvec() uint64

//go:noescape
func WriteMtvec(v uint64)

//go:noescape
func ReadMscratch() uint64

//go:noescape
func WriteMscratch(v uint64)

//go:noescape
func ReadMepc() uint64

//go:noescape
func WriteMepc(v uint64)

//go:noescape
func ReadMcause() uint64

//go:noescape
func WriteMcause(v uint64)

//go:noescape
func ReadMtval() uint64

//go:noescape
func WriteMtval(v uint64)

//go:noescape
func ReadMip() uint64

//go:noescape
func WriteMip(v uint64)

//go:noescape
func ReadSstatus() uint64

//go:noescape
func WriteSstatus(v uint64)

//go:noescape
func ReadSie() uint64

//go:noescape
func WriteSie(v uint64)

//go:noescape
func ReadStvec() uint64

//go:noescape
func WriteStvec(v uint64)

//go:noescape
func ReadSscratch() uint64

//go:noescape
func WriteSscratch(v uint64)

//go:noescape
func ReadSepc() uint64

//go:noescape
func WriteSepc(v uint64)

//go:noescape
func ReadScause() uint64

//go:noescape
func WriteScause(v uint64)

//go:noescape
func ReadStval() uint64

//go:noescape
func WriteStval(v uint64)

//go:noescape
func ReadSip() uint64

//go:noescape
func WriteSip(v uint64)

//go:noescape
func ReadPmpaddr0() uint64

//go:noescape
func WritePmpaddr0(v uint64)

//go:noescape
func ReadPmpcfg0() uint64

//go:noescape
func WritePmpcfg0(v uint64)

//go:noescape
func ReadMhartid() uint64


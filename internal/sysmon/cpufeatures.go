package sysmon

import "golang.org/x/sys/cpu"

// CPUFeatures lists the instruction set extensions relevant to integer
// arithmetic that the running CPU supports.
func CPUFeatures() []string {
	var f []string
	add := func(ok bool, name string) {
		if ok {
			f = append(f, name)
		}
	}
	add(cpu.X86.HasAVX2, "AVX2")
	add(cpu.X86.HasAVX512F, "AVX-512F")
	add(cpu.X86.HasBMI2, "BMI2")
	add(cpu.X86.HasADX, "ADX")
	add(cpu.X86.HasPOPCNT, "POPCNT")
	add(cpu.ARM64.HasASIMD, "ASIMD")
	add(cpu.ARM64.HasSVE, "SVE")
	return f
}

// HasWideVectors reports AVX2 or wider vector units, on which the direct
// convolution stays competitive up to longer operands.
func HasWideVectors() bool {
	return cpu.X86.HasAVX2 || cpu.ARM64.HasSVE
}

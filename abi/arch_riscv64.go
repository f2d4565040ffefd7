package abi

var native = Convention{
	Arch:        "riscv64",
	Instruction: "ecall",
	Number:      "a7",
	Return:      "a0",
	Args:        []string{"a0", "a1", "a2", "a3", "a4", "a5"},
}
